// Package file loads the pipeline configuration from a TOML file.
// Every setting has a default, so a missing config file means defaults,
// not an error.
package file
