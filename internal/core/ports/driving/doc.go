// Package driving defines the interfaces through which the outside world
// drives the application core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters call these interfaces; core services implement
// them.
//
// Each pipeline stage is one interface so adapters only wire the
// collaborators the selected stage actually needs.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package, core/services
package driving
