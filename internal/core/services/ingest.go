package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
	"github.com/admitlab/admit-cli/internal/core/ports/driving"
	"github.com/admitlab/admit-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService builds the document array from local PDFs and the
// configured URL list.
type IngestService struct {
	extractor driven.PDFExtractor
	fetcher   driven.PageFetcher
	store     driven.DocumentStore
	pdfDir    string
	urlsFile  string
}

// NewIngestService creates the ingest stage.
func NewIngestService(
	extractor driven.PDFExtractor,
	fetcher driven.PageFetcher,
	store driven.DocumentStore,
	pdfDir, urlsFile string,
) *IngestService {
	return &IngestService{
		extractor: extractor,
		fetcher:   fetcher,
		store:     store,
		pdfDir:    pdfDir,
		urlsFile:  urlsFile,
	}
}

// Ingest parses every PDF in the configured directory, then fetches every
// URL from the list, and persists the combined document array. Document
// ids share one counter across both sources ("pdf_0", "pdf_1", "url_2").
// A failed extraction or fetch aborts the run; there is no partial
// fallback or retry.
func (s *IngestService) Ingest(ctx context.Context) (int, error) {
	logger.Section("Ingest")

	pdfs, err := s.listPDFs()
	if err != nil {
		return 0, err
	}
	urls, err := s.loadURLs()
	if err != nil {
		return 0, err
	}
	logger.Debug("Found %d PDFs, %d URLs", len(pdfs), len(urls))

	if len(pdfs) == 0 && len(urls) == 0 {
		return 0, fmt.Errorf("%w: no PDFs in %s and no URLs in %s",
			domain.ErrEmptyCorpus, s.pdfDir, s.urlsFile)
	}

	var docs []domain.Document

	for _, path := range pdfs {
		logger.Info("Parsing %s", path)
		text, err := s.extractor.Extract(ctx, path)
		if err != nil {
			return 0, fmt.Errorf("extract %s: %w", path, err)
		}
		docs = append(docs, domain.Document{
			ID:     fmt.Sprintf("pdf_%d", len(docs)),
			Source: path,
			Title:  filepath.Base(path),
			Type:   domain.DocumentTypePDF,
			Text:   text,
		})
	}

	for _, url := range urls {
		logger.Info("Fetching %s", url)
		title, text, err := s.fetcher.Fetch(ctx, url)
		if err != nil {
			return 0, fmt.Errorf("fetch %s: %w", url, err)
		}
		docs = append(docs, domain.Document{
			ID:     fmt.Sprintf("url_%d", len(docs)),
			Source: url,
			Title:  title,
			Type:   domain.DocumentTypeHTML,
			Text:   text,
		})
	}

	if err := s.store.SaveDocuments(ctx, docs); err != nil {
		return 0, fmt.Errorf("save documents: %w", err)
	}
	return len(docs), nil
}

// listPDFs returns the PDF paths under pdfDir in sorted order so document
// ids are stable across runs. A missing directory means no PDFs.
func (s *IngestService) listPDFs() ([]string, error) {
	if _, err := os.Stat(s.pdfDir); os.IsNotExist(err) {
		logger.Warn("PDF directory %s does not exist, skipping", s.pdfDir)
		return nil, nil
	}

	paths, err := filepath.Glob(filepath.Join(s.pdfDir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("list PDFs in %s: %w", s.pdfDir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// loadURLs reads the URL list, one per line. Blank lines and lines
// starting with # are skipped. A missing file means no URLs.
func (s *IngestService) loadURLs() ([]string, error) {
	data, err := os.ReadFile(s.urlsFile)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("URL list %s does not exist, skipping", s.urlsFile)
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.urlsFile, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}
