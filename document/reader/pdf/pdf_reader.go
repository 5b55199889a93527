//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package pdf provides a PDF document reader implementation.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	idocument "trpc.group/trpc-go/trpc-docprep-go/document/internal/document"
	"trpc.group/trpc-go/trpc-docprep-go/document/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".pdf"}

// init registers the PDF reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads PDF documents and optionally runs the preparation pipeline on
// them. Page texts are joined with form feeds, so header/footer removal in
// the preprocessor sees the real page boundaries.
type Reader struct {
	config *reader.Config
}

// New creates a new PDF reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{config: config}
}

// ReadFromReader reads PDF content from an io.Reader and returns a list of documents.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	pdfReader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF reader: %w", err)
	}
	return r.process(pdfReader, name)
}

// ReadFromFile reads PDF content from a file path and returns a list of documents.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pdfReader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF reader: %w", err)
	}

	fileName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.process(pdfReader, fileName)
}

// ReadFromURL reads PDF content from a URL and returns a list of documents.
func (r *Reader) ReadFromURL(urlStr string) ([]*document.Document, error) {
	// Validate URL before making HTTP request.
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme: %s", parsedURL.Scheme)
	}

	resp, err := http.Get(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status code %d", resp.StatusCode)
	}
	return r.ReadFromReader(urlStr, resp.Body)
}

// process extracts the page texts and applies the configured processing.
func (r *Reader) process(pdfReader *pdf.Reader, name string) ([]*document.Document, error) {
	doc := idocument.CreateDocument(r.extractText(pdfReader), name)
	doc.Metadata["page_count"] = pdfReader.NumPage()
	return reader.ProcessDocuments(r.config, []*document.Document{doc})
}

// extractText extracts text from all pages, joined with form feeds.
func (r *Reader) extractText(pdfReader *pdf.Reader) string {
	totalPage := pdfReader.NumPage()

	pages := make([]string, 0, totalPage)
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := pdfReader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\f")
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "PDFReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
