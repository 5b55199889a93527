//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package text provides a plain-text document reader implementation.
package text

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	idocument "trpc.group/trpc-go/trpc-docprep-go/document/internal/document"
	"trpc.group/trpc-go/trpc-docprep-go/document/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".txt", ".text"}

// init registers the text reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads plain-text documents and optionally runs the preparation
// pipeline on them.
type Reader struct {
	config *reader.Config
}

// New creates a new text reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{config: config}
}

// ReadFromReader reads text content from an io.Reader and returns a list of documents.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	return r.process(string(content), name)
}

// ReadFromFile reads text content from a file path and returns a list of documents.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(fileName, file)
}

// ReadFromURL reads text content from a URL and returns a list of documents.
func (r *Reader) ReadFromURL(urlStr string) ([]*document.Document, error) {
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

// process builds the source document and applies the configured processing.
func (r *Reader) process(content, name string) ([]*document.Document, error) {
	doc := idocument.CreateDocument(content, name)
	return reader.ProcessDocuments(r.config, []*document.Document{doc})
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "TextReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
