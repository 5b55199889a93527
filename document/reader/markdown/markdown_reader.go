//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package markdown provides a markdown document reader implementation.
package markdown

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	idocument "trpc.group/trpc-go/trpc-docprep-go/document/internal/document"
	"trpc.group/trpc-go/trpc-docprep-go/document/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".md", ".markdown"}

// init registers the markdown reader with the global registry.
func init() {
	reader.RegisterReader(supportedExtensions, New)
}

// Reader reads markdown documents, strips the markup and optionally runs the
// preparation pipeline on the plain text.
type Reader struct {
	config *reader.Config
	md     goldmark.Markdown
}

// New creates a new markdown reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{
		config: config,
		md:     goldmark.New(),
	}
}

// ReadFromReader reads markdown content from an io.Reader and returns a list of documents.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := idocument.CreateDocument(r.extractText(content), name)
	return reader.ProcessDocuments(r.config, []*document.Document{doc})
}

// ReadFromFile reads markdown content from a file path and returns a list of documents.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fileName := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(fileName, file)
}

// ReadFromURL reads markdown content from a URL and returns a list of documents.
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

// extractText parses the markdown and returns its plain text. Block nodes
// are separated by blank lines so passage splitting still sees paragraph
// boundaries.
func (r *Reader) extractText(source []byte) string {
	root := r.md.Parser().Parse(gtext.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch v := node.(type) {
		case *ast.Text:
			buf.Write(v.Text(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.String:
			buf.Write(v.Value)
		default:
			// Separate block-level nodes with a blank line.
			if node.Type() == ast.TypeBlock && buf.Len() > 0 {
				buf.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

// Name returns the name of this reader.
func (r *Reader) Name() string {
	return "MarkdownReader"
}

// SupportedExtensions returns the file extensions this reader supports.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
