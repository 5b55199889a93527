//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package reader defines the interface for document readers.
// This interface allows reading from any io.Reader source, such as files or HTTP responses.
package reader

import (
	"fmt"
	"io"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	"trpc.group/trpc-go/trpc-docprep-go/preprocessor"
	"trpc.group/trpc-go/trpc-docprep-go/transform"
)

// Config holds configuration for readers.
type Config struct {
	Preprocess   bool
	Processor    *preprocessor.Preprocessor
	Transformers []transform.Transformer
}

// Option is a functional option for configuring readers.
type Option func(*Config)

// WithPreprocess enables or disables clean/split preprocessing of the
// documents a reader produces.
func WithPreprocess(enabled bool) Option {
	return func(c *Config) {
		c.Preprocess = enabled
	}
}

// WithPreprocessor sets the preprocessor applied to the documents a reader
// produces, and enables preprocessing.
func WithPreprocessor(p *preprocessor.Preprocessor) Option {
	return func(c *Config) {
		c.Processor = p
		c.Preprocess = true
	}
}

// WithTransformers sets batch transformers that run before preprocessing.
func WithTransformers(transformers ...transform.Transformer) Option {
	return func(c *Config) {
		c.Transformers = transformers
	}
}

// ProcessDocuments applies the configured transformers and preprocessor to
// the documents a reader decoded from its source.
func ProcessDocuments(config *Config, docs []*document.Document) ([]*document.Document, error) {
	var err error
	for _, t := range config.Transformers {
		docs, err = t.Preprocess(docs)
		if err != nil {
			return nil, fmt.Errorf("failed to apply preprocess transformer %s: %w", t.Name(), err)
		}
	}

	if !config.Preprocess {
		return docs, nil
	}

	processor := config.Processor
	if processor == nil {
		// The zero-option preprocessor never fails validation.
		processor, err = preprocessor.New()
		if err != nil {
			return nil, err
		}
	}

	var result []*document.Document
	for _, doc := range docs {
		subs, err := processor.Split(processor.Clean(doc))
		if err != nil {
			return nil, fmt.Errorf("failed to split document %s: %w", doc.Name, err)
		}
		result = append(result, subs...)
	}
	return result, nil
}

// Reader interface for different document readers.
type Reader interface {
	// ReadFromReader reads content from an io.Reader and returns a list of documents.
	// The name parameter is used to identify the source (e.g., filename, URL).
	ReadFromReader(name string, r io.Reader) ([]*document.Document, error)

	// ReadFromFile reads content from a file path and returns a list of documents.
	ReadFromFile(filePath string) ([]*document.Document, error)

	// ReadFromURL reads content from a URL and returns a list of documents.
	ReadFromURL(url string) ([]*document.Document, error)

	// Name returns the name of this reader.
	Name() string

	// SupportedExtensions returns the file extensions this reader supports.
	// Extensions should include the dot prefix (e.g., ".pdf", ".txt").
	SupportedExtensions() []string
}
