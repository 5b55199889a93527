//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"time"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	"trpc.group/trpc-go/trpc-docprep-go/preprocessor"
)

// Cleaner normalizes document content with a preprocessor: header/footer
// removal, whitespace trimming and empty-line collapsing, as configured on
// the wrapped preprocessor.
//
// Unlike calling Clean directly, the batch form never mutates its input
// documents; each output is an independent copy.
type Cleaner struct {
	processor *preprocessor.Preprocessor
}

// NewCleaner creates a Cleaner backed by the given preprocessor.
func NewCleaner(p *preprocessor.Preprocessor) *Cleaner {
	return &Cleaner{processor: p}
}

// Preprocess cleans every document in the batch.
func (c *Cleaner) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	if len(docs) == 0 {
		return docs, nil
	}

	result := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		cleaned := c.processor.Clean(doc.Clone())
		cleaned.UpdatedAt = time.Now().UTC()
		result = append(result, cleaned)
	}
	return result, nil
}

// Postprocess returns documents unchanged (no-op for Cleaner).
func (c *Cleaner) Postprocess(docs []*document.Document) ([]*document.Document, error) {
	return docs, nil
}

// Name returns the name of this transformer.
func (c *Cleaner) Name() string {
	return "Cleaner"
}
