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
	"strings"
	"time"

	"trpc.group/trpc-go/trpc-docprep-go/document"
)

// CharFilter removes specific characters or strings from document content.
// This is useful for preprocessing documents before splitting.
type CharFilter struct {
	replacer *strings.Replacer
}

// NewCharFilter creates a CharFilter that removes the specified characters or strings.
//
// Example:
//
//	filter := transform.NewCharFilter("\u200b", "\ufeff")
func NewCharFilter(charsToRemove ...string) *CharFilter {
	args := make([]string, 0, len(charsToRemove)*2)
	for _, char := range charsToRemove {
		if char == "" {
			continue
		}
		args = append(args, char, "")
	}
	return &CharFilter{
		replacer: strings.NewReplacer(args...),
	}
}

// Preprocess applies the character filter to documents.
func (cf *CharFilter) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	return cf.transform(docs)
}

// Postprocess returns documents unchanged (no-op for CharFilter).
func (cf *CharFilter) Postprocess(docs []*document.Document) ([]*document.Document, error) {
	return docs, nil
}

// transform applies the character filter transformation to documents.
func (cf *CharFilter) transform(docs []*document.Document) ([]*document.Document, error) {
	if len(docs) == 0 {
		return docs, nil
	}

	result := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		result = append(result, replaceContent(doc, cf.replacer.Replace(doc.Content)))
	}
	return result, nil
}

// Name returns the name of this transformer.
func (cf *CharFilter) Name() string {
	return "CharFilter"
}

// replaceContent creates a new document carrying the processed content.
func replaceContent(original *document.Document, content string) *document.Document {
	processed := original.Clone()
	if processed.Metadata == nil {
		processed.Metadata = make(map[string]any)
	}
	processed.Content = content
	processed.UpdatedAt = time.Now().UTC()
	return processed
}
