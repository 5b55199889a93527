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
	"regexp"

	"trpc.group/trpc-go/trpc-docprep-go/document"
)

// CharDedup collapses consecutive repeated characters/strings into a single occurrence.
// For example, "\t\t\t\t" becomes "\t", "   " becomes " ".
type CharDedup struct {
	patterns     []*regexp.Regexp
	replacements []string
}

// NewCharDedup creates a CharDedup that collapses consecutive occurrences of the specified strings.
//
// Example:
//
//	dedup := transform.NewCharDedup("\t", " ")
//	// Input:  "hello\t\t\tworld   foo"
//	// Output: "hello\tworld foo"
func NewCharDedup(charsToDedup ...string) *CharDedup {
	patterns := make([]*regexp.Regexp, 0, len(charsToDedup))
	replacements := make([]string, 0, len(charsToDedup))

	for _, char := range charsToDedup {
		if char == "" {
			continue
		}
		// Escape special regex characters and create pattern for 2+ consecutive occurrences
		escaped := regexp.QuoteMeta(char)
		patterns = append(patterns, regexp.MustCompile("("+escaped+"){2,}"))
		replacements = append(replacements, char)
	}

	return &CharDedup{
		patterns:     patterns,
		replacements: replacements,
	}
}

// Preprocess applies the character deduplication to documents.
func (cd *CharDedup) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	return cd.transform(docs)
}

// Postprocess returns documents unchanged (no-op for CharDedup).
func (cd *CharDedup) Postprocess(docs []*document.Document) ([]*document.Document, error) {
	return docs, nil
}

// transform applies the character deduplication transformation to documents.
func (cd *CharDedup) transform(docs []*document.Document) ([]*document.Document, error) {
	if len(docs) == 0 {
		return docs, nil
	}

	result := make([]*document.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		result = append(result, replaceContent(doc, cd.dedupContent(doc.Content)))
	}
	return result, nil
}

// dedupContent applies all deduplication patterns to the content.
func (cd *CharDedup) dedupContent(content string) string {
	result := content
	for i, pattern := range cd.patterns {
		result = pattern.ReplaceAllLiteralString(result, cd.replacements[i])
	}
	return result
}

// Name returns the name of this transformer.
func (cd *CharDedup) Name() string {
	return "CharDedup"
}
