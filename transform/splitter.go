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
	"fmt"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	"trpc.group/trpc-go/trpc-docprep-go/preprocessor"
)

// Splitter partitions each document in a batch with a preprocessor and
// flattens the results in order: all sub-documents of the first input come
// before those of the second, and so on.
type Splitter struct {
	processor *preprocessor.Preprocessor
}

// NewSplitter creates a Splitter backed by the given preprocessor.
func NewSplitter(p *preprocessor.Preprocessor) *Splitter {
	return &Splitter{processor: p}
}

// Preprocess splits every document in the batch.
func (s *Splitter) Preprocess(docs []*document.Document) ([]*document.Document, error) {
	if len(docs) == 0 {
		return docs, nil
	}

	var result []*document.Document
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		subs, err := s.processor.Split(doc)
		if err != nil {
			return nil, fmt.Errorf("split document %s: %w", doc.ID, err)
		}
		result = append(result, subs...)
	}
	return result, nil
}

// Postprocess returns documents unchanged (no-op for Splitter).
func (s *Splitter) Postprocess(docs []*document.Document) ([]*document.Document, error) {
	return docs, nil
}

// Name returns the name of this transformer.
func (s *Splitter) Name() string {
	return "Splitter"
}
