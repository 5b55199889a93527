//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package transform provides document batch transformers for the preparation
// pipeline.
package transform

import (
	"trpc.group/trpc-go/trpc-docprep-go/document"
)

// Transformer transforms a batch of documents. Preprocess runs before
// indexing-oriented steps, Postprocess after; transformers that only care
// about one phase implement the other as a no-op.
type Transformer interface {
	// Preprocess transforms documents before downstream processing.
	Preprocess(docs []*document.Document) ([]*document.Document, error)

	// Postprocess transforms documents after downstream processing.
	Postprocess(docs []*document.Document) ([]*document.Document, error)

	// Name returns the name of this transformer.
	Name() string
}
