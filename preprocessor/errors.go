//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package preprocessor

import "errors"

var (
	// ErrNilDocument is returned when a nil document is passed to Split.
	ErrNilDocument = errors.New("document is nil")

	// ErrUnsupportedSplitUnit is returned when the configured split unit is
	// not one of word, sentence, passage or none.
	ErrUnsupportedSplitUnit = errors.New("unsupported split unit")

	// ErrSplitNotImplemented is returned when mid-sentence splitting is
	// disabled for a unit other than word.
	ErrSplitNotImplemented = errors.New("splitting with mid-sentence disabled is only implemented for the word unit")

	// ErrInvalidSplitSize is returned when the split size is not positive.
	ErrInvalidSplitSize = errors.New("split size must be positive")

	// ErrInvalidSplitStride is returned when the split stride is negative.
	ErrInvalidSplitStride = errors.New("split stride must be non-negative")

	// ErrStrideTooLarge is returned when the split stride is not smaller
	// than the split size.
	ErrStrideTooLarge = errors.New("split stride must be smaller than split size")

	// ErrInvalidNgramRange is returned when the minimum ngram length is not positive.
	ErrInvalidNgramRange = errors.New("minimum ngram length must be positive")

	// ErrInvalidHeaderFooterConfig is returned when the header/footer search
	// window is misconfigured.
	ErrInvalidHeaderFooterConfig = errors.New("header/footer chars must be positive and ignored page counts non-negative")
)
