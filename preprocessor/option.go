//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package preprocessor

import (
	"trpc.group/trpc-go/trpc-docprep-go/tokenizer"
)

// SplitUnit selects the atomic slice the segmenter windows over.
type SplitUnit string

// Supported split units.
const (
	// SplitByWord splits on single spaces.
	SplitByWord SplitUnit = "word"
	// SplitBySentence splits with the configured sentence tokenizer.
	SplitBySentence SplitUnit = "sentence"
	// SplitByPassage splits on double newlines.
	SplitByPassage SplitUnit = "passage"
	// SplitByNone disables splitting entirely.
	SplitByNone SplitUnit = "none"
)

// Default configuration values.
const (
	// DefaultSplitSize is the default window length in split units.
	DefaultSplitSize = 10

	// DefaultHeaderFooterChars is the default number of leading/trailing page
	// characters searched for a common header/footer.
	DefaultHeaderFooterChars = 300

	// DefaultIgnorePages is the default number of first and last pages
	// excluded from the header/footer search.
	DefaultIgnorePages = 1

	// DefaultMinNgram is the default minimum ngram token length.
	DefaultMinNgram = 3

	// DefaultMaxNgram is the default upper bound (exclusive) on ngram token length.
	DefaultMaxNgram = 30
)

// Option represents a functional option for configuring the preprocessor.
type Option func(*options)

// options contains the immutable preprocessor configuration.
type options struct {
	cleanWhitespace   bool
	cleanHeaderFooter bool
	cleanEmptyLines   bool

	splitBy          SplitUnit
	splitSize        int
	splitStride      int
	splitMidSentence bool

	sentenceTokenizer tokenizer.SentenceTokenizer

	headerFooterChars int
	ignoreFirstPages  int
	ignoreLastPages   int
	minNgram          int
	maxNgram          int
}

// WithCleanWhitespace enables or disables per-line whitespace trimming.
func WithCleanWhitespace(enabled bool) Option {
	return func(o *options) {
		o.cleanWhitespace = enabled
	}
}

// WithCleanHeaderFooter enables or disables heuristic header/footer removal.
// The heuristic searches for the longest common string across pages, so it
// finds exact repeats like "Copyright 2019 by XXX" but not per-page variants
// like "Page 3 of 4".
func WithCleanHeaderFooter(enabled bool) Option {
	return func(o *options) {
		o.cleanHeaderFooter = enabled
	}
}

// WithCleanEmptyLines enables or disables collapsing of repeated empty lines.
func WithCleanEmptyLines(enabled bool) Option {
	return func(o *options) {
		o.cleanEmptyLines = enabled
	}
}

// WithSplitBy sets the split unit. SplitByNone disables splitting.
func WithSplitBy(unit SplitUnit) Option {
	return func(o *options) {
		o.splitBy = unit
	}
}

// WithSplitSize sets the window length in split units.
func WithSplitSize(size int) Option {
	return func(o *options) {
		o.splitSize = size
	}
}

// WithSplitStride sets the overlap between consecutive windows in split
// units. Zero disables overlapping.
func WithSplitStride(stride int) Option {
	return func(o *options) {
		o.splitStride = stride
	}
}

// WithSplitMidSentence controls whether windows may cut through sentences.
// When disabled, only the word unit is supported and whole sentences are
// accumulated up to the split size instead of being windowed.
func WithSplitMidSentence(enabled bool) Option {
	return func(o *options) {
		o.splitMidSentence = enabled
	}
}

// WithSentenceTokenizer injects the sentence boundary tokenizer used for the
// sentence unit and for word splitting with mid-sentence disabled.
func WithSentenceTokenizer(tok tokenizer.SentenceTokenizer) Option {
	return func(o *options) {
		o.sentenceTokenizer = tok
	}
}

// WithHeaderFooterChars sets how many leading/trailing characters of each
// page are searched for a common header/footer. Keep this small: the ngram
// search cost grows with it.
func WithHeaderFooterChars(n int) Option {
	return func(o *options) {
		o.headerFooterChars = n
	}
}

// WithHeaderFooterIgnorePages excludes the given number of first and last
// pages from the header/footer search window. Table-of-contents pages often
// carry no header/footer and would spoil the search.
func WithHeaderFooterIgnorePages(first, last int) Option {
	return func(o *options) {
		o.ignoreFirstPages = first
		o.ignoreLastPages = last
	}
}

// WithNgramRange bounds the ngram token lengths considered by the
// header/footer search: min inclusive, max exclusive. A max of zero removes
// the upper bound.
func WithNgramRange(minNgram, maxNgram int) Option {
	return func(o *options) {
		o.minNgram = minNgram
		o.maxNgram = maxNgram
	}
}

// buildOptions creates options with defaults applied.
func buildOptions(opts ...Option) *options {
	o := &options{
		cleanWhitespace:   true,
		cleanHeaderFooter: false,
		cleanEmptyLines:   true,
		splitBy:           SplitByPassage,
		splitSize:         DefaultSplitSize,
		splitStride:       0,
		splitMidSentence:  true,
		sentenceTokenizer: tokenizer.NewRegexTokenizer(),
		headerFooterChars: DefaultHeaderFooterChars,
		ignoreFirstPages:  DefaultIgnorePages,
		ignoreLastPages:   DefaultIgnorePages,
		minNgram:          DefaultMinNgram,
		maxNgram:          DefaultMaxNgram,
	}

	for _, opt := range opts {
		opt(o)
	}
	return o
}

// validate validates the preprocessor options.
func (o *options) validate() error {
	if o.splitSize <= 0 {
		return ErrInvalidSplitSize
	}
	if o.splitStride < 0 {
		return ErrInvalidSplitStride
	}
	if o.splitStride >= o.splitSize {
		return ErrStrideTooLarge
	}
	if o.minNgram < 1 {
		return ErrInvalidNgramRange
	}
	if o.headerFooterChars <= 0 || o.ignoreFirstPages < 0 || o.ignoreLastPages < 0 {
		return ErrInvalidHeaderFooterConfig
	}
	return nil
}
