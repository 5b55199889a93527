//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package preprocessor normalizes raw document text and partitions it into
// retrieval-friendly chunks.
//
// A Preprocessor exposes two independent operations: Clean, which strips
// headers/footers and normalizes whitespace in place, and Split, which
// windows the content into sub-documents by word, sentence or passage.
// Clean-then-split is the intended pipeline, but callers may compose the two
// in either order.
package preprocessor

import (
	"regexp"
	"strings"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	"trpc.group/trpc-go/trpc-docprep-go/log"
)

// SplitIDKey is the metadata key carrying the zero-based split index of an
// emitted sub-document.
const SplitIDKey = "_split_id"

// passageSeparator delimits passages inside document content.
const passageSeparator = "\n\n"

// emptyLinesRegex matches runs of two or more consecutive newlines.
var emptyLinesRegex = regexp.MustCompile(`\n\n+`)

// Preprocessor cleans and splits documents. It is immutable after
// construction and safe to share across goroutines: each call is a pure
// function of the document argument and the configuration.
type Preprocessor struct {
	opts *options
}

// New creates a preprocessor with the given options.
func New(opts ...Option) (*Preprocessor, error) {
	o := buildOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Preprocessor{opts: o}, nil
}

// Clean normalizes the document content in place and returns the same
// document. Steps run in order: header/footer removal, per-line whitespace
// trimming, empty-line collapsing; each only when enabled. Clean never
// fails: an empty document or an absent header/footer is a normal outcome.
func (p *Preprocessor) Clean(doc *document.Document) *document.Document {
	if doc == nil {
		return nil
	}

	if p.opts.cleanHeaderFooter {
		header, footer := p.findAndRemoveHeaderFooter(doc)
		log.Debugf("removed header %q and footer %q in document", header, footer)
	}

	if p.opts.cleanWhitespace {
		lines := strings.Split(doc.Content, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		doc.Content = strings.Join(lines, "\n")
	}

	if p.opts.cleanEmptyLines {
		doc.Content = emptyLinesRegex.ReplaceAllString(doc.Content, passageSeparator)
	}

	return doc
}

// Split partitions the document into an ordered sequence of sub-documents.
//
// Each emitted sub-document is a deep copy of the input with its content
// replaced and Metadata[SplitIDKey] set to the zero-based emission index.
// With the unit set to SplitByNone the input document itself is returned as
// a single-element sequence.
func (p *Preprocessor) Split(doc *document.Document) ([]*document.Document, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if p.opts.splitBy == SplitByNone {
		return []*document.Document{doc}, nil
	}

	var texts []string
	if p.opts.splitMidSentence {
		slices, err := p.decompose(doc.Content)
		if err != nil {
			return nil, err
		}
		texts = windowTexts(slices, p.opts.splitSize, p.opts.splitStride)
	} else {
		if p.opts.splitBy != SplitByWord {
			return nil, ErrSplitNotImplemented
		}
		texts = p.accumulateSentences(doc.Content)
	}

	docs := make([]*document.Document, 0, len(texts))
	for i, txt := range texts {
		sub := doc.Clone()
		sub.Content = txt
		sub.SetMetadata(SplitIDKey, i)
		docs = append(docs, sub)
	}
	return docs, nil
}

// decompose breaks text into the ordered slice sequence for the configured
// split unit.
func (p *Preprocessor) decompose(text string) ([]string, error) {
	switch p.opts.splitBy {
	case SplitByPassage:
		return strings.Split(text, passageSeparator), nil
	case SplitBySentence:
		return p.opts.sentenceTokenizer.Tokenize(text), nil
	case SplitByWord:
		return strings.Split(text, " "), nil
	default:
		return nil, ErrUnsupportedSplitUnit
	}
}

// windowTexts builds sliding windows of size slices over the slice sequence,
// each window advancing by size-stride, and joins every window's non-empty
// slices with a single space.
//
// Full windows are emitted at each step start; one final window covers the
// remaining slices unless the last full window already ended at the final
// slice. The final window is not padded.
func windowTexts(slices []string, size, stride int) []string {
	if len(slices) == 0 {
		return nil
	}

	step := size - stride
	var texts []string
	for start := 0; ; start += step {
		end := start + size
		if end >= len(slices) {
			texts = append(texts, joinNonEmpty(slices[start:]))
			break
		}
		texts = append(texts, joinNonEmpty(slices[start:end]))
	}
	return texts
}

// joinNonEmpty joins the non-empty slices of a window with single spaces.
func joinNonEmpty(window []string) string {
	parts := make([]string, 0, len(window))
	for _, s := range window {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// accumulateSentences implements word splitting with mid-sentence disabled:
// whole sentences are concatenated, without an inserted separator, until the
// running space-delimited word count exceeds the split size, at which point
// the buffer is emitted and reset.
//
// A trailing buffer that never reaches the threshold is dropped, not
// emitted. Downstream consumers depend on this truncation, so it must not
// change.
func (p *Preprocessor) accumulateSentences(text string) []string {
	sentences := p.opts.sentenceTokenizer.Tokenize(text)

	var texts []string
	var current strings.Builder
	wordCount := 0
	for _, sen := range sentences {
		current.WriteString(sen)
		wordCount += len(strings.Split(sen, " "))
		if wordCount > p.opts.splitSize {
			texts = append(texts, current.String())
			current.Reset()
			wordCount = 0
		}
	}
	return texts
}
