//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package tokenizer provides sentence boundary detection for the preparation pipeline.
//
// Sentence splitting is a pluggable capability: the preprocessor only depends
// on the SentenceTokenizer interface, so callers can inject a model-backed
// tokenizer when the default heuristic is not good enough.
package tokenizer

import (
	"strings"
	"unicode"
)

// SentenceTokenizer splits text into an ordered sequence of sentences.
type SentenceTokenizer interface {
	// Tokenize returns the sentences of text in order.
	Tokenize(text string) []string
}

// abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]struct{}{
	"mr":   {},
	"mrs":  {},
	"ms":   {},
	"dr":   {},
	"prof": {},
	"sr":   {},
	"jr":   {},
	"st":   {},
	"vs":   {},
	"etc":  {},
	"e.g":  {},
	"i.e":  {},
	"fig":  {},
	"no":   {},
	"vol":  {},
}

// RegexTokenizer is the default rule-based sentence tokenizer.
//
// A sentence boundary is a '.', '!' or '?' followed by whitespace and an
// upper-case letter or digit, unless the final word before the period is a
// known abbreviation. The whitespace after a boundary stays attached to the
// preceding sentence, so concatenating the returned sentences reproduces the
// input text byte for byte.
type RegexTokenizer struct{}

// NewRegexTokenizer creates the default sentence tokenizer.
func NewRegexTokenizer() *RegexTokenizer {
	return &RegexTokenizer{}
}

// Tokenize splits text into sentences.
func (rt *RegexTokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if r == '.' && isAbbreviation(runes[start:i]) {
			continue
		}

		// Consume trailing whitespace into the current sentence, then require
		// an upper-case or digit start for the next one.
		end := i + 1
		for end < len(runes) && unicode.IsSpace(runes[end]) {
			end++
		}
		if end < len(runes) && !unicode.IsUpper(runes[end]) && !unicode.IsDigit(runes[end]) {
			continue
		}

		sentences = append(sentences, string(runes[start:end]))
		start = end
		i = end - 1
	}

	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

// isAbbreviation reports whether the sentence fragment ends in a known
// abbreviation (the period itself is not part of the fragment).
func isAbbreviation(fragment []rune) bool {
	s := string(fragment)
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	word := strings.ToLower(s[idx+1:])
	_, ok := abbreviations[word]
	return ok
}

// Name returns the name of this tokenizer.
func (rt *RegexTokenizer) Name() string {
	return "RegexTokenizer"
}
