//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package preprocessor

import "strings"

// tokenize splits a sequence into whitespace-delimited tokens.
//
// Newlines and tabs act as token separators too, but the original character
// must survive reconstruction: each is rewritten to a space plus itself
// before splitting on single spaces, so it stays attached to the following
// token and joinTokens can undo the rewrite.
func tokenize(seq string) []string {
	seq = strings.ReplaceAll(seq, "\n", " \n")
	seq = strings.ReplaceAll(seq, "\t", " \t")
	return strings.Split(seq, " ")
}

// joinTokens joins tokens with single spaces and restores the whitespace
// layout of the original sequence.
func joinTokens(tokens []string) string {
	joined := strings.Join(tokens, " ")
	joined = strings.ReplaceAll(joined, " \n", "\n")
	joined = strings.ReplaceAll(joined, " \t", "\t")
	return joined
}

// ngrams returns all contiguous token runs of length n in seq, in their
// joined string form.
func ngrams(seq string, n int) []string {
	tokens := tokenize(seq)
	if n <= 0 || n > len(tokens) {
		return nil
	}

	out := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		out = append(out, joinTokens(tokens[i:i+n]))
	}
	return out
}

// allNgrams returns the set of all ngrams of seq with token lengths in
// [minNgram, maxNgram). A maxNgram of zero or less means the upper bound is
// the sequence's own token count.
func allNgrams(seq string, minNgram, maxNgram int) map[string]struct{} {
	upper := maxNgram
	if upper <= 0 {
		upper = len(tokenize(seq))
	}

	set := make(map[string]struct{})
	for n := minNgram; n < upper; n++ {
		for _, gram := range ngrams(seq, n) {
			set[gram] = struct{}{}
		}
	}
	return set
}

// LongestCommonNgram finds the longest ngram common to all sequences,
// considering ngram token lengths in [minNgram, maxNgram). It returns the
// empty string when no common ngram exists.
//
// When several common ngrams share the maximal character length, which one
// is returned is unspecified.
//
// The search generates every ngram in the length range for every sequence
// and intersects the sets, so cost grows with sequence length and range
// width; callers should keep the sequences short.
func LongestCommonNgram(sequences []string, minNgram, maxNgram int) string {
	var nonEmpty []string
	for _, seq := range sequences {
		if seq != "" {
			nonEmpty = append(nonEmpty, seq)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}

	common := allNgrams(nonEmpty[0], minNgram, maxNgram)
	for _, seq := range nonEmpty[1:] {
		if len(common) == 0 {
			break
		}
		next := allNgrams(seq, minNgram, maxNgram)
		for gram := range common {
			if _, ok := next[gram]; !ok {
				delete(common, gram)
			}
		}
	}

	var longest string
	for gram := range common {
		if len(gram) > len(longest) {
			longest = gram
		}
	}

	// A purely-whitespace match is not a real header or footer.
	if strings.TrimSpace(longest) == "" {
		return ""
	}
	return longest
}
