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
	"strings"

	"trpc.group/trpc-go/trpc-docprep-go/document"
)

// pageSeparator delimits pages inside document content.
const pageSeparator = "\f"

// findAndRemoveHeaderFooter locates a header and footer repeated across
// pages and strips every occurrence from the document content.
//
// Only the first/last headerFooterChars characters of each page are searched,
// and the configured number of first and last pages is excluded from the
// search window (they are still stripped once something is found). The
// search uses exact matches: it finds footers like "Copyright 2019 by XXX"
// but not per-page variants like "Page 3 of 4".
//
// A document with too few pages, or with no common ngram, is left unchanged
// apart from re-joining its pages; both are normal outcomes, not errors.
func (p *Preprocessor) findAndRemoveHeaderFooter(doc *document.Document) (header, footer string) {
	pages := strings.Split(doc.Content, pageSeparator)

	// header
	searched := searchWindow(pages, p.opts.ignoreFirstPages, p.opts.ignoreLastPages)
	startOfPages := make([]string, len(searched))
	for i, page := range searched {
		startOfPages[i] = runePrefix(page, p.opts.headerFooterChars)
	}
	header = LongestCommonNgram(startOfPages, p.opts.minNgram, p.opts.maxNgram)
	if header != "" {
		for i := range pages {
			pages[i] = strings.ReplaceAll(pages[i], header, "")
		}
	}

	// footer, searched on the pages as they exist after header removal
	searched = searchWindow(pages, p.opts.ignoreFirstPages, p.opts.ignoreLastPages)
	endOfPages := make([]string, len(searched))
	for i, page := range searched {
		endOfPages[i] = runeSuffix(page, p.opts.headerFooterChars)
	}
	footer = LongestCommonNgram(endOfPages, p.opts.minNgram, p.opts.maxNgram)
	if footer != "" {
		for i := range pages {
			pages[i] = strings.ReplaceAll(pages[i], footer, "")
		}
	}

	doc.Content = strings.Join(pages, pageSeparator)
	return header, footer
}

// searchWindow returns the pages searched for a common header/footer. When
// the ignored pages leave nothing to search, the window is empty and no
// header/footer can be found.
func searchWindow(pages []string, ignoreFirst, ignoreLast int) []string {
	if ignoreFirst+ignoreLast >= len(pages) {
		return nil
	}
	return pages[ignoreFirst : len(pages)-ignoreLast]
}

// runePrefix returns the first n characters of s.
func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// runeSuffix returns the last n characters of s.
func runeSuffix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[len(runes)-n:])
}
