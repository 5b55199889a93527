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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-docprep-go/document"
)

func TestFindAndRemoveHeaderFooter(t *testing.T) {
	header := "ACME Corporation Annual Report 2019"
	footer := "Copyright 2019 by ACME"

	// Page bodies share no words, so the only common runs are the header
	// and the footer. The header is the longer string and wins the header
	// search; the footer run carries the newline that precedes it, because
	// newlines stay attached to the following token.
	pages := []string{
		"Table of contents\nIntro ....... 2",
		header + "\nAlpha section discusses onboarding.\n" + footer,
		header + "\nBeta part covers deployment.\n" + footer,
		header + "\nGamma appendix lists dependencies.\n" + footer,
		"Appendix closing page",
	}

	p, err := New(WithCleanHeaderFooter(true))
	require.NoError(t, err)

	doc := &document.Document{Content: strings.Join(pages, "\f")}
	foundHeader, foundFooter := p.findAndRemoveHeaderFooter(doc)

	assert.Equal(t, header, foundHeader)
	assert.Equal(t, "\n"+footer, foundFooter)
	assert.NotContains(t, doc.Content, header)
	assert.NotContains(t, doc.Content, footer)

	// Page structure survives the strip.
	assert.Equal(t, len(pages), len(strings.Split(doc.Content, "\f")))
}

func TestFindAndRemoveHeaderFooter_TwoPages(t *testing.T) {
	// With both border pages included in the search, a header shared by two
	// pages is found even though the page bodies differ.
	p, err := New(
		WithCleanHeaderFooter(true),
		WithHeaderFooterChars(20),
		WithHeaderFooterIgnorePages(0, 0),
		WithNgramRange(1, 30),
	)
	require.NoError(t, err)

	doc := &document.Document{
		Content: "CONFIDENTIAL\nfirst page body\fCONFIDENTIAL\nsecond page body",
	}
	foundHeader, _ := p.findAndRemoveHeaderFooter(doc)

	require.NotEmpty(t, foundHeader)
	assert.Contains(t, foundHeader, "CONFIDENTIAL")
	assert.NotContains(t, doc.Content, "CONFIDENTIAL")
}

func TestFindAndRemoveHeaderFooter_TooFewPages(t *testing.T) {
	// Default config ignores the first and last page; two pages leave
	// nothing to search, which is a no-op rather than an error.
	p, err := New(WithCleanHeaderFooter(true))
	require.NoError(t, err)

	content := "HEADER\npage one\fHEADER\npage two"
	doc := &document.Document{Content: content}
	foundHeader, foundFooter := p.findAndRemoveHeaderFooter(doc)

	assert.Empty(t, foundHeader)
	assert.Empty(t, foundFooter)
	assert.Equal(t, content, doc.Content)
}

func TestFindAndRemoveHeaderFooter_NoCommonString(t *testing.T) {
	p, err := New(
		WithCleanHeaderFooter(true),
		WithHeaderFooterIgnorePages(0, 0),
	)
	require.NoError(t, err)

	content := "alpha beta gamma delta\fone two three four\fcinq six sept huit"
	doc := &document.Document{Content: content}
	foundHeader, foundFooter := p.findAndRemoveHeaderFooter(doc)

	assert.Empty(t, foundHeader)
	assert.Empty(t, foundFooter)
	assert.Equal(t, content, doc.Content)
}

func TestSearchWindow(t *testing.T) {
	pages := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"b", "c"}, searchWindow(pages, 1, 1))
	assert.Equal(t, pages, searchWindow(pages, 0, 0))
	assert.Equal(t, []string{"c", "d"}, searchWindow(pages, 2, 0))
	assert.Nil(t, searchWindow(pages, 2, 2))
	assert.Nil(t, searchWindow([]string{"only"}, 1, 1))
}

func TestRunePrefixSuffix(t *testing.T) {
	assert.Equal(t, "abc", runePrefix("abcdef", 3))
	assert.Equal(t, "def", runeSuffix("abcdef", 3))
	assert.Equal(t, "ab", runePrefix("ab", 5))
	assert.Equal(t, "ab", runeSuffix("ab", 5))

	// Multi-byte characters are never cut in half.
	assert.Equal(t, "hél", runePrefix("héllo", 3))
	assert.Equal(t, "llo", runeSuffix("héllo", 3))
}
