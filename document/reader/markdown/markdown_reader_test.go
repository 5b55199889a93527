//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-docprep-go/document/reader"
	"trpc.group/trpc-go/trpc-docprep-go/preprocessor"
)

func TestMarkdownReader_StripsMarkup(t *testing.T) {
	input := "# Title\n\nFirst paragraph.\n\nSecond paragraph.\n"

	rdr := New()
	docs, err := rdr.ReadFromReader("doc", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "Title\n\nFirst paragraph.\n\nSecond paragraph.", docs[0].Content)
}

func TestMarkdownReader_InlineMarkup(t *testing.T) {
	input := "Some **bold** and *italic* and `code` and a [link](https://example.com)."

	rdr := New()
	docs, err := rdr.ReadFromReader("doc", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "Some bold and italic and code and a link.", docs[0].Content)
}

func TestMarkdownReader_SoftLineBreak(t *testing.T) {
	rdr := New()
	docs, err := rdr.ReadFromReader("doc", strings.NewReader("line one\nline two"))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "line one\nline two", docs[0].Content)
}

func TestMarkdownReader_ListItems(t *testing.T) {
	input := "Intro.\n\n- item one\n- item two\n"

	rdr := New()
	docs, err := rdr.ReadFromReader("doc", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	// Markup is gone; every item survives as plain text.
	assert.NotContains(t, docs[0].Content, "-")
	assert.Contains(t, docs[0].Content, "item one")
	assert.Contains(t, docs[0].Content, "item two")
}

func TestMarkdownReader_ReadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guide.md")
	require.NoError(t, os.WriteFile(path, []byte("# Guide\n\nBody."), 0o644))

	rdr := New()
	docs, err := rdr.ReadFromFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, "guide", docs[0].Name)
	assert.Equal(t, "Guide\n\nBody.", docs[0].Content)
}

func TestMarkdownReader_SplitByPassage(t *testing.T) {
	p, err := preprocessor.New(
		preprocessor.WithSplitBy(preprocessor.SplitByPassage),
		preprocessor.WithSplitSize(1),
	)
	require.NoError(t, err)

	input := "# Title\n\nParagraph one.\n\nParagraph two."
	rdr := New(reader.WithPreprocessor(p))
	docs, err := rdr.ReadFromReader("doc", strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, docs, 3)
	assert.Equal(t, "Title", docs[0].Content)
	assert.Equal(t, "Paragraph one.", docs[1].Content)
	assert.Equal(t, "Paragraph two.", docs[2].Content)
}

func TestMarkdownReader_Metadata(t *testing.T) {
	rdr := New()
	assert.Equal(t, "MarkdownReader", rdr.Name())
	assert.Equal(t, []string{".md", ".markdown"}, rdr.SupportedExtensions())
}
