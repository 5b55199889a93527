//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package reader

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-docprep-go/document"
)

type stubReader struct{}

func (stubReader) ReadFromReader(name string, r io.Reader) ([]*document.Document, error) {
	return nil, nil
}
func (stubReader) ReadFromFile(filePath string) ([]*document.Document, error) { return nil, nil }
func (stubReader) ReadFromURL(url string) ([]*document.Document, error)       { return nil, nil }
func (stubReader) Name() string                                               { return "StubReader" }
func (stubReader) SupportedExtensions() []string                              { return []string{".foo"} }

func TestRegistry_RegisterAndExtensions(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	RegisterReader([]string{".FOO"}, func(opts ...Option) Reader { return stubReader{} })

	// Internal map should contain normalized extension key
	globalRegistry.mu.RLock()
	_, okLower := globalRegistry.readers[".foo"]
	_, okUpper := globalRegistry.readers[".FOO"]
	globalRegistry.mu.RUnlock()
	assert.True(t, okLower)
	assert.False(t, okUpper)

	// Registered extensions should include .foo
	exts := GetRegisteredExtensions()
	assert.Contains(t, exts, ".foo")

	// Lookup is case-insensitive.
	rdr, ok := GetReader(".Foo")
	require.True(t, ok)
	assert.Equal(t, "StubReader", rdr.Name())

	_, ok = GetReader(".bar")
	assert.False(t, ok)
}

func TestRegistry_GetAllReaders(t *testing.T) {
	ClearRegistry()
	defer ClearRegistry()

	RegisterReader([]string{".txt", ".text"}, func(opts ...Option) Reader { return stubReader{} })
	RegisterReader([]string{".md"}, func(opts ...Option) Reader { return stubReader{} })

	all := GetAllReaders()
	// .txt and .text collapse into one "text" entry.
	assert.Len(t, all, 2)
	assert.Contains(t, all, "text")
	assert.Contains(t, all, "markdown")
}

func TestRegistry_ExtensionToType(t *testing.T) {
	assert.Equal(t, "text", extensionToType(".txt"))
	assert.Equal(t, "text", extensionToType(".text"))
	assert.Equal(t, "markdown", extensionToType(".md"))
	assert.Equal(t, "markdown", extensionToType(".markdown"))
	assert.Equal(t, "pdf", extensionToType(".pdf"))
	assert.Equal(t, "foo", extensionToType(".foo"))
}
