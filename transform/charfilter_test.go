//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	"trpc.group/trpc-go/trpc-docprep-go/transform"
)

func TestCharFilter_Preprocess(t *testing.T) {
	tests := []struct {
		name          string
		charsToRemove []string
		input         []*document.Document
		expected      []string
	}{
		{
			name:          "remove zero-width characters",
			charsToRemove: []string{"​", "\ufeff"},
			input: []*document.Document{
				{Content: "Hello​World\ufeff"},
			},
			expected: []string{"HelloWorld"},
		},
		{
			name:          "remove multi-char string",
			charsToRemove: []string{"--"},
			input: []*document.Document{
				{Content: "a--b--c"},
			},
			expected: []string{"abc"},
		},
		{
			name:          "empty string param is ignored",
			charsToRemove: []string{""},
			input: []*document.Document{
				{Content: "unchanged"},
			},
			expected: []string{"unchanged"},
		},
		{
			name:          "nil documents are skipped",
			charsToRemove: []string{"x"},
			input: []*document.Document{
				nil,
				{Content: "xaxb"},
			},
			expected: []string{"ab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := transform.NewCharFilter(tt.charsToRemove...)
			got, err := filter.Preprocess(tt.input)
			require.NoError(t, err)
			require.Len(t, got, len(tt.expected))
			for i, doc := range got {
				assert.Equal(t, tt.expected[i], doc.Content)
			}
		})
	}
}

func TestCharFilter_DoesNotMutateInput(t *testing.T) {
	filter := transform.NewCharFilter("x")
	src := &document.Document{Content: "xax", Metadata: map[string]any{"k": "v"}}

	got, err := filter.Preprocess([]*document.Document{src})
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "a", got[0].Content)
	assert.Equal(t, "xax", src.Content)

	got[0].Metadata["k"] = "mutated"
	assert.Equal(t, "v", src.Metadata["k"])
}

func TestCharFilter_Postprocess(t *testing.T) {
	filter := transform.NewCharFilter("x")
	docs := []*document.Document{{Content: "xx"}}
	got, err := filter.Postprocess(docs)
	require.NoError(t, err)
	assert.Equal(t, docs, got)
}

func TestCharFilter_Name(t *testing.T) {
	assert.Equal(t, "CharFilter", transform.NewCharFilter().Name())
}
