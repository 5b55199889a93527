//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

// Package document defines the document model shared by the preparation pipeline.
package document

import "time"

// Document represents a text document with metadata.
type Document struct {
	// ID is the unique identifier of the document.
	ID string `json:"id,omitempty"`

	// Name is the name or title of the document.
	Name string `json:"name,omitempty"`

	// Content is the text content of the document.
	Content string `json:"content"`

	// Metadata contains additional information about the document.
	// It may be nil; consumers that write to it create it lazily.
	Metadata map[string]any `json:"metadata,omitempty"`

	// CreatedAt is the creation timestamp of the document.
	CreatedAt time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the last update timestamp of the document.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Size returns the size of the document content in characters.
func (d *Document) Size() int {
	return len(d.Content)
}

// IsEmpty returns true if the document has no content.
func (d *Document) IsEmpty() bool {
	return len(d.Content) == 0
}

// Clone creates a deep copy of the document.
// The clone owns its own metadata map, so mutating the clone never
// affects the source document or sibling clones.
func (d *Document) Clone() *Document {
	clone := &Document{
		ID:        d.ID,
		Name:      d.Name,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if d.Metadata != nil {
		clone.Metadata = make(map[string]any, len(d.Metadata))
		for k, v := range d.Metadata {
			clone.Metadata[k] = v
		}
	}

	return clone
}

// SetMetadata writes a metadata entry, creating the map if needed.
func (d *Document) SetMetadata(key string, value any) {
	if d.Metadata == nil {
		d.Metadata = make(map[string]any)
	}
	d.Metadata[key] = value
}
