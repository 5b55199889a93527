//
// Tencent is pleased to support the open source community by making trpc-docprep-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-docprep-go is licensed under the Apache License Version 2.0.
//
//

package transform

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"trpc.group/trpc-go/trpc-docprep-go/document"
	"trpc.group/trpc-go/trpc-docprep-go/log"
)

// Pipeline chains transformers and runs their Preprocess stages in order.
type Pipeline struct {
	name         string
	transformers []Transformer
}

// NewPipeline creates a pipeline that applies the given transformers in order.
func NewPipeline(name string, transformers ...Transformer) *Pipeline {
	return &Pipeline{
		name:         name,
		transformers: transformers,
	}
}

// Run passes the document batch through every transformer stage and returns
// the final batch. A stage error aborts the run.
func (p *Pipeline) Run(docs []*document.Document) ([]*document.Document, error) {
	runID := uuid.NewString()
	log.Debugf("pipeline %s run %s started with %d documents", p.name, runID, len(docs))

	for _, t := range p.transformers {
		start := time.Now()
		var err error
		docs, err = t.Preprocess(docs)
		if err != nil {
			return nil, fmt.Errorf("pipeline %s stage %s: %w", p.name, t.Name(), err)
		}
		log.Debugf("pipeline %s run %s stage %s produced %d documents in %s",
			p.name, runID, t.Name(), len(docs), time.Since(start))
	}

	log.Debugf("pipeline %s run %s finished with %d documents", p.name, runID, len(docs))
	return docs, nil
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return p.name
}
