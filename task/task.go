package task

import (
	"context"

	"github.com/allada/pconcat/errors"
	"github.com/allada/pconcat/pipeline"
	"github.com/allada/pconcat/source"
)

// Task is one unit of work derived from one input record. It is immutable
// once created: the record it came from, its zero-based submission index,
// and the byte source it maps to.
type Task struct {
	Index  int
	Record string
	Source source.Source
}

// Parser turns one input record into a byte source. A parse failure is an
// admission error: the run aborts before anything is launched for the record.
type Parser func(record string) (source.Source, error)

// Parse builds a lazy pipeline of tasks from a pipeline of input records,
// assigning submission order indices. Indices start at zero on every
// iteration of the returned pipeline.
func Parse(records *pipeline.Pipeline[string], parse Parser) *pipeline.Pipeline[Task] {
	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[Task] {
		return &parseIter{source: records.Iter(ctx), parse: parse}
	})
}

type parseIter struct {
	source pipeline.Iterator[string]
	parse  Parser
	index  int
}

func (it *parseIter) Next(ctx context.Context) (Task, bool, error) {
	record, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return Task{}, false, err
	}
	i := it.index
	it.index++
	src, err := it.parse(record)
	if err != nil {
		return Task{}, false, errors.BadRecord(i, record, err)
	}
	return Task{Index: i, Record: record, Source: src}, true, nil
}

func (it *parseIter) Close() error { return it.source.Close() }
