package exec

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/okapilab/okapi/internal/config"
	"github.com/okapilab/okapi/internal/kernel"
	"github.com/okapilab/okapi/internal/parallel"
	"github.com/okapilab/okapi/internal/validation"
	"github.com/okapilab/okapi/internal/vector"
)

// Pipeline evaluates comparisons over whole Arrow records, splitting them
// into fixed-size batches and fanning the batches out to a worker pool once
// the row count crosses the parallel threshold. Kernels are stateless, so
// the same compiled kernel serves every batch concurrently; each batch
// writes its own result buffer and the parts are reassembled in row order.
type Pipeline struct {
	eval *Evaluator
	cfg  config.Config
	pool *parallel.WorkerPool
}

// NewPipeline creates a pipeline around the evaluator using the given
// configuration.
func NewPipeline(eval *Evaluator, cfg config.Config) *Pipeline {
	eval.SetFastPaths(cfg.EnableFastPaths)
	return &Pipeline{
		eval: eval,
		cfg:  cfg,
		pool: parallel.NewWorkerPool(cfg.WorkerPoolSize),
	}
}

type batchRange struct {
	start, end int
}

type batchResult struct {
	res *vector.Flat[bool]
	err error
}

// CompareColumns evaluates op between two named columns of the record and
// returns the full-length boolean result with nulls propagated.
func (p *Pipeline) CompareColumns(op kernel.Op, rec arrow.Record, leftName, rightName string) (*vector.Flat[bool], error) {
	if err := validation.ValidateAll(
		validation.NewSchemaColumnsValidator(op.String(), rec.Schema(), leftName, rightName),
	); err != nil {
		return nil, err
	}
	leftIdx := rec.Schema().FieldIndices(leftName)
	rightIdx := rec.Schema().FieldIndices(rightName)

	rowCount := int(rec.NumRows())
	var result *vector.Flat[bool]
	err := p.eval.ctx.Metrics().RecordOperation(op.String(), int64(rowCount), func() error {
		var runErr error
		if rowCount < p.cfg.ParallelThreshold || p.cfg.BatchSize <= 0 {
			result, runErr = p.compareSlice(op, rec, leftIdx[0], rightIdx[0])
			return runErr
		}
		result, runErr = p.compareBatched(op, rec, leftIdx[0], rightIdx[0], rowCount)
		return runErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Pipeline) compareSlice(op kernel.Op, rec arrow.Record, leftIdx, rightIdx int) (*vector.Flat[bool], error) {
	left, err := vector.FromArrow(rec.Column(leftIdx))
	if err != nil {
		return nil, err
	}
	right, err := vector.FromArrow(rec.Column(rightIdx))
	if err != nil {
		return nil, err
	}

	var result *vector.Flat[bool]
	rows := vector.SelectAll(int(rec.NumRows()))
	if err := p.eval.Compare(op, left, right, rows, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Pipeline) compareBatched(op kernel.Op, rec arrow.Record, leftIdx, rightIdx, rowCount int) (*vector.Flat[bool], error) {
	batches := make([]batchRange, 0, (rowCount+p.cfg.BatchSize-1)/p.cfg.BatchSize)
	for start := 0; start < rowCount; start += p.cfg.BatchSize {
		end := start + p.cfg.BatchSize
		if end > rowCount {
			end = rowCount
		}
		batches = append(batches, batchRange{start: start, end: end})
	}

	parts := parallel.ProcessIndexed(p.pool, batches, func(_ int, b batchRange) batchResult {
		sl := rec.NewSlice(int64(b.start), int64(b.end))
		defer sl.Release()
		res, err := p.compareSlice(op, sl, leftIdx, rightIdx)
		return batchResult{res: res, err: err}
	})

	merged := vector.NewFlatEmpty[bool](arrow.FixedWidthTypes.Boolean, rowCount)
	for bi, part := range parts {
		if part.err != nil {
			return nil, part.err
		}
		offset := batches[bi].start
		for i := 0; i < part.res.Len(); i++ {
			if part.res.IsNull(i) {
				merged.SetNull(offset + i)
				continue
			}
			merged.Set(offset+i, part.res.Value(i))
		}
	}
	return merged, nil
}
