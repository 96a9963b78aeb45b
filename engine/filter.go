package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/dot5enko/trace-column-db/bits"
	"github.com/dot5enko/trace-column-db/column"
	"github.com/dot5enko/trace-column-db/ops"
	"github.com/dot5enko/trace-column-db/rowselect"
	"github.com/dot5enko/trace-column-db/schema"
	"github.com/fatih/color"
	"golang.org/x/sys/cpu"
)

// workerStats are written by concurrent filter workers; the pad keeps
// neighbouring slots on separate cache lines.
type workerStats struct {
	RowsScanned atomic.Uint64
	FiltersRun  atomic.Uint64
	_           cpu.CacheLinePad
}

type pruneDecision uint8

const (
	pruneNothing pruneDecision = iota
	pruneAllMatch
	pruneNoneMatch
)

// pruneByBounds resolves predicates that fall entirely outside the
// column's recorded min/max without touching row data. Conversion to
// float64 is monotone, so a strict miss in the float domain is a strict
// miss in the element domain.
func pruneByBounds(op schema.FilterOp, value schema.Value, bounds ops.BoundsFloat) pruneDecision {
	if value.IsNull() {
		return pruneNothing
	}

	v := value.AsFloat()

	if v > bounds.Max {
		switch op {
		case schema.LtFilterOp, schema.LeFilterOp, schema.NeFilterOp:
			return pruneAllMatch
		default:
			return pruneNoneMatch
		}
	}

	if v < bounds.Min {
		switch op {
		case schema.GtFilterOp, schema.GeFilterOp, schema.NeFilterOp:
			return pruneAllMatch
		default:
			return pruneNoneMatch
		}
	}

	return pruneNothing
}

func (e *Engine) evalConstraint(c Constraint, stats *workerStats) (rowselect.RowMap, error) {
	e.mu.RLock()
	col, ok := e.cols[c.Column]
	e.mu.RUnlock()
	if !ok {
		return rowselect.RowMap{}, fmt.Errorf("no such column '%s'", c.Column)
	}

	info, buf, err := e.pool.Acquire(c.Column)
	if err != nil {
		return rowselect.RowMap{}, err
	}

	rows := info.Rows
	storage := column.New(buf, rows, info.Type)
	stats.FiltersRun.Add(1)

	switch pruneByBounds(c.Op, c.Value, col.bounds) {
	case pruneAllMatch:
		e.debugf("constraint %s %s %s resolved by bounds: all %d rows", c.Column, c.Op.String(), c.Value.String(), rows)
		return rowselect.FromRange(schema.NewRange(0, rows)), nil
	case pruneNoneMatch:
		e.debugf("constraint %s %s %s resolved by bounds: empty", c.Column, c.Op.String(), c.Value.String())
		return rowselect.FromRange(schema.Range{}), nil
	}

	fullRange := schema.NewRange(0, rows)

	if col.desc.Sorted {
		if r, answered := storage.BinarySearch(c.Op, c.Value, fullRange); answered {
			return rowselect.FromRange(r), nil
		}
	}

	if col.desc.Order != nil {
		if r, answered := storage.BinarySearchWithIndex(c.Op, c.Value, col.desc.Order, fullRange); answered {
			// r holds slots of the sort order, map them back to rows
			return rowselect.FromBitVector(bits.FromIndices(rows, col.desc.Order[r.Start:r.End])), nil
		}
	}

	stats.RowsScanned.Add(uint64(rows))
	return rowselect.FromBitVector(linearFilter(storage, c.Op, c.Value, rows)), nil
}

// linearFilter runs one full-coverage pass: the word-aligned body goes
// through the batched kernels, the tail through the per-row path.
func linearFilter(storage *column.NumericStorage, op schema.FilterOp, value schema.Value, rows uint32) *bits.BitVector {
	builder := bits.NewBuilder(rows)

	alignedEnd := rows &^ (ops.BlockRows - 1)
	if alignedEnd > 0 {
		storage.LinearSearchAligned(op, value, 0, alignedEnd, builder)
	}
	if alignedEnd < rows {
		storage.LinearSearchUnaligned(op, value, alignedEnd, rows, builder)
	}

	return builder.Build()
}

func (e *Engine) debugf(format string, args ...any) {
	if e.cfg.Debug {
		color.Yellow(format, args...)
	}
}

// ScannedRows sums rows visited by linear scans across all workers.
func (e *Engine) ScannedRows() uint64 {
	total := uint64(0)
	for i := range e.stats {
		total += e.stats[i].RowsScanned.Load()
	}
	return total
}
