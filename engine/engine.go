package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/dot5enko/trace-column-db/colpool"
	"github.com/dot5enko/trace-column-db/column"
	"github.com/dot5enko/trace-column-db/ops"
	"github.com/dot5enko/trace-column-db/rowselect"
	"github.com/dot5enko/trace-column-db/schema"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	// Workers caps how many column filters of one query run in
	// parallel. Zero means one per CPU.
	Workers int

	// Debug turns on per-constraint colored diagnostics.
	Debug bool
}

// Constraint is one predicate over one column; all constraints of a
// query are intersected.
type Constraint struct {
	Column string
	Op     schema.FilterOp
	Value  schema.Value
}

// OrderBy names a sort key, most significant first. Ascending only,
// which is all the storage sort primitive produces.
type OrderBy struct {
	Column string
}

type ColumnDesc struct {
	Name string
	Type schema.ColumnType

	// Sorted marks physically ascending data, enabling plain binary
	// search. Order carries a precomputed sort permutation for columns
	// that are not physically sorted; both may be absent.
	Sorted bool
	Order  []uint32
}

type registeredColumn struct {
	desc   ColumnDesc
	bounds ops.BoundsFloat
}

// Engine glues the storage core to callers: it owns the column pool,
// evaluates constraints into row selections, intersects them and applies
// ORDER BY keys through the stable sort primitive.
type Engine struct {
	cfg  Config
	pool *colpool.Pool

	mu   sync.RWMutex
	cols map[string]*registeredColumn
	rows uint32

	stats []workerStats
}

func New(cfg Config) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Engine{
		cfg:   cfg,
		pool:  colpool.New(),
		cols:  map[string]*registeredColumn{},
		stats: make([]workerStats, cfg.Workers),
	}
}

func (e *Engine) Pool() *colpool.Pool {
	return e.pool
}

func (e *Engine) Rows() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rows
}

// RegisterColumn hands a raw column buffer to the engine. Every column
// of the table must carry the same row count.
func (e *Engine) RegisterColumn(desc ColumnDesc, rows uint32, buf []byte) error {
	if desc.Order != nil && len(desc.Order) != int(rows) {
		return fmt.Errorf("order permutation has %d slots for %d rows", len(desc.Order), rows)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cols) > 0 && rows != e.rows {
		return fmt.Errorf("column '%s' has %d rows, table has %d", desc.Name, rows, e.rows)
	}

	uid, err := e.pool.Add(desc.Name, desc.Type, rows, buf)
	if err != nil {
		return err
	}

	bounds := column.New(buf, rows, desc.Type).Bounds()

	e.cols[desc.Name] = &registeredColumn{
		desc:   desc,
		bounds: bounds,
	}
	e.rows = rows

	slog.Info("column registered",
		"name", desc.Name,
		"uid", uid.String(),
		"type", desc.Type.String(),
		"rows", rows,
		"sorted", desc.Sorted)

	return nil
}

// RegisterSlice registers a typed slice without copying it.
func RegisterSlice[T ops.NumericTypes](e *Engine, desc ColumnDesc, data []T) error {
	desc.Type = column.TypeOf[T]()
	return e.RegisterColumn(desc, uint32(len(data)), column.AsBytes(data))
}

// Query evaluates every constraint, intersects the selections and
// returns matching row ids, ordered by the given keys. Cancellation is
// coarse: a canceled context stops constraints that have not started.
func (e *Engine) Query(ctx context.Context, constraints []Constraint, orderBy []OrderBy) ([]uint32, error) {
	queryStart := time.Now()

	e.mu.RLock()
	rows := e.rows
	e.mu.RUnlock()

	maps := make([]rowselect.RowMap, len(constraints))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for i, c := range constraints {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			m, err := e.evalConstraint(c, &e.stats[i%e.cfg.Workers])
			if err != nil {
				return fmt.Errorf("constraint on '%s' failed : %s", c.Column, err.Error())
			}
			maps[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	selected := rowselect.FromRange(schema.NewRange(0, rows))
	if len(constraints) > 0 {
		selected = rowselect.AndAll(maps)
	}
	indices := selected.Indices()

	// least significant key first, stability stacks the rest
	for i := len(orderBy) - 1; i >= 0; i-- {
		if err := e.sortByColumn(orderBy[i].Column, indices); err != nil {
			return nil, err
		}
	}

	slog.Info("query done",
		"constraints", len(constraints),
		"order_keys", len(orderBy),
		"matched", len(indices),
		"took", time.Since(queryStart).Seconds()*1000)

	return indices, nil
}

func (e *Engine) sortByColumn(name string, indices []uint32) error {
	info, buf, err := e.pool.Acquire(name)
	if err != nil {
		return err
	}

	column.New(buf, info.Rows, info.Type).StableSort(indices)
	return nil
}
