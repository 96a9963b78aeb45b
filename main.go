package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/dot5enko/trace-column-db/column"
	"github.com/dot5enko/trace-column-db/engine"
	"github.com/dot5enko/trace-column-db/io"
	"github.com/dot5enko/trace-column-db/schema"
	"github.com/google/uuid"
)

const demoRows = 1 << 20

func genTraceColumns(rows int) (ts []uint64, dur []uint64, track []uint32) {
	ts = make([]uint64, rows)
	dur = make([]uint64, rows)
	track = make([]uint32, rows)

	now := uint64(0)
	for i := 0; i < rows; i++ {
		now += uint64(rand.Int63n(2000))
		ts[i] = now
		dur[i] = uint64(rand.Int63n(500000))
		track[i] = uint32(rand.Intn(64))
	}
	return
}

func identityOrder(rows int) []uint32 {
	order := make([]uint32, rows)
	for i := range order {
		order[i] = uint32(i)
	}
	return order
}

func testCycles(n int, label string, testSize int, cb func()) {
	before := time.Now()

	for i := 0; i < n; i++ {
		cb()
	}

	after := time.Since(before)

	perCycle := after.Nanoseconds() / int64(testSize)
	log.Printf(" %s per cycle : %d/ns", label, perCycle)
}

func main() {
	ts, dur, track := genTraceColumns(demoRows)

	e := engine.New(engine.Config{Debug: true})

	if err := engine.RegisterSlice(e, engine.ColumnDesc{Name: "ts", Sorted: true}, ts); err != nil {
		panic(err)
	}

	// dur is unsorted but queried by range a lot, give it a sort order
	durOrder := identityOrder(demoRows)
	column.Of(dur).StableSort(durOrder)
	if err := engine.RegisterSlice(e, engine.ColumnDesc{Name: "dur", Order: durOrder}, dur); err != nil {
		panic(err)
	}

	if err := engine.RegisterSlice(e, engine.ColumnDesc{Name: "track_id"}, track); err != nil {
		panic(err)
	}

	ctx := context.Background()

	indices, err := e.Query(ctx,
		[]engine.Constraint{
			{Column: "ts", Op: schema.GeFilterOp, Value: schema.IntValue(int64(ts[demoRows/2]))},
			{Column: "dur", Op: schema.GtFilterOp, Value: schema.IntValue(400000)},
		},
		[]engine.OrderBy{
			{Column: "track_id"},
			{Column: "dur"},
		})
	if err != nil {
		panic(err)
	}

	slog.Info("slow slices in second half of trace", "count", len(indices), "scanned_rows", e.ScannedRows())

	for i, row := range indices[:min(10, len(indices))] {
		log.Printf("%d : row %d track %d dur %d", i, row, track[row], dur[row])
	}

	testCycles(10, "track_id eq scan", demoRows, func() {
		_, queryErr := e.Query(ctx, []engine.Constraint{
			{Column: "track_id", Op: schema.EqFilterOp, Value: schema.IntValue(7)},
		}, nil)
		if queryErr != nil {
			panic(queryErr)
		}
	})

	// cold column round trip
	if err = e.Pool().Freeze("track_id"); err != nil {
		panic(err)
	}
	if _, err = e.Query(ctx, []engine.Constraint{
		{Column: "track_id", Op: schema.EqFilterOp, Value: schema.IntValue(7)},
	}, nil); err != nil {
		panic(err)
	}

	// dump a column for later benchmark runs
	dumpPath := "./dur_column.bin"
	dumpErr := io.WriteColumnFile(dumpPath, io.ColumnFile{
		Uid:  uuid.New(),
		Type: column.TypeOf[uint64](),
		Rows: demoRows,
		Data: column.AsBytes(dur),
	})
	if dumpErr != nil {
		panic(dumpErr)
	}

	loaded, loadErr := io.ReadColumnFile(dumpPath)
	if loadErr != nil {
		panic(loadErr)
	}
	slog.Info("column file round trip", "uid", loaded.Uid.String(), "rows", loaded.Rows, "type", loaded.Type.String())

	os.Remove(dumpPath)
}
