package engine

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/dot5enko/trace-column-db/column"
	"github.com/dot5enko/trace-column-db/schema"
)

func buildTestEngine(t *testing.T, rows int) (*Engine, []uint64, []uint64, []uint32) {
	t.Helper()

	ts := make([]uint64, rows)
	dur := make([]uint64, rows)
	track := make([]uint32, rows)

	now := uint64(0)
	for i := 0; i < rows; i++ {
		now += uint64(rand.Intn(100))
		ts[i] = now
		dur[i] = uint64(rand.Intn(10000))
		track[i] = uint32(rand.Intn(8))
	}

	e := New(Config{Workers: 2})

	if err := RegisterSlice(e, ColumnDesc{Name: "ts", Sorted: true}, ts); err != nil {
		t.Fatalf("register failed : %s", err.Error())
	}

	durOrder := make([]uint32, rows)
	for i := range durOrder {
		durOrder[i] = uint32(i)
	}
	column.Of(dur).StableSort(durOrder)
	if err := RegisterSlice(e, ColumnDesc{Name: "dur", Order: durOrder}, dur); err != nil {
		t.Fatalf("register failed : %s", err.Error())
	}

	if err := RegisterSlice(e, ColumnDesc{Name: "track_id"}, track); err != nil {
		t.Fatalf("register failed : %s", err.Error())
	}

	return e, ts, dur, track
}

func TestQueryMatchesBruteForce(t *testing.T) {
	rows := 1000
	e, ts, dur, track := buildTestEngine(t, rows)

	tsFrom := ts[rows/3]
	durFrom := uint64(4000)

	got, err := e.Query(context.Background(),
		[]Constraint{
			{Column: "ts", Op: schema.GeFilterOp, Value: schema.IntValue(int64(tsFrom))},
			{Column: "dur", Op: schema.GtFilterOp, Value: schema.IntValue(int64(durFrom))},
			{Column: "track_id", Op: schema.NeFilterOp, Value: schema.IntValue(3)},
		},
		[]OrderBy{
			{Column: "track_id"},
			{Column: "dur"},
		})
	if err != nil {
		t.Fatalf("query failed : %s", err.Error())
	}

	expected := []uint32{}
	for i := 0; i < rows; i++ {
		if ts[i] >= tsFrom && dur[i] > durFrom && track[i] != 3 {
			expected = append(expected, uint32(i))
		}
	}
	sort.SliceStable(expected, func(a, b int) bool {
		return dur[expected[a]] < dur[expected[b]]
	})
	sort.SliceStable(expected, func(a, b int) bool {
		return track[expected[a]] < track[expected[b]]
	})

	if len(got) != len(expected) {
		t.Fatalf("Expected %d rows but got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("row %d : Expected %d but got %d", i, expected[i], got[i])
		}
	}
}

func TestQueryWithoutConstraintsReturnsEverything(t *testing.T) {
	rows := 100
	e, _, _, _ := buildTestEngine(t, rows)

	got, err := e.Query(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("query failed : %s", err.Error())
	}

	if len(got) != rows {
		t.Errorf("Expected %d but got %d", rows, len(got))
	}
}

func TestSortedColumnAvoidsScan(t *testing.T) {
	rows := 512
	e, ts, _, _ := buildTestEngine(t, rows)

	_, err := e.Query(context.Background(), []Constraint{
		{Column: "ts", Op: schema.GeFilterOp, Value: schema.IntValue(int64(ts[rows/2]))},
	}, nil)
	if err != nil {
		t.Fatalf("query failed : %s", err.Error())
	}

	if e.ScannedRows() != 0 {
		t.Errorf("Expected %d scanned rows but got %d", 0, e.ScannedRows())
	}
}

func TestBoundsPruneSkipsImpossiblePredicates(t *testing.T) {
	rows := 256
	e, _, _, _ := buildTestEngine(t, rows)

	// track ids live in [0, 8), 100 is above every value
	got, err := e.Query(context.Background(), []Constraint{
		{Column: "track_id", Op: schema.GtFilterOp, Value: schema.IntValue(100)},
	}, nil)
	if err != nil {
		t.Fatalf("query failed : %s", err.Error())
	}
	if len(got) != 0 {
		t.Errorf("Expected %d but got %d", 0, len(got))
	}

	got, err = e.Query(context.Background(), []Constraint{
		{Column: "track_id", Op: schema.LeFilterOp, Value: schema.IntValue(100)},
	}, nil)
	if err != nil {
		t.Fatalf("query failed : %s", err.Error())
	}
	if len(got) != rows {
		t.Errorf("Expected %d but got %d", rows, len(got))
	}

	if e.ScannedRows() != 0 {
		t.Errorf("Expected %d scanned rows but got %d", 0, e.ScannedRows())
	}
}

func TestUnknownColumnFails(t *testing.T) {
	e, _, _, _ := buildTestEngine(t, 16)

	_, err := e.Query(context.Background(), []Constraint{
		{Column: "nope", Op: schema.EqFilterOp, Value: schema.IntValue(1)},
	}, nil)
	if err == nil {
		t.Errorf("expected an error for unknown column")
	}
}

func TestMismatchedRowCountRejected(t *testing.T) {
	e, _, _, _ := buildTestEngine(t, 16)

	short := make([]uint64, 8)
	if err := RegisterSlice(e, ColumnDesc{Name: "extra"}, short); err == nil {
		t.Errorf("expected row count mismatch to fail")
	}
}

func TestQueryAfterFreeze(t *testing.T) {
	rows := 300
	e, _, dur, _ := buildTestEngine(t, rows)

	if err := e.Pool().Freeze("track_id"); err != nil {
		t.Fatalf("freeze failed : %s", err.Error())
	}

	got, err := e.Query(context.Background(), []Constraint{
		{Column: "track_id", Op: schema.EqFilterOp, Value: schema.IntValue(5)},
	}, []OrderBy{{Column: "dur"}})
	if err != nil {
		t.Fatalf("query failed : %s", err.Error())
	}

	for i := 1; i < len(got); i++ {
		if dur[got[i-1]] > dur[got[i]] {
			t.Errorf("row %d : result not ordered by dur, %d > %d", i, dur[got[i-1]], dur[got[i]])
		}
	}
}
