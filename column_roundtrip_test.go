package main

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/dot5enko/trace-column-db/column"
	"github.com/dot5enko/trace-column-db/engine"
	"github.com/dot5enko/trace-column-db/io"
	"github.com/dot5enko/trace-column-db/schema"
	"github.com/google/uuid"
)

func TestColumnFileRoundTripIntoEngine(t *testing.T) {
	rows := 777
	dur := make([]uint64, rows)
	for i := range dur {
		dur[i] = uint64(rand.Intn(100000))
	}

	path := filepath.Join(t.TempDir(), "dur_column.bin")

	uid := uuid.New()
	writeErr := io.WriteColumnFile(path, io.ColumnFile{
		Uid:  uid,
		Type: column.TypeOf[uint64](),
		Rows: uint32(rows),
		Data: column.AsBytes(dur),
	})
	if writeErr != nil {
		t.Fatalf("write failed : %s", writeErr.Error())
	}

	loaded, loadErr := io.ReadColumnFile(path)
	if loadErr != nil {
		t.Fatalf("read failed : %s", loadErr.Error())
	}

	if loaded.Uid != uid {
		t.Errorf("Expected %s but got %s", uid.String(), loaded.Uid.String())
	}
	if loaded.Rows != uint32(rows) {
		t.Errorf("Expected %d but got %d", rows, loaded.Rows)
	}

	e := engine.New(engine.Config{})
	registerErr := e.RegisterColumn(engine.ColumnDesc{
		Name: "dur",
		Type: loaded.Type,
	}, loaded.Rows, loaded.Data)
	if registerErr != nil {
		t.Fatalf("register failed : %s", registerErr.Error())
	}

	got, queryErr := e.Query(context.Background(), []engine.Constraint{
		{Column: "dur", Op: schema.LtFilterOp, Value: schema.IntValue(50000)},
	}, nil)
	if queryErr != nil {
		t.Fatalf("query failed : %s", queryErr.Error())
	}

	expected := 0
	for _, d := range dur {
		if d < 50000 {
			expected++
		}
	}
	if len(got) != expected {
		t.Errorf("Expected %d but got %d", expected, len(got))
	}
}

func TestTruncatedColumnFileRejected(t *testing.T) {
	rows := 64
	data := make([]uint32, rows)

	path := filepath.Join(t.TempDir(), "bad_column.bin")

	writeErr := io.WriteColumnFile(path, io.ColumnFile{
		Uid:  uuid.New(),
		Type: column.TypeOf[uint32](),
		Rows: uint32(rows),
		Data: column.AsBytes(data),
	})
	if writeErr != nil {
		t.Fatalf("write failed : %s", writeErr.Error())
	}

	full, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read failed : %s", readErr.Error())
	}
	if writeErr = os.WriteFile(path, full[:len(full)-10], 0o644); writeErr != nil {
		t.Fatalf("truncate failed : %s", writeErr.Error())
	}

	if _, err := io.ReadColumnFile(path); err == nil {
		t.Errorf("expected truncated file to be rejected")
	}
}
