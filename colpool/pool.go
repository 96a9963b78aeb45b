package colpool

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dot5enko/trace-column-db/compression"
	"github.com/dot5enko/trace-column-db/schema"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type ColumnInfo struct {
	Uid  uuid.UUID
	Name string
	Type schema.ColumnType
	Rows uint32
}

type CacheStats struct {
	Reads          int64
	Decompressions int64
}

type columnEntry struct {
	info ColumnInfo

	mu sync.RWMutex

	// raw is nil while the column sits cold; compressed survives a
	// decompression so freezing again is free
	raw        []byte
	compressed []byte
	rawSize    int

	reads          atomic.Int64
	decompressions atomic.Int64
}

// Pool owns every column buffer registered for querying. Hot columns are
// handed out as raw borrowed buffers; cold ones are kept lz4-compressed
// and inflated on first demand, once, no matter how many queries ask
// concurrently.
type Pool struct {
	mu      sync.RWMutex
	columns map[string]*columnEntry

	loadGroup singleflight.Group
}

func New() *Pool {
	return &Pool{
		columns: map[string]*columnEntry{},
	}
}

// Add registers a raw column buffer under a unique name. The pool takes
// ownership of buf.
func (p *Pool) Add(name string, typ schema.ColumnType, rows uint32, buf []byte) (uuid.UUID, error) {
	if len(buf) < int(rows)*typ.Size() {
		return uuid.Nil, fmt.Errorf("buffer too small for %d rows of %s", rows, typ.String())
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.columns[name]; exists {
		return uuid.Nil, fmt.Errorf("column '%s' already registered", name)
	}

	uid := uuid.New()
	p.columns[name] = &columnEntry{
		info: ColumnInfo{
			Uid:  uid,
			Name: name,
			Type: typ,
			Rows: rows,
		},
		raw:     buf,
		rawSize: len(buf),
	}

	return uid, nil
}

func (p *Pool) Info(name string) (ColumnInfo, bool) {
	p.mu.RLock()
	entry, ok := p.columns[name]
	p.mu.RUnlock()
	if !ok {
		return ColumnInfo{}, false
	}
	return entry.info, true
}

// Freeze compresses a column and drops its raw buffer. Callers must not
// hold buffers acquired from it across a Freeze.
func (p *Pool) Freeze(name string) error {
	p.mu.RLock()
	entry, ok := p.columns[name]
	p.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no such column '%s'", name)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.raw == nil {
		return nil
	}

	if entry.compressed == nil {
		var compressed bytes.Buffer
		if err := compression.CompressLz4(entry.raw, &compressed); err != nil {
			return fmt.Errorf("unable to compress column '%s' : %s", name, err.Error())
		}
		entry.compressed = compressed.Bytes()
	}

	slog.Info("column frozen",
		"uid", entry.info.Uid.String(),
		"raw_bytes", entry.rawSize,
		"compressed_bytes", len(entry.compressed))

	entry.raw = nil
	return nil
}

// Acquire returns the raw borrowed buffer for a column, decompressing a
// cold one first. Concurrent acquires of the same cold column share one
// decompression.
func (p *Pool) Acquire(name string) (ColumnInfo, []byte, error) {
	p.mu.RLock()
	entry, ok := p.columns[name]
	p.mu.RUnlock()
	if !ok {
		return ColumnInfo{}, nil, fmt.Errorf("no such column '%s'", name)
	}

	entry.reads.Add(1)

	entry.mu.RLock()
	raw := entry.raw
	entry.mu.RUnlock()

	if raw != nil {
		return entry.info, raw, nil
	}

	_, err, _ := p.loadGroup.Do(name, func() (any, error) {
		return nil, thawEntry(entry)
	})
	if err != nil {
		return ColumnInfo{}, nil, err
	}

	entry.mu.RLock()
	raw = entry.raw
	entry.mu.RUnlock()

	return entry.info, raw, nil
}

func (p *Pool) Stats(name string) CacheStats {
	p.mu.RLock()
	entry, ok := p.columns[name]
	p.mu.RUnlock()
	if !ok {
		return CacheStats{}
	}

	return CacheStats{
		Reads:          entry.reads.Load(),
		Decompressions: entry.decompressions.Load(),
	}
}

func thawEntry(entry *columnEntry) error {
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.raw != nil {
		return nil
	}

	thawStart := time.Now()

	out := make([]byte, entry.rawSize)
	if err := compression.DecompressLz4(entry.compressed, out); err != nil {
		showSize := 256
		if len(entry.compressed) < showSize {
			showSize = len(entry.compressed)
		}
		spew.Dump("broken compressed column buffer ", entry.compressed[:showSize])

		return fmt.Errorf("unable to decompress column %s : %s", entry.info.Uid.String(), err.Error())
	}

	entry.raw = out
	entry.decompressions.Add(1)

	tookMs := time.Since(thawStart).Seconds() * 1000
	if tookMs > 10 {
		slog.Info("slow column thaw", "uid", entry.info.Uid.String(), "took", tookMs)
	}

	return nil
}
