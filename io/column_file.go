package io

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dot5enko/trace-column-db/bits"
	"github.com/dot5enko/trace-column-db/schema"
	"github.com/google/uuid"
)

// Raw column files are a development aid for generating and reloading
// sample columns in benchmarks and the demo binary; the engine itself
// has no on-disk format.

const columnFileHeaderSize = 16 + 1 + 4

var (
	ErrShortColumnFile = errors.New("column file shorter than its header claims")
)

type ColumnFile struct {
	Uid  uuid.UUID
	Type schema.ColumnType
	Rows uint32

	// Data stays valid as long as the loaded file buffer does
	Data []byte
}

func WriteColumnFile(path string, meta ColumnFile) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	headerBuf := make([]byte, columnFileHeaderSize)
	writer := bits.NewBinWriter(headerBuf, binary.LittleEndian)
	writer.PutUUID(meta.Uid)
	writer.PutU8(uint8(meta.Type))
	writer.PutU32(meta.Rows)

	if _, err = f.Write(writer.Bytes()); err != nil {
		return err
	}

	writtenBytes, err := f.Write(meta.Data)
	log.Printf("written %d bytes @ %s", writtenBytes+columnFileHeaderSize, path)

	return err
}

func ReadColumnFile(path string) (ColumnFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ColumnFile{}, err
	}

	reader := bits.NewBinReader(raw, binary.LittleEndian)

	var result ColumnFile
	if result.Uid, err = reader.ReadUUID(); err != nil {
		return ColumnFile{}, err
	}

	typ, err := reader.ReadU8()
	if err != nil {
		return ColumnFile{}, err
	}
	result.Type = schema.ColumnType(typ)

	if result.Rows, err = reader.ReadU32(); err != nil {
		return ColumnFile{}, err
	}

	result.Data = reader.Rest()
	if len(result.Data) < int(result.Rows)*result.Type.Size() {
		return ColumnFile{}, fmt.Errorf("%w : have %d bytes for %d rows of %s",
			ErrShortColumnFile, len(result.Data), result.Rows, result.Type.String())
	}

	return result, nil
}
