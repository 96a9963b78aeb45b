package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

func CompressLz4(src []byte, output *bytes.Buffer) error {
	zw := lz4.NewWriter(output)

	zw.Write(src)
	flushErr := zw.Flush()

	if flushErr != nil {
		return flushErr
	}

	return zw.Close()
}

// DecompressLz4 inflates src into out, which must be sized to the exact
// uncompressed length recorded by the producer.
func DecompressLz4(src []byte, out []byte) error {
	zr := lz4.NewReader(bytes.NewReader(src))

	readBytes, err := io.ReadFull(zr, out)
	if err != nil {
		return fmt.Errorf("lz4 decompress failed after %d bytes : %s", readBytes, err.Error())
	}

	// anything left over means the recorded length lied
	var probe [1]byte
	if n, _ := zr.Read(probe[:]); n != 0 {
		return fmt.Errorf("lz4 stream longer than declared %d bytes", len(out))
	}

	return nil
}
