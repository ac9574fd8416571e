package broodrep

import (
	"bytes"
	"compress/zlib"
	"io"
)

// zlibDecompress decodes a single zlib (DEFLATE + wrapper) compressed
// block, routing each chunk compress/flate produces through
// sink before appending it, so the guard sees output as it is produced
// rather than all at once at the end.
func zlibDecompress(data []byte, sink *guardedSink) error {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return newCodecErr(err)
	}
	defer zr.Close()

	buf := make([]byte, 32*1024)
	for {
		n, err := zr.Read(buf)
		if n > 0 {
			if werr := sink.write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return newCodecErr(err)
		}
	}
}
