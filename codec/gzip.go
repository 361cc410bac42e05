package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

const (
	gzipID1 = 0x1f
	gzipID2 = 0x8b
)

// EncodeCompressed writes c to w inside a single gzip member. The gzip
// stream is finished before returning; w itself is left open.
func EncodeCompressed(w io.Writer, c *tag.Compound, opts ...Option) error {
	o := getOpts(opts...)
	zw, err := gzip.NewWriterLevel(w, o.level)
	if err != nil {
		return err
	}
	if err := Encode(zw, c, opts...); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("writing gzip: %w", err)
	}
	return nil
}

// DecodeCompressed reads one gzip member from r and decodes the document
// inside it. The member's checksum is verified; r itself is left open.
func DecodeCompressed(r io.Reader, opts ...Option) (*tag.Compound, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, gzipErr(err)
	}
	defer zr.Close()
	zr.Multistream(false)
	c, err := Decode(zr, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(io.Discard, zr); err != nil {
		return nil, gzipErr(err)
	}
	return c, nil
}

func gzipErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return fmt.Errorf("reading gzip: %w", err)
}
