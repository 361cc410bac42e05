package nbt

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/convert"
	"github.com/signadot/nbt-format/go-nbt/format"
	"github.com/signadot/nbt-format/go-nbt/parse"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// DetectFormat guesses the format of data. A .snbt or .json suffix on
// name decides; otherwise gzip magic means NBT, a leading Compound kind
// byte means raw NBT and anything else is read as text notation.
func DetectFormat(name string, data []byte) format.Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".snbt":
		return format.SNBTFormat
	case ".json":
		return format.JSONFormat
	}
	switch {
	case len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b:
		return format.NBTFormat
	case len(data) > 0 && data[0] == byte(tag.CompoundKind):
		return format.RawFormat
	default:
		return format.SNBTFormat
	}
}

// Read reads a document from r. If f is nil the format is detected
// from name and the content.
func Read(r io.Reader, name string, f *format.Format) (*tag.Compound, format.Format, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}
	ff := DetectFormat(name, data)
	if f != nil {
		ff = *f
	}
	t, err := convert.Unmarshal(data, ff, parse.ParseFilename(name))
	if err != nil {
		return nil, ff, err
	}
	c, ok := t.(*tag.Compound)
	if !ok {
		return nil, ff, fmt.Errorf("%w: %s holds %s, not Compound", tag.ErrWrongVariant, name, t.Kind())
	}
	return c, ff, nil
}

// ReadFile is Read on the named file.
func ReadFile(name string, f *format.Format) (*tag.Compound, format.Format, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, 0, err
	}
	return Read(bytes.NewReader(data), name, f)
}

// WriteFile writes t to name in format f.
func WriteFile(name string, t tag.Tag, f format.Format) error {
	d, err := convert.Marshal(t, f)
	if err != nil {
		return err
	}
	return os.WriteFile(name, d, 0o644)
}
