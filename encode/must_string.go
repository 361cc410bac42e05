package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

// MustString returns the compact text form of t, panicking on error.
func MustString(t tag.Tag) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
