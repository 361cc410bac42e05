package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/nbt-format/go-nbt/encode"
	"github.com/signadot/nbt-format/go-nbt/tag"
)

// Logf writes a formatted message to stderr. Tag arguments are
// rendered as indented text notation and plain maps and slices as
// indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case tag.Tag:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf, encode.EncodeIndent(2)); err != nil {
				args[i] = fmt.Sprintf("[raw tag] %v", x)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
