package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Parse  bool
	Patch  bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("NBT_DEBUG_DECODE")
	d.Encode = boolEnv("NBT_DEBUG_ENCODE")
	d.Parse = boolEnv("NBT_DEBUG_PARSE")
	d.Patch = boolEnv("NBT_DEBUG_PATCH")
	d.Query = boolEnv("NBT_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
