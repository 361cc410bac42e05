package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/nbt-format/go-nbt/tag"
)

var (
	floatRe          = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]?|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?f$`)
	byteRe           = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)b$`)
	longRe           = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)l$`)
	shortRe          = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)s$`)
	intRe            = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	doubleRe         = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]?|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?d$`)
	doubleNoSuffixRe = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?$`)
)

// word classifies an unquoted word. Anything that is not a well-formed
// in-range number or boolean is a String.
func word(s string) tag.Tag {
	switch {
	case floatRe.MatchString(s):
		if v, ok := parseFloat(s[:len(s)-1], 32); ok {
			return tag.NewFloat(float32(v))
		}
	case byteRe.MatchString(s):
		if v, err := strconv.ParseInt(s[:len(s)-1], 10, 8); err == nil {
			return tag.NewByte(int8(v))
		}
	case longRe.MatchString(s):
		if v, err := strconv.ParseInt(s[:len(s)-1], 10, 64); err == nil {
			return tag.NewLong(v)
		}
	case shortRe.MatchString(s):
		if v, err := strconv.ParseInt(s[:len(s)-1], 10, 16); err == nil {
			return tag.NewShort(int16(v))
		}
	case intRe.MatchString(s):
		if v, err := strconv.ParseInt(s, 10, 32); err == nil {
			return tag.NewInt(int32(v))
		}
	case doubleRe.MatchString(s):
		if v, ok := parseFloat(s[:len(s)-1], 64); ok {
			return tag.NewDouble(v)
		}
	case doubleNoSuffixRe.MatchString(s):
		if v, ok := parseFloat(s, 64); ok {
			return tag.NewDouble(v)
		}
	case strings.EqualFold(s, "true"):
		return tag.NewBool(true)
	case strings.EqualFold(s, "false"):
		return tag.NewBool(false)
	}
	return tag.NewString(s)
}

// parseFloat saturates to an infinity when s overflows.
func parseFloat(s string, bits int) (float64, bool) {
	v, err := strconv.ParseFloat(s, bits)
	if err != nil && !math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// unquote strips the quotes of a quoted string token. The only escapes
// are a backslash before another backslash or before the quote.
func unquote(s string) (string, bool) {
	q := s[0]
	body := s[1 : len(s)-1]
	if strings.IndexByte(body, '\\') == -1 {
		return body, true
	}
	var buf strings.Builder
	buf.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		i++
		if i == len(body) || (body[i] != '\\' && body[i] != q) {
			return "", false
		}
		buf.WriteByte(body[i])
	}
	return buf.String(), true
}
