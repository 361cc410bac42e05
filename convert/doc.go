// Package convert moves tag trees between the formats named in package
// format, and projects them onto plain Go values for consumers that do
// not know about tags (YAML, CBOR, plain JSON, expression evaluation).
package convert
