// Package format names the document formats the nbt tool reads and
// writes.
//
// NBT is the gzip-wrapped binary format, Raw the same without gzip.
// SNBT is the text notation and JSON the kind-annotated JSON form; all
// four decode back to tag trees. YAML, CBOR and plain JSON are one-way
// projections to ordinary values, see package convert.
package format
