// Package tag provides the in-memory model of NBT tag trees.
//
// # Kinds
//
// Every tag has one of twelve kinds, identified on the wire by a byte
// id (see Kind). The Go type of a tag determines its kind: *Byte is
// always ByteKind, *List always ListKind and so on.
//
// # Containers
//
// A Compound maps string keys to tags, with at most one tag per key.
// A List holds tags of a single kind; the kind is fixed by the first
// element inserted (or by NewListOf) and enforced on every insertion.
//
// Booleans have no kind of their own. They are stored as Byte 1 or 0
// and read back as nonzero-is-true.
//
// # Equality
//
// Equal compares trees structurally. Compound entry order never
// matters, and two empty lists are equal whatever element kind they
// were created with. Hash is consistent with Equal.
//
// # JSON
//
// MarshalJSON and UnmarshalJSON map trees to a kind-annotated JSON form
// which, unlike a plain projection, preserves every kind.
package tag
