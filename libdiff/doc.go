// Package libdiff computes structural differences between tag trees.
//
// A diff is an ordered []Change. Package patch turns one into an
// RFC 6902 document that can be applied to a compound.
package libdiff
