// Package patch applies RFC 6902 JSON patches to compounds.
//
// Pointers address the plain shape of a document, as produced by
// convert.ToAny, while values carry their kinds:
//
//	[
//	  {"op": "replace", "path": "/Health", "snbt": "20.0f"},
//	  {"op": "add", "path": "/Inventory/-", "snbt": "{id: \"minecraft:dirt\", Count: 1b}"},
//	  {"op": "remove", "path": "/Motion"}
//	]
//
// Patches are applied through the typed JSON form of package tag and
// every intermediate result is checked, so an operation which would
// mix kinds in a list fails.
package patch
