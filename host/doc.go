// Package host is the boundary between tag trees and the objects of a
// host engine: items, entities and block states.
//
// A host provides one Adapter per object kind. Adapters are collected
// in a Registry, either built directly with NewRegistry or installed
// once per process with Install and retrieved with Default.
//
// Package memhost implements the adapters over in-memory objects.
package host
