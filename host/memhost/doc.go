// Package memhost is a host without an engine: items, entities and
// block states held in memory, their tags stored as encoded binary NBT.
package memhost
