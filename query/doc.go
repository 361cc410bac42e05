// Package query evaluates expr-lang expressions over compounds.
//
// The document's entries are projected with convert.ToAny, so
//
//	Health > 10 && Inventory[0].id == "minecraft:stone"
//
// reads the Health entry and the id of the first Inventory item.
// Kinds can be inspected with kind("$.Health").
package query
