// Package ast provides an in-memory element tree for widget manifests.
//
// The tree mirrors the parts of an XML document the editor cares about:
// every Element has a tag, text content, an ordered attribute set and an
// ordered list of child elements. Attribute order and child order are both
// preserved so that serialization is deterministic.
//
// # Core Types
//
// Element is a tagged node. Attrs is an ordered string-to-string mapping
// whose keys are unique and whose iteration order is insertion order.
//
// # Queries
//
// Every lookup in the editor is a linear scan of direct children for the
// first element matching a predicate. Match values are built with ByTag and
// ByAttr and passed to Find, FindAll and RemoveAll.
//
//	access := root.Find(ast.ByAttr("access", "origin", "*"))
//	if access != nil {
//		root.Remove(access)
//	}
//
// # Validation
//
// The Limits type bounds nesting depth, fan-out, attribute count and text
// size. Three presets are available: DefaultLimits, RelaxedLimits and
// StrictLimits.
//
// Elements are not safe for concurrent mutation; a tree has a single owner.
package ast
