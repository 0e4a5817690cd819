// Package schema defines the shared types for working with the graph
// reference document: the decoded document itself, paths into its tree,
// and the node predicates the rest of the module filters on.
package schema

import "strings"

// Well-known keys and values in the graph reference document.
const (
	// RoleKey is the node field naming the node's role.
	RoleKey = "role"

	// RoleObject marks a node as a configurable graph object type.
	RoleObject = "object"

	// LinkedToArrayKey marks a node as the item type of an
	// array-valued collection.
	LinkedToArrayKey = "_isLinkedToArray"

	// TracesKey is the top-level section mapping trace type names to
	// their definitions.
	TracesKey = "traces"
)

// Synthetic object names that are always registered for lookup by name
// even though they have no path in the document.
const (
	Figure = "figure"
	Data   = "data"
	Layout = "layout"
)

// Document is a decoded graph reference document.
type Document map[string]any

// Path is an ordered sequence of keys locating a node within a
// Document.
type Path []string

// String returns the dotted form of the path, e.g. "traces.scatter".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Last returns the final path segment, which is the object name for
// object-role nodes. Returns "" for the empty (root) path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Clone returns a copy of the path. Callers that retain paths across
// walks must clone, since walkers reuse their path buffers.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Equal reports whether two paths have identical segments.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// GetByPath descends the document along path, returning the mapping at
// its end. The empty path returns the document itself.
func GetByPath(doc Document, path Path) (map[string]any, bool) {
	node := map[string]any(doc)
	for _, key := range path {
		child, ok := node[key].(map[string]any)
		if !ok {
			return nil, false
		}
		node = child
	}
	return node, true
}

// IsObject reports whether node has the "object" role.
func IsObject(node map[string]any) bool {
	role, _ := node[RoleKey].(string)
	return role == RoleObject
}

// IsLinkedToArray reports whether node is flagged as an array item
// type.
func IsLinkedToArray(node map[string]any) bool {
	linked, _ := node[LinkedToArrayKey].(bool)
	return linked
}
