// Package walker traverses the graph reference document tree and
// collects the paths of object-role nodes.
package walker

import (
	"sort"

	"github.com/goplotly/graphref/schema"
)

// Visit pairs a node with its location in the document.
type Visit struct {
	// Node is the mapping at Path.
	Node map[string]any

	// Path locates Node within the document. The root document is
	// visited with an empty path.
	Path schema.Path
}

// Visitor is called for each node during a walk. Return false to stop
// walking.
type Visitor func(node map[string]any, path schema.Path) bool

// Walk traverses the document depth-first in preorder, calling visitor
// for every mapping node, starting with the document itself. Only
// mapping children are descended into; child keys are visited in
// sorted order so the walk is deterministic regardless of map
// iteration order.
//
// The path passed to visitor is reused between calls. Visitors that
// retain it must Clone it.
func Walk(doc schema.Document, visitor Visitor) {
	walk(doc, make(schema.Path, 0, 8), visitor)
}

func walk(node map[string]any, path schema.Path, visitor Visitor) bool {
	if !visitor(node, path) {
		return false
	}

	keys := make([]string, 0, len(node))
	for key := range node {
		if _, ok := node[key].(map[string]any); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		child := node[key].(map[string]any)
		if !walk(child, append(path, key), visitor) {
			return false
		}
	}
	return true
}

// Nodes returns every (node, path) pair of the walk, in walk order.
func Nodes(doc schema.Document) []Visit {
	var visits []Visit
	Walk(doc, func(node map[string]any, path schema.Path) bool {
		visits = append(visits, Visit{Node: node, Path: path.Clone()})
		return true
	})
	return visits
}

// ObjectPaths returns the paths of all nodes with the "object" role,
// in walk order.
func ObjectPaths(doc schema.Document) []schema.Path {
	var paths []schema.Path
	Walk(doc, func(node map[string]any, path schema.Path) bool {
		if schema.IsObject(node) {
			paths = append(paths, path.Clone())
		}
		return true
	})
	return paths
}
