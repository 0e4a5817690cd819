package graphref

import (
	"context"

	"github.com/goplotly/graphref/cache"
	"github.com/goplotly/graphref/loader"
	"github.com/goplotly/graphref/registry"
	"github.com/goplotly/graphref/schema"
)

// Reference is the resolved graph reference: the schema document plus
// the lookup tables derived from it. It is built once and read-only
// afterwards; all methods are safe for concurrent use.
type Reference struct {
	doc       schema.Document
	reg       *registry.Registry
	nodeCache *cache.Cache[string, []map[string]any]
}

// Load resolves the graph reference from the local cache or the
// configured plotly domain and builds a Reference from it.
func Load(ctx context.Context, opts ...Option) (*Reference, error) {
	options := newOptions(opts...)

	doc, err := loader.New(options.loaderOptions()...).Load(ctx)
	if err != nil {
		return nil, err
	}

	return New(doc)
}

// New builds a Reference from an already-obtained document.
func New(doc schema.Document) (*Reference, error) {
	reg, err := registry.Build(doc)
	if err != nil {
		return nil, err
	}

	return &Reference{
		doc:       doc,
		reg:       reg,
		nodeCache: cache.New[string, []map[string]any](256),
	}, nil
}

// Document returns the schema document. Callers must treat it as
// read-only.
func (r *Reference) Document() schema.Document {
	return r.doc
}

// TraceNames returns the trace type names, sorted.
func (r *Reference) TraceNames() []string {
	return r.reg.TraceNames()
}

// ObjectPaths returns the paths of every object-role node in the
// document, in walk order.
func (r *Reference) ObjectPaths() []schema.Path {
	return r.reg.ObjectPaths()
}

// ObjectNames returns every registered object name, sorted.
func (r *Reference) ObjectNames() []string {
	return r.reg.ObjectNames()
}

// PathsFor returns the document paths registered for an object name.
// An empty list with ok true means the object is looked up by name
// only.
func (r *Reference) PathsFor(name string) ([]schema.Path, bool) {
	return r.reg.PathsFor(name)
}

// HasObject reports whether name is a registered object name.
func (r *Reference) HasObject(name string) bool {
	return r.reg.HasObject(name)
}

// ClassNames returns every generated class name, sorted.
func (r *Reference) ClassNames() []string {
	return r.reg.ClassNames()
}

// ObjectNameFor returns the object name behind a generated class name.
func (r *Reference) ObjectNameFor(className string) (string, bool) {
	return r.reg.ObjectNameFor(className)
}

// NodeAt returns the document node at path.
func (r *Reference) NodeAt(path schema.Path) (map[string]any, bool) {
	return schema.GetByPath(r.doc, path)
}

// ObjectsAt resolves the nodes behind every path registered for an
// object name. Class generation hits the same handful of names
// repeatedly, so resolutions are memoized in an LRU cache.
func (r *Reference) ObjectsAt(name string) []map[string]any {
	if !r.reg.HasObject(name) {
		return nil
	}

	return r.nodeCache.GetOrSet(name, func() []map[string]any {
		paths, _ := r.reg.PathsFor(name)
		nodes := make([]map[string]any, 0, len(paths))
		for _, path := range paths {
			if node, ok := schema.GetByPath(r.doc, path); ok {
				nodes = append(nodes, node)
			}
		}
		return nodes
	})
}
