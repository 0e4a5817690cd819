// Package registry derives the lookup tables consumed by graph object
// class generation: object name to document paths, and class name to
// object name.
package registry

import (
	"fmt"
	"sort"

	"github.com/goplotly/graphref/naming"
	"github.com/goplotly/graphref/schema"
	"github.com/goplotly/graphref/walker"
)

// BackwardsCompatClassNames maps legacy class names to their current
// object names. These entries always win over derived class names.
var BackwardsCompatClassNames = map[string]string{
	"AngularAxis":        "angularaxis",
	"ColorBar":           "colorbar",
	"Area":               "scatter",
	"Font":               "textfont",
	"Histogram2dContour": "histogram2dcontour",
	"RadialAxis":         "radialaxis",
	"XAxis":              "xaxis",
	"XBins":              "xbins",
	"YAxis":              "yaxis",
	"YBins":              "ybins",
	"ZAxis":              "zaxis",
}

// Registry holds the derived lookup tables. It is built once by Build
// and read-only afterwards.
type Registry struct {
	traceNames  []string
	objectPaths []schema.Path
	objects     map[string][]schema.Path
	classNames  map[string]string
}

// Build derives a Registry from the graph reference document.
func Build(doc schema.Document) (*Registry, error) {
	traces, ok := doc[schema.TracesKey].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("graph reference has no %q section", schema.TracesKey)
	}

	traceNames := make([]string, 0, len(traces))
	for name := range traces {
		traceNames = append(traceNames, name)
	}
	sort.Strings(traceNames)

	r := &Registry{
		traceNames:  traceNames,
		objectPaths: walker.ObjectPaths(doc),
	}
	r.objects = r.buildObjects(doc)
	r.classNames = r.buildClassNames()
	return r, nil
}

// buildObjects maps object names to the paths where they occur. An
// object flagged _isLinkedToArray also accumulates under its singular
// name (trailing "s" stripped). Trace names and the synthetic
// figure/data/layout names are then registered with empty path lists:
// those are looked up by name only, even when a same-named node exists
// in the tree.
func (r *Registry) buildObjects(doc schema.Document) map[string][]schema.Path {
	objects := make(map[string][]schema.Path, len(r.objectPaths))

	for _, path := range r.objectPaths {
		name := path.Last()
		node, ok := schema.GetByPath(doc, path)
		if !ok {
			continue
		}

		if schema.IsLinkedToArray(node) && len(name) > 0 {
			itemName := name[:len(name)-1]
			objects[itemName] = append(objects[itemName], path)
		}

		objects[name] = append(objects[name], path)
	}

	for _, traceName := range r.traceNames {
		objects[traceName] = []schema.Path{}
	}
	objects[schema.Figure] = []schema.Path{}
	objects[schema.Data] = []schema.Path{}
	objects[schema.Layout] = []schema.Path{}

	return objects
}

// buildClassNames derives class names for every object name and then
// overlays the backwards-compat table, which wins unconditionally.
func (r *Registry) buildClassNames() map[string]string {
	classNames := make(map[string]string, len(r.objects))
	for objectName := range r.objects {
		classNames[naming.ClassName(objectName)] = objectName
	}
	for className, objectName := range BackwardsCompatClassNames {
		classNames[className] = objectName
	}
	return classNames
}

// TraceNames returns the trace type names, sorted.
func (r *Registry) TraceNames() []string {
	return r.traceNames
}

// ObjectPaths returns the paths of every object-role node, in walk
// order.
func (r *Registry) ObjectPaths() []schema.Path {
	return r.objectPaths
}

// ObjectNames returns every registered object name, sorted.
func (r *Registry) ObjectNames() []string {
	names := make([]string, 0, len(r.objects))
	for name := range r.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PathsFor returns the paths registered for an object name. An empty
// list with ok true means the object is looked up by name only.
func (r *Registry) PathsFor(name string) (paths []schema.Path, ok bool) {
	paths, ok = r.objects[name]
	return paths, ok
}

// HasObject reports whether name is a registered object name.
func (r *Registry) HasObject(name string) bool {
	_, ok := r.objects[name]
	return ok
}

// ClassNames returns every generated class name, sorted.
func (r *Registry) ClassNames() []string {
	names := make([]string, 0, len(r.classNames))
	for name := range r.classNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ObjectNameFor returns the object name behind a generated class name.
func (r *Registry) ObjectNameFor(className string) (string, bool) {
	objectName, ok := r.classNames[className]
	return objectName, ok
}
