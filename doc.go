// Package graphref resolves the plotly graph reference (the JSON
// schema describing every valid graph object type) and derives the
// lookup tables used to generate graph object classes.
//
// The schema is loaded once, from the local settings directory when a
// cached copy exists and otherwise with a single fetch from the
// configured plotly domain. The resulting Reference is immutable and
// safe for concurrent readers:
//
//	ref, err := graphref.Load(ctx)
//	if err != nil {
//	    return err
//	}
//	objectName, ok := ref.ObjectNameFor("ErrorY")
package graphref
