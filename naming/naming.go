// Package naming converts graph reference object names into the class
// names used for generated graph object types.
package naming

// ClassName turns an object name like "error_y" into a class name like
// "ErrorY".
//
// Two rules, applied by a single scan:
//
//  1. The first alphabetic character of the name is capitalized. The
//     rest of that run of letters is left alone, so "xbins" becomes
//     "Xbins", not "XBins".
//  2. Every underscore followed by a run of letters is dropped and the
//     run is title-cased: "error_y" -> "ErrorY", "a_BC" -> "ABc".
//
// Non-letter characters pass through unchanged; "histogram2dcontour"
// becomes "Histogram2dcontour". The legacy class names that predate
// these rules live in registry.BackwardsCompatClassNames.
func ClassName(objectName string) string {
	out := make([]byte, 0, len(objectName))
	capitalized := false

	for i := 0; i < len(objectName); {
		c := objectName[i]

		if c == '_' && i+1 < len(objectName) && isLetter(objectName[i+1]) {
			j := i + 1
			for j < len(objectName) && isLetter(objectName[j]) {
				j++
			}
			out = append(out, toUpper(objectName[i+1]))
			for k := i + 2; k < j; k++ {
				out = append(out, toLower(objectName[k]))
			}
			capitalized = true
			i = j
			continue
		}

		if !capitalized && isLetter(c) {
			out = append(out, toUpper(c))
			capitalized = true
		} else {
			out = append(out, c)
		}
		i++
	}

	return string(out)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
