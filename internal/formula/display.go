package formula

import "strconv"

// Display renders a cell for the grid: literal cells show their text
// verbatim, formula cells show their number or an error marker.
func Display(source string, v Value) string {
	if !IsFormula(source) {
		return source
	}
	if v.Err != nil {
		return v.Err.Reason.Marker()
	}
	return FormatNumber(v.Number)
}

// FormatNumber prints the shortest decimal that round-trips to n.
func FormatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// IsMarker reports whether s is one of the error markers Display produces.
func IsMarker(s string) bool {
	for _, r := range []Reason{ReasonParse, ReasonUndefined, ReasonCycle, ReasonRange} {
		if s == r.Marker() {
			return true
		}
	}
	return false
}
