package formula

import "strings"

// expressionText returns the formula body ready for the HCL scanner.
//
// HCL identifiers may contain dashes, so "A0-B0" would scan as one identifier.
// In a cell formula '-' is always subtraction, so a space is inserted before
// any dash that directly follows an identifier. Dashes inside number literals
// (the exponent sign in 1e-5) are left alone.
func expressionText(source string) string {
	body := source[1:]
	if !strings.Contains(body, "-") {
		return body
	}

	var sb strings.Builder
	sb.Grow(len(body) + 4)

	inRun, inIdent := false, false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case isLetter(c) || c == '_':
			if !inRun {
				inRun, inIdent = true, true
			}
		case isDigit(c):
			if !inRun {
				inRun, inIdent = true, false
			}
		case c == '.' && inRun && !inIdent:
			// decimal point inside a number
		case c == '-' && inIdent:
			sb.WriteByte(' ')
			inRun, inIdent = false, false
		default:
			inRun, inIdent = false, false
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
