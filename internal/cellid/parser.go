// internal/cellid/parser.go
package cellid

import (
	"fmt"
	"regexp"
	"strconv"
)

// addressRegex matches a single column letter followed by a row number with
// no leading zeros.
var addressRegex = regexp.MustCompile(`^([A-Za-z])(0|[1-9][0-9]*)$`)

// Parse creates a new Address by parsing its string representation. The
// column letter is case-insensitive; the canonical form is upper case.
func Parse(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("cell address cannot be empty")
	}

	matches := addressRegex.FindStringSubmatch(raw)
	if matches == nil {
		return Address{}, fmt.Errorf("invalid cell address format: %q", raw)
	}

	column := matches[1][0]
	if column >= 'a' && column <= 'z' {
		column -= 'a' - 'A'
	}

	row, err := strconv.Atoi(matches[2])
	if err != nil {
		// Only reachable on overflow, which is out of range anyway.
		return Address{}, fmt.Errorf("invalid cell row in %q: %w", raw, err)
	}

	return New(column, row)
}

// MustParse is like Parse but panics on error. Intended for fixtures and tests.
func MustParse(raw string) Address {
	a, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return a
}

// IsAddress reports whether raw is a valid cell address.
func IsAddress(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}
