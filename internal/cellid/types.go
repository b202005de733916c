// internal/cellid/types.go
package cellid

const (
	// Columns is the number of addressable columns, A through Z.
	Columns = 26
	// Rows is the number of addressable rows, 0 through 99.
	Rows = 100
	// Count is the total number of addressable cells.
	Count = Columns * Rows

	firstColumn = 'A'
	lastColumn  = firstColumn + Columns - 1
)

// Address is the structured representation of a cell identifier.
// The zero value is not a valid address; use Parse or New.
type Address struct {
	Column byte // 'A'..'Z'
	Row    int  // 0..99
}

// New creates an address from a column letter and a row, validating both.
func New(column byte, row int) (Address, error) {
	a := Address{Column: column, Row: row}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

