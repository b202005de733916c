// internal/cellid/address.go
package cellid

import (
	"fmt"
	"sort"
	"strconv"
)

// String serializes the Address into its canonical representation, e.g. "B7".
func (a Address) String() string {
	return string(a.Column) + strconv.Itoa(a.Row)
}

// Validate checks that the column and row are within the grid bounds.
func (a Address) Validate() error {
	if a.Column < firstColumn || a.Column > lastColumn {
		return fmt.Errorf("cell column %q out of range A-Z", a.Column)
	}
	if a.Row < 0 || a.Row >= Rows {
		return fmt.Errorf("cell row %d out of range 0-%d", a.Row, Rows-1)
	}
	return nil
}

// Less orders addresses row-major: by row first, then by column.
func (a Address) Less(other Address) bool {
	if a.Row != other.Row {
		return a.Row < other.Row
	}
	return a.Column < other.Column
}

// Sort sorts addresses in place in row-major order.
func Sort(addrs []Address) {
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
}

// Range returns every address in the rectangle spanned by from and to,
// inclusive, in row-major order. The corners may be given in any order.
func Range(from, to Address) []Address {
	minCol, maxCol := from.Column, to.Column
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}
	minRow, maxRow := from.Row, to.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}

	addrs := make([]Address, 0, int(maxCol-minCol+1)*(maxRow-minRow+1))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			addrs = append(addrs, Address{Column: col, Row: row})
		}
	}
	return addrs
}
