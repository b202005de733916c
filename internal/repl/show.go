package repl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/specialistvlad/cellgrid/internal/cellid"
)

// Default size of the rectangle printed by show.
const (
	showColumns = 6
	showRows    = 10
)

// show prints the rectangle named by args as a table.
func (r *REPL) show(ctx context.Context, args []string) error {
	from, to, err := showRange(args)
	if err != nil {
		return err
	}

	cells, err := r.backend.Snapshot(ctx)
	if err != nil {
		return err
	}
	values := make(map[string]string, len(cells))
	for _, c := range cells {
		values[c.Cell] = c.Value
	}

	addrs := cellid.Range(from, to)
	first, last := addrs[0], addrs[len(addrs)-1]

	var columns []byte
	for col := first.Column; col <= last.Column; col++ {
		columns = append(columns, col)
	}

	widths := make(map[byte]int, len(columns))
	for _, col := range columns {
		widths[col] = 1
	}
	for _, a := range addrs {
		widths[a.Column] = max(widths[a.Column], len(values[a.String()]))
	}
	labelWidth := len(strconv.Itoa(last.Row))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for _, col := range columns {
		b.WriteString("  ")
		b.WriteString(r.paint(color.Cyan, pad(string(col), widths[col])))
	}
	fmt.Fprintln(r.out, strings.TrimRight(b.String(), " "))

	for row := first.Row; row <= last.Row; row++ {
		b.Reset()
		b.WriteString(r.paint(color.Cyan, fmt.Sprintf("%*d", labelWidth, row)))
		for _, col := range columns {
			v := values[cellid.Address{Column: col, Row: row}.String()]
			b.WriteString("  ")
			if v == "" {
				b.WriteString(pad(".", widths[col]))
				continue
			}
			b.WriteString(r.value(v))
			b.WriteString(strings.Repeat(" ", widths[col]-len(v)))
		}
		fmt.Fprintln(r.out, strings.TrimRight(b.String(), " "))
	}
	return nil
}

// showRange resolves the corners of the rectangle to print. With no
// arguments it is A0:F9; a single corner prints the default size from
// there; "from:to" and "from to" name both corners.
func showRange(args []string) (cellid.Address, cellid.Address, error) {
	if len(args) == 1 && strings.Contains(args[0], ":") {
		args = strings.SplitN(args[0], ":", 2)
	}

	switch len(args) {
	case 0:
		return cellid.MustParse("A0"), cellid.Address{Column: 'A' + showColumns - 1, Row: showRows - 1}, nil
	case 1:
		from, err := cellid.Parse(args[0])
		if err != nil {
			return cellid.Address{}, cellid.Address{}, err
		}
		to := cellid.Address{
			Column: byte(min(int(from.Column)+showColumns-1, 'Z')),
			Row:    min(from.Row+showRows-1, cellid.Rows-1),
		}
		return from, to, nil
	case 2:
		from, err := cellid.Parse(args[0])
		if err != nil {
			return cellid.Address{}, cellid.Address{}, err
		}
		to, err := cellid.Parse(args[1])
		if err != nil {
			return cellid.Address{}, cellid.Address{}, err
		}
		return from, to, nil
	default:
		return cellid.Address{}, cellid.Address{}, fmt.Errorf("usage: show [from] [to]")
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
