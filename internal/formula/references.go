package formula

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/cellgrid/internal/cellid"
)

// filename labels formula diagnostics.
const filename = "formula"

// exprStart is the position of the first character after the marker, so
// diagnostic columns line up with the cell's source text.
var exprStart = hcl.Pos{Line: 1, Column: 2, Byte: 1}

// References returns the set of cell addresses mentioned by a formula,
// deduplicated and sorted row-major. Non-formula text has no references.
//
// Extraction works on the token stream rather than the syntax tree, so a
// formula that fails to parse still reports every address-shaped identifier.
// Identifiers that are not valid addresses (e.g. AA1 or true) are ignored,
// as are address-like text inside quoted strings.
func References(source string) []cellid.Address {
	if !IsFormula(source) {
		return nil
	}

	// The lexer reports invalid characters as diagnostics but still returns
	// the tokens it could recognize, which is all we need here.
	tokens, _ := hclsyntax.LexExpression([]byte(expressionText(source)), filename, exprStart)

	seen := make(map[cellid.Address]struct{})
	var refs []cellid.Address
	for _, tok := range tokens {
		if tok.Type != hclsyntax.TokenIdent {
			continue
		}
		addr, err := cellid.Parse(string(tok.Bytes))
		if err != nil {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		refs = append(refs, addr)
	}

	cellid.Sort(refs)
	return refs
}
