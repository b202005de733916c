package depgraph

import (
	"testing"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// position returns the index of the component containing addr.
func position(t *testing.T, comps []Component, addr cellid.Address) int {
	t.Helper()
	for i, c := range comps {
		for _, m := range c.Cells {
			if m == addr {
				return i
			}
		}
	}
	require.Failf(t, "cell not planned", "%s", addr)
	return -1
}

func TestPlan_AcyclicOrder(t *testing.T) {
	g := New()
	// A1 = A0 + B0, A2 = A1 * A0, B2 = A2
	g.SetDependencies(a("A1"), list("A0", "B0"))
	g.SetDependencies(a("A2"), list("A1", "A0"))
	g.SetDependencies(a("B2"), list("A2"))

	comps := g.Plan(g.Affected(a("A0")))
	require.Len(t, comps, 4)
	for _, c := range comps {
		assert.False(t, c.Cyclic)
		assert.Len(t, c.Cells, 1)
	}

	assert.Less(t, position(t, comps, a("A0")), position(t, comps, a("A1")))
	assert.Less(t, position(t, comps, a("A1")), position(t, comps, a("A2")))
	assert.Less(t, position(t, comps, a("A2")), position(t, comps, a("B2")))
}

func TestPlan_Diamond(t *testing.T) {
	g := New()
	// B0 and C0 both read A0; D0 reads both.
	g.SetDependencies(a("B0"), list("A0"))
	g.SetDependencies(a("C0"), list("A0", "B0"))
	g.SetDependencies(a("D0"), list("B0", "C0"))

	comps := g.Plan(g.Affected(a("A0")))
	require.Len(t, comps, 4)
	assert.Less(t, position(t, comps, a("B0")), position(t, comps, a("C0")))
	assert.Less(t, position(t, comps, a("C0")), position(t, comps, a("D0")))
}

func TestPlan_SelfReference(t *testing.T) {
	g := New()
	g.SetDependencies(a("A0"), list("A0"))

	comps := g.Plan(list("A0"))
	require.Len(t, comps, 1)
	assert.True(t, comps[0].Cyclic)
	assert.Equal(t, list("A0"), comps[0].Cells)
}

func TestPlan_ThreeCellCycleWithDownstream(t *testing.T) {
	g := New()
	g.SetDependencies(a("A0"), list("B0"))
	g.SetDependencies(a("B0"), list("C0"))
	g.SetDependencies(a("C0"), list("A0"))
	g.SetDependencies(a("D0"), list("A0"))

	comps := g.Plan(g.Affected(a("C0")))
	require.Len(t, comps, 2)
	assert.True(t, comps[0].Cyclic)
	assert.Equal(t, list("A0", "B0", "C0"), comps[0].Cells)
	assert.False(t, comps[1].Cyclic)
	assert.Equal(t, list("D0"), comps[1].Cells)
}

func TestPlan_IgnoresEdgesOutsideSet(t *testing.T) {
	g := New()
	g.SetDependencies(a("A1"), list("A0"))
	g.SetDependencies(a("A0"), list("Z9"))

	comps := g.Plan(list("A0", "A1"))
	require.Len(t, comps, 2)
	assert.Equal(t, list("A0"), comps[0].Cells)
	assert.Equal(t, list("A1"), comps[1].Cells)
}

func TestPlan_Empty(t *testing.T) {
	assert.Empty(t, New().Plan(nil))
}
