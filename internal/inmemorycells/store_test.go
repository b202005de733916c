package inmemorycells

import (
	"fmt"
	"sync"
	"testing"

	"github.com/specialistvlad/cellgrid/internal/cellid"
	"github.com/specialistvlad/cellgrid/internal/cellstore"
	"github.com/specialistvlad/cellgrid/internal/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Missing(t *testing.T) {
	s := New()

	e, ok := s.Get(cellid.MustParse("A0"))
	assert.False(t, ok)
	assert.Equal(t, cellstore.Blank(), e)
	assert.True(t, e.IsBlank())
	assert.Equal(t, "", e.Display())
}

func TestPutAndGet(t *testing.T) {
	s := New()
	addr := cellid.MustParse("B3")
	entry := cellstore.Entry{Source: "=1/0", Value: formula.Fail(formula.ReasonUndefined, "division by zero")}

	s.Put(addr, entry)

	got, ok := s.Get(addr)
	require.True(t, ok)
	assert.Equal(t, entry, got)
	assert.Equal(t, "#DIV/0!", got.Display())
	assert.Equal(t, 1, s.Len())
}

func TestPut_BlankRemoves(t *testing.T) {
	s := New()
	addr := cellid.MustParse("C1")

	s.Put(addr, cellstore.Entry{Source: "7", Value: formula.Number(7)})
	require.Equal(t, 1, s.Len())

	s.Put(addr, cellstore.Blank())
	_, ok := s.Get(addr)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestPut_BlankSourceWithValueIsKept(t *testing.T) {
	// A cleared cell that is still flagged as a cycle member must not vanish.
	s := New()
	addr := cellid.MustParse("C1")
	s.Put(addr, cellstore.Entry{Value: formula.Cycle(), InCycle: true})

	_, ok := s.Get(addr)
	assert.True(t, ok)
}

func TestSnapshot_Ordered(t *testing.T) {
	s := New()
	for _, raw := range []string{"B1", "A1", "C0"} {
		s.Put(cellid.MustParse(raw), cellstore.Entry{Source: raw, Value: formula.Number(0)})
	}

	snap := s.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "C0", snap[0].Address.String())
	assert.Equal(t, "A1", snap[1].Address.String())
	assert.Equal(t, "B1", snap[2].Address.String())
	assert.Equal(t, "B1", snap[2].Source)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	addrs := cellid.Range(cellid.MustParse("A0"), cellid.MustParse("J9"))
	wg.Add(len(addrs))
	for i, addr := range addrs {
		go func(i int, addr cellid.Address) {
			defer wg.Done()
			s.Put(addr, cellstore.Entry{Source: fmt.Sprint(i), Value: formula.Number(float64(i))})
			s.Get(addr)
			s.Snapshot()
		}(i, addr)
	}
	wg.Wait()

	assert.Equal(t, len(addrs), s.Len())
	e, ok := s.Get(cellid.MustParse("A0"))
	require.True(t, ok)
	assert.Equal(t, "0", e.Source)
}
