package heuristic_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codenum/code"
	"github.com/katalvlaran/codenum/gf2"
	"github.com/katalvlaran/codenum/heuristic"
	"github.com/katalvlaran/codenum/lindep"
)

// H = [1+D², 1+D+D²] has its lightest zero combination (1+D+D², 1+D²) at
// weight 5.
func TestLinearDependence_Threshold(t *testing.T) {
	db := lindep.NewDatabase()
	c := code.FromConv(conv75(t))

	assert.Equal(t, heuristic.Accept, heuristic.NewLinearDependence(5, db).Evaluate(c))
	assert.Equal(t, heuristic.Reject, heuristic.NewLinearDependence(6, db).Evaluate(c))

	h0, err := conv75(t).parity.Column(0)
	require.NoError(t, err)
	h1, err := conv75(t).parity.Column(1)
	require.NoError(t, err)
	r, ok, err := db.Lookup([]lindep.Column{h0, h1}, 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, lindep.Result{Weight: 5, SearchedUpTo: 5}, r)
}

func TestLinearDependence_SharedCache(t *testing.T) {
	db := lindep.NewDatabase()
	first := heuristic.NewLinearDependence(5, db)
	second := heuristic.NewLinearDependence(5, db)

	assert.True(t, heuristic.Check(first, code.FromConv(conv75(t))))
	assert.True(t, heuristic.Check(first, code.FromConv(conv75(t))))
	assert.True(t, heuristic.Check(second, code.FromConv(conv75(t))))

	st := db.Stats()
	assert.Equal(t, int64(1), st.Searches)
	assert.Equal(t, int64(2), st.Hits)
	assert.Equal(t, 1, st.Entries)

	// a stricter target widens the existing entry instead of starting over
	assert.False(t, heuristic.Check(heuristic.NewLinearDependence(6, db), code.FromConv(conv75(t))))
	assert.Equal(t, int64(2), db.Stats().Searches)
	assert.Equal(t, 1, db.Len())
}

func TestLinearDependence_Concurrent(t *testing.T) {
	db := lindep.NewDatabase()
	h := heuristic.NewLinearDependence(5, db)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, heuristic.Check(h, code.FromConv(conv75(t))))
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), db.Stats().Searches)
}

func TestLinearDependence_Rejections(t *testing.T) {
	db := lindep.NewDatabase()
	h := heuristic.NewLinearDependence(5, db)

	// repeated parity column: h₀ + h₁ = 0 at weight 2
	dup := conv75(t)
	dup.parity = polyMatrix(t, []string{"11", "11"})
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(dup)))

	failing := conv75(t)
	failing.parityErr = errCollaborator
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(failing)))

	empty := conv75(t)
	var err error
	empty.parity, err = gf2.NewPolyMatrix(0, 2)
	require.NoError(t, err)
	assert.Equal(t, heuristic.Reject, h.Evaluate(code.FromConv(empty)))

	assert.Equal(t, heuristic.Reject, heuristic.NewLinearDependence(5, nil).Evaluate(code.FromConv(conv75(t))))
	assert.Equal(t, heuristic.NotApplicable, h.Evaluate(code.FromBlock(&fakeBlock{})))
}
