package lindep_test

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/codenum/gf2"
	"github.com/katalvlaran/codenum/lindep"
)

// row builds single-row parity-check columns from coefficient strings.
func row(t *testing.T, coeffs ...string) []lindep.Column {
	t.Helper()
	cols := make([]lindep.Column, len(coeffs))
	for i, s := range coeffs {
		p, err := gf2.ParsePoly(s)
		require.NoError(t, err)
		cols[i] = lindep.Column{p}
	}

	return cols
}

func TestDatabase_SecondCheckIsCacheHit(t *testing.T) {
	db := lindep.NewDatabase()
	cols := row(t, "11", "11") // h0 = h1 = 1+D → c = (1, 1) has weight 2

	r, err := db.MinZeroCombination(cols, 1, 3)
	require.NoError(t, err)
	assert.True(t, r.Found())
	assert.Equal(t, 2, r.Weight)

	r, err = db.MinZeroCombination(cols, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Weight)

	st := db.Stats()
	assert.EqualValues(t, 1, st.Searches)
	assert.EqualValues(t, 1, st.Hits)
	assert.EqualValues(t, 1, st.Misses)
	assert.Equal(t, 1, st.Entries)
}

func TestDatabase_ColumnOrderSharesEntry(t *testing.T) {
	db := lindep.NewDatabase()
	a := row(t, "11", "111")
	b := row(t, "111", "11")
	assert.Equal(t, lindep.Key(a, 2), lindep.Key(b, 2))
	assert.NotEqual(t, lindep.Key(a, 2), lindep.Key(a, 1))

	// trailing zeros do not change the key
	assert.Equal(t, lindep.Key(row(t, "1100"), 0), lindep.Key(row(t, "11"), 0))

	_, err := db.MinZeroCombination(a, 2, 5)
	require.NoError(t, err)
	_, err = db.MinZeroCombination(b, 2, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 1, db.Stats().Searches)
}

func TestDatabase_ResumesWiderSearch(t *testing.T) {
	db := lindep.NewDatabase()
	// (1+D)·c0 = (1+D+D²)·c1 forces c0 = (1+D+D²)x, c1 = (1+D)x: weight 5.
	cols := row(t, "11", "111")

	r, err := db.MinZeroCombination(cols, 1, 10)
	require.NoError(t, err)
	assert.False(t, r.Found(), "degree ≤ 1 coefficients admit no zero combination")

	r, err = db.MinZeroCombination(cols, 2, 4)
	require.NoError(t, err)
	assert.False(t, r.Found())
	assert.Equal(t, 4, r.SearchedUpTo)

	r, err = db.MinZeroCombination(cols, 2, 6)
	require.NoError(t, err)
	assert.True(t, r.Found())
	assert.Equal(t, 5, r.Weight)

	// a smaller bound is answered from the found weight
	r, err = db.MinZeroCombination(cols, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Weight)

	st := db.Stats()
	assert.EqualValues(t, 3, st.Searches)
	assert.EqualValues(t, 1, st.Hits)

	cached, ok, err := db.Lookup(cols, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, cached.Weight)
}

func TestDatabase_ZeroColumnHasWeightOne(t *testing.T) {
	db := lindep.NewDatabase()
	r, err := db.MinZeroCombination(row(t, "", "1"), 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Weight)
}

func TestDatabase_MultiRowColumns(t *testing.T) {
	db := lindep.NewDatabase()
	one := gf2.PolyFromCoeffs(0)
	d := gf2.PolyFromCoeffs(1)
	// Columns (1,0), (0,1), (1,1): the sum of all three is zero in both rows.
	cols := []lindep.Column{
		{one, gf2.NewPoly()},
		{gf2.NewPoly(), one},
		{one.Clone(), one.Clone()},
	}
	r, err := db.MinZeroCombination(cols, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Weight)

	// (1,D) and (D,D²) are dependent through c = (D, 1).
	r, err = db.MinZeroCombination([]lindep.Column{{one, d}, {d, gf2.PolyFromCoeffs(2)}}, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Weight)
}

func TestDatabase_Validation(t *testing.T) {
	db := lindep.NewDatabase()

	_, err := db.MinZeroCombination(nil, 1, 3)
	assert.ErrorIs(t, err, lindep.ErrBadColumns)

	_, err = db.MinZeroCombination(row(t, "1"), -1, 3)
	assert.ErrorIs(t, err, lindep.ErrBadColumns)

	ragged := []lindep.Column{{gf2.NewPoly()}, {gf2.NewPoly(), gf2.NewPoly()}}
	_, err = db.MinZeroCombination(ragged, 1, 3)
	assert.ErrorIs(t, err, lindep.ErrBadColumns)

	_, err = db.MinZeroCombination([]lindep.Column{{nil}}, 1, 3)
	assert.ErrorIs(t, err, lindep.ErrBadColumns)

	_, _, err = db.Lookup([]lindep.Column{{}}, 0)
	assert.ErrorIs(t, err, lindep.ErrBadColumns)
}

func TestDatabase_ConcurrentSameKeySearchesOnce(t *testing.T) {
	db := lindep.NewDatabase()
	cols := row(t, "11", "111")

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			r, err := db.MinZeroCombination(cols, 2, 6)
			assert.NoError(t, err)
			assert.Equal(t, 5, r.Weight)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, db.Stats().Searches)
	assert.Equal(t, 1, db.Len())
}

func TestDatabase_MetricsAndLogging(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := lindep.NewMetrics(reg)
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	db := lindep.NewDatabase(lindep.WithMetrics(m), lindep.WithLogger(logger))
	cols := row(t, "11", "11")
	for i := 0; i < 3; i++ {
		_, err := db.MinZeroCombination(cols, 1, 3)
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Searches))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Entries))

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "lindep_search", hook.LastEntry().Data["action"])
	assert.Equal(t, 2, hook.LastEntry().Data["weight"])
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { lindep.WithLogger(nil) })
	assert.Panics(t, func() { lindep.WithMetrics(nil) })
}
