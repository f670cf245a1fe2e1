package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/repository"
	"github.com/helixml/periodic/infrastructure/persistence"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_CommitsEveryResolvableRecord(t *testing.T) {
	f := newFixture(t)
	f.seedClassifications(t)

	result := f.load(t, dataset.KindElement,
		elementRow("1", "Hydrogen", "H", "1", "3", "1766"),
		elementRow("2", "Helium", "He", "2", "3", "1868"),
		elementRow("3", "Lithium", "Li", "3", "1", "1817"),
	)

	assert.Equal(t, dataset.KindElement, result.Kind)
	assert.Equal(t, 3, result.Committed)
	assert.Zero(t, result.Skipped)
	assert.Zero(t, result.Defaulted)
	assert.NotEqual(t, uuid.Nil, result.RunID)

	elements, err := f.query.ListElements(context.Background())
	require.NoError(t, err)
	require.Len(t, elements, 3)
	series, ok := elements[2].SeriesID()
	require.True(t, ok)
	assert.Equal(t, int64(3), series)
}

func TestLoader_DefaultsMissingSeriesAndState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)

	result := f.load(t, dataset.KindElement,
		elementRow("1", "Hydrogen", "H", "99", "1", "1766"),
		elementRow("2", "Helium", "He", "1", "42", "1868"),
		elementRow("3", "Lithium", "Li", "x", "", "1817"),
	)
	assert.Equal(t, 3, result.Defaulted)

	hydrogen, err := f.query.FindElement(ctx, 1)
	require.NoError(t, err)
	series, _ := hydrogen.SeriesID()
	state, _ := hydrogen.StateID()
	assert.Equal(t, int64(10), series)
	assert.Equal(t, int64(1), state)

	helium, err := f.query.FindElement(ctx, 2)
	require.NoError(t, err)
	series, _ = helium.SeriesID()
	state, _ = helium.StateID()
	assert.Equal(t, int64(1), series)
	assert.Equal(t, int64(5), state)

	lithium, err := f.query.FindElement(ctx, 3)
	require.NoError(t, err)
	series, _ = lithium.SeriesID()
	state, _ = lithium.StateID()
	assert.Equal(t, int64(10), series)
	assert.Equal(t, int64(5), state)
}

func TestLoader_StoresNullWhenDefaultRowMissing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.load(t, dataset.KindState, []string{"1", "Solid"})
	f.load(t, dataset.KindSeries, []string{"1", "Alkali metals"})

	result := f.load(t, dataset.KindElement, elementRow("3", "Lithium", "Li", "4", "9", "1817"))
	assert.Zero(t, result.Defaulted, "nothing was substituted")

	lithium, err := f.query.FindElement(ctx, 3)
	require.NoError(t, err)
	_, hasSeries := lithium.SeriesID()
	_, hasState := lithium.StateID()
	assert.False(t, hasSeries)
	assert.False(t, hasState)
}

func TestLoader_SkipsDanglingCompositions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)
	f.seedElements(t)
	f.load(t, dataset.KindCompound, []string{"1", "Water", "H2O", "18.015", "0-100"})

	result, err := f.loader.Load(ctx, dataset.KindComposition, dataset.NewSliceSource(
		[]string{"1", "Water", "1", "H", "2"},
		[]string{"7", "Unknown", "1", "H", "1"},
		[]string{"1", "Water", "118", "Og", "1"},
		[]string{"1", "Water", "2", "He", "0"},
	))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Committed)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Skips, 2)
	assert.Equal(t, 2, result.Skips[0].Line)
	assert.Equal(t, []string{"7", "Unknown", "1", "H", "1"}, result.Skips[0].Fields)
	assert.ErrorIs(t, result.Skips[0].Err, dataset.ErrDanglingReference)
	assert.Equal(t, 3, result.Skips[1].Line)
	assert.ErrorIs(t, result.Skips[1].Err, dataset.ErrDanglingReference)

	compositions, err := f.query.ListCompositions(ctx)
	require.NoError(t, err)
	require.Len(t, compositions, 2)
	assert.Equal(t, int64(1), compositions[0].ElementID())
	assert.Equal(t, int64(2), compositions[1].ElementID())
	assert.Equal(t, "He", compositions[1].Symbol())
	assert.Equal(t, "Water", compositions[1].CompoundName())
}

func TestLoader_SkipsShortRecords(t *testing.T) {
	f := newFixture(t)

	result, err := f.loader.Load(context.Background(), dataset.KindState, dataset.NewSliceSource(
		[]string{"1"},
		[]string{"2", "Liquid"},
	))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Committed)
	require.Len(t, result.Skips, 1)
	assert.ErrorIs(t, result.Skips[0].Err, dataset.ErrShortRecord)
}

func TestLoader_SkipsDuplicateKeys(t *testing.T) {
	f := newFixture(t)

	result, err := f.loader.Load(context.Background(), dataset.KindState, dataset.NewSliceSource(
		[]string{"1", "Solid"},
		[]string{"1", "Solid again"},
		[]string{"2", "Liquid"},
	))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Committed)
	require.Len(t, result.Skips, 1)
	assert.ErrorIs(t, result.Skips[0].Err, dataset.ErrStoreFailure)

	state, err := f.query.FindState(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Solid", state.Name())
}

func TestLoader_RoundsDecimalsToThreeDigits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)

	row := elementRow("1", "Hydrogen", "H", "1", "3", "1766")
	row[3] = "1.23456"
	row[7] = "2"
	row[8] = "0.0005"
	row[9] = ""
	row[10] = "n/a"
	f.load(t, dataset.KindElement, row)

	hydrogen, err := f.query.FindElement(ctx, 1)
	require.NoError(t, err)
	m := hydrogen.Measurements()
	assert.Equal(t, "1.235", dataset.FormatDecimal(m.Weight, "-"))
	assert.Equal(t, "2.000", dataset.FormatDecimal(m.Electronegativity, "-"))
	assert.Equal(t, "0.001", dataset.FormatDecimal(m.Fusion, "-"))
	assert.False(t, m.Boiling.Valid, "empty field is null")
	assert.False(t, m.ElectronAffinity.Valid, "malformed field is null")
}

func TestLoader_UnparsableIntegersBecomeZero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)

	row := elementRow("1", "Hydrogen", "H", "1", "3", "circa 1766")
	row[12] = "big"
	f.load(t, dataset.KindElement, row)

	hydrogen, err := f.query.FindElement(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, hydrogen.Radius())
	assert.Zero(t, hydrogen.DiscoveryYear())
}

func TestLoader_CompositionIDsAreAssignedInOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)
	f.seedElements(t)
	f.seedCompounds(t)

	compositions, err := f.query.ListCompositions(ctx)
	require.NoError(t, err)
	require.Len(t, compositions, 4)
	for i, c := range compositions {
		assert.Equal(t, int64(i+1), c.ID())
	}
}

type failingSource struct {
	rows [][]string
	pos  int
	err  error
}

func (s *failingSource) Next() (dataset.Record, error) {
	if s.pos >= len(s.rows) {
		return dataset.Record{}, s.err
	}
	s.pos++
	return dataset.Record{Line: s.pos, Fields: s.rows[s.pos-1]}, nil
}

func TestLoader_SourceFailureReturnsPartialResult(t *testing.T) {
	f := newFixture(t)
	readErr := errors.New("disk gone")
	source := &failingSource{rows: [][]string{{"1", "Solid"}}, err: readErr}

	result, err := f.loader.Load(context.Background(), dataset.KindState, source)
	require.ErrorIs(t, err, readErr)
	assert.Equal(t, 1, result.Committed)

	exists, err := f.stores.States.Exists(context.Background(), repository.WithID(1))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoader_RejectsUnknownKind(t *testing.T) {
	f := newFixture(t)
	_, err := f.loader.Load(context.Background(), dataset.Kind("isotopes"), dataset.NewSliceSource())
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestLoader_CountsOutcomes(t *testing.T) {
	f := newFixture(t)
	f.seedClassifications(t)

	reg := prometheus.NewRegistry()
	metrics, err := NewLoadMetrics(reg)
	require.NoError(t, err)
	loader := NewLoader(persistence.NewUnitOfWork(f.db), nil, metrics, nil)

	_, err = loader.Load(context.Background(), dataset.KindElement, dataset.NewSliceSource(
		elementRow("1", "Hydrogen", "H", "1", "3", "1766"),
		elementRow("2", "Helium", "He", "99", "3", "1868"),
		elementRow("2", "Helium", "He", "2", "3", "1868"),
	))
	require.NoError(t, err)

	counter := metrics.Collector()
	assert.Equal(t, 2.0, testutil.ToFloat64(counter.WithLabelValues("elements", "committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("elements", "skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("elements", "defaulted")))

	again, err := NewLoadMetrics(reg)
	require.NoError(t, err)
	assert.Same(t, counter, again.Collector())
}
