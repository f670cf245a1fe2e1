package service

import (
	"context"
	"testing"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutation_RenameState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)

	state, err := f.mutation.RenameState(ctx, 4, "Ionised")
	require.NoError(t, err)
	assert.Equal(t, int64(4), state.ID())
	assert.Equal(t, "Ionised", state.Name())

	stored, err := f.query.FindState(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Ionised", stored.Name())
}

func TestMutation_RenameStateOutOfRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)
	before, err := f.query.ListStates(ctx)
	require.NoError(t, err)

	_, err = f.mutation.RenameState(ctx, 6, "X")
	require.ErrorIs(t, err, dataset.ErrNotFound)
	_, err = f.mutation.RenameState(ctx, 0, "X")
	require.ErrorIs(t, err, dataset.ErrNotFound)

	after, err := f.query.ListStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMutation_RenameMissingState(t *testing.T) {
	f := newFixture(t)
	f.load(t, dataset.KindState, []string{"1", "Solid"})

	_, err := f.mutation.RenameState(context.Background(), 2, "Liquid")
	require.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestMutation_ReassignSeriesByDiscoveryYear(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)
	f.seedElements(t)
	before, err := f.query.ListElements(ctx)
	require.NoError(t, err)

	updated, err := f.mutation.ReassignSeriesByDiscoveryYear(ctx, 1869, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gallium", "Germanium"}, elementNames(updated))
	for _, e := range updated {
		series, ok := e.SeriesID()
		require.True(t, ok)
		assert.Equal(t, int64(3), series)
	}

	after, err := f.query.ListElements(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i, e := range after {
		if e.DiscoveryYear() == 1869 {
			series, _ := e.SeriesID()
			assert.Equal(t, int64(3), series, e.Name())
			continue
		}
		assert.Equal(t, before[i], e, "%s must be untouched", e.Name())
	}
}

func TestMutation_ReassignSeriesValidatesSeries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)
	f.seedElements(t)

	_, err := f.mutation.ReassignSeriesByDiscoveryYear(ctx, 1869, 11)
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
	_, err = f.mutation.ReassignSeriesByDiscoveryYear(ctx, 1869, 0)
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)

	gallium, err := f.query.FindElement(ctx, 31)
	require.NoError(t, err)
	series, _ := gallium.SeriesID()
	assert.Equal(t, int64(5), series)
}

func TestMutation_ReassignSeriesMissingRow(t *testing.T) {
	f := newFixture(t)
	f.load(t, dataset.KindSeries, []string{"1", "Alkali metals"})

	_, err := f.mutation.ReassignSeriesByDiscoveryYear(context.Background(), 1869, 2)
	require.ErrorIs(t, err, dataset.ErrNotFound)
}

func TestMutation_ReassignSeriesNoMatchingYear(t *testing.T) {
	f := newFixture(t)
	f.seedClassifications(t)
	f.seedElements(t)

	updated, err := f.mutation.ReassignSeriesByDiscoveryYear(context.Background(), 2024, 1)
	require.NoError(t, err)
	assert.Empty(t, updated)
}

func TestMutation_DeleteCompound(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)
	f.seedElements(t)
	f.seedCompounds(t)

	_, err := f.mutation.DeleteCompound(ctx, 999)
	require.ErrorIs(t, err, dataset.ErrNotFound)

	before, err := f.query.ListCompositions(ctx)
	require.NoError(t, err)

	removed, err := f.mutation.DeleteCompound(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "H2O", removed.Formula())

	compounds, err := f.query.ListCompounds(ctx)
	require.NoError(t, err)
	require.Len(t, compounds, 1)
	assert.Equal(t, int64(2), compounds[0].ID())

	after, err := f.query.ListCompositions(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "composition rows are left in place")

	orphan, err := f.query.FindComposition(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), orphan.CompoundID())
}

func TestMutation_DeleteElementsByState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.seedClassifications(t)
	f.seedElements(t)
	f.seedCompounds(t)

	removed, err := f.mutation.DeleteElementsByState(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hydrogen", "Helium", "Oxygen", "Chlorine"}, elementNames(removed))

	remaining, err := f.query.ListElements(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lithium", "Sodium", "Gallium", "Germanium", "Mercury"}, elementNames(remaining))

	edges, err := f.query.ListCompositions(ctx)
	require.NoError(t, err)
	assert.Len(t, edges, 4, "composition rows are left in place")

	removed, err = f.mutation.DeleteElementsByState(ctx, 4)
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestMutation_DeleteElementsByUnknownState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.load(t, dataset.KindState, []string{"1", "Solid"})

	_, err := f.mutation.DeleteElementsByState(ctx, 9)
	require.ErrorIs(t, err, dataset.ErrNotFound)
	_, err = f.mutation.DeleteElementsByState(ctx, 2)
	require.ErrorIs(t, err, dataset.ErrNotFound)
}
