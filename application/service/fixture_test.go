package service

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/infrastructure/persistence"
	"github.com/helixml/periodic/internal/database"
	"github.com/helixml/periodic/internal/testdb"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db       database.Database
	stores   dataset.Stores
	schema   *Schema
	loader   *Loader
	query    *Query
	mutation *Mutation
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return fixtureOn(t, testdb.New(t))
}

func fixtureOn(t *testing.T, db database.Database) fixture {
	t.Helper()
	uow := persistence.NewUnitOfWork(db)
	return fixture{
		db:       db,
		stores:   persistence.NewStores(db),
		schema:   NewSchema(uow, persistence.DropFailureReason, nil),
		loader:   NewLoader(uow, NewResolver(nil), nil, nil),
		query:    NewQuery(uow, nil),
		mutation: NewMutation(uow, nil),
	}
}

// load runs a pass and requires every record to be committed.
func (f fixture) load(t *testing.T, kind dataset.Kind, rows ...[]string) LoadResult {
	t.Helper()
	result, err := f.loader.Load(context.Background(), kind, dataset.NewSliceSource(rows...))
	require.NoError(t, err)
	require.Equal(t, len(rows), result.Committed, "skips: %+v", result.Skips)
	return result
}

// seedClassifications loads states 1..5 and series 1..10.
func (f fixture) seedClassifications(t *testing.T) {
	t.Helper()
	states := [][]string{{"1", "Solid"}, {"2", "Liquid"}, {"3", "Gas"}, {"4", "Plasma"}, {"5", "Unknown"}}
	f.load(t, dataset.KindState, states...)

	series := make([][]string, 0, 10)
	for i := 1; i <= 10; i++ {
		series = append(series, []string{strconv.Itoa(i), fmt.Sprintf("Series %d", i)})
	}
	f.load(t, dataset.KindSeries, series...)
}

// elementRow builds a full element record with empty measurements.
func elementRow(id, name, symbol, series, state, year string) []string {
	row := make([]string, dataset.KindElement.FieldCount())
	row[0] = id
	row[1] = name
	row[2] = symbol
	row[4] = series
	row[5] = state
	row[6] = "1s1"
	row[12] = "100"
	row[19] = year
	return row
}

// seedElements loads a small periodic table on top of the classifications.
func (f fixture) seedElements(t *testing.T) {
	t.Helper()
	f.load(t, dataset.KindElement,
		elementRow("1", "Hydrogen", "H", "1", "3", "1766"),
		elementRow("2", "Helium", "He", "2", "3", "1868"),
		elementRow("3", "Lithium", "Li", "3", "1", "1817"),
		elementRow("11", "Sodium", "Na", "3", "1", "1807"),
		elementRow("31", "Gallium", "Ga", "5", "1", "1869"),
		elementRow("32", "Germanium", "Ge", "6", "1", "1869"),
		elementRow("80", "Mercury", "Hg", "5", "2", "1500"),
	)
}

// seedCompounds loads water and salt with their compositions.
func (f fixture) seedCompounds(t *testing.T) {
	t.Helper()
	f.load(t, dataset.KindElement,
		elementRow("8", "Oxygen", "O", "7", "3", "1774"),
		elementRow("17", "Chlorine", "Cl", "8", "3", "1774"),
	)
	f.load(t, dataset.KindCompound,
		[]string{"1", "Water", "H2O", "18.015", "0-100"},
		[]string{"2", "Sodium chloride", "NaCl", "58.44", "0-36"},
	)
	f.load(t, dataset.KindComposition,
		[]string{"1", "Water", "1", "H", "2"},
		[]string{"1", "Water", "8", "O", "1"},
		[]string{"2", "Sodium chloride", "11", "Na", "1"},
		[]string{"2", "Sodium chloride", "17", "Cl", "1"},
	)
}
