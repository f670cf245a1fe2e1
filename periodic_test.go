package periodic_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/helixml/periodic"
	"github.com/helixml/periodic/application/service"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const elementTail = ",1s1,2.2,14.01,20.28,72.8,13.598,53,,,0.0899,0.1805,14.304,0.14,1766"

func writeSources(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"states.csv": "1,Solid\n2,Liquid\n3,Gas\n4,Plasma\n5,Unknown\n",
		"series.csv": "1,Nonmetals\n2,Noble gases\n3,Alkali metals\n4,Alkaline earth metals\n5,Metalloids\n" +
			"6,Halogens\n7,Post-transition metals\n8,Transition metals\n9,Lanthanides\n10,Actinides\n",
		"elements.csv": "1,Hydrogen,H,1.00794,1,3" + elementTail + "\n" +
			"2,Helium,He,4.002602,2,3" + elementTail + "\n" +
			"8,Oxygen,O,15.9994,1,3" + elementTail + "\n",
		"compounds.csv":         "1,Water,H2O,18.015,0-100\n",
		"compound_elements.csv": "1,Water,1,H,2\n1,Water,8,O,1\n1,Water,92,U,1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}

func newClient(t *testing.T, opts ...periodic.Option) *periodic.Client {
	t.Helper()
	dir := t.TempDir()
	writeSources(t, dir)
	opts = append([]periodic.Option{
		periodic.WithSQLite(filepath.Join(dir, "periodic.db")),
		periodic.WithSourceDir(dir),
	}, opts...)
	client, err := periodic.New(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_LoadAll(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	_, err := client.Schema.EnsureAll(ctx)
	require.NoError(t, err)

	results, err := client.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, results, 5)

	committed := map[dataset.Kind]int{}
	for _, r := range results {
		committed[r.Kind] = r.Committed
	}
	assert.Equal(t, 5, committed[dataset.KindState])
	assert.Equal(t, 10, committed[dataset.KindSeries])
	assert.Equal(t, 3, committed[dataset.KindElement])
	assert.Equal(t, 1, committed[dataset.KindCompound])
	assert.Equal(t, 2, committed[dataset.KindComposition])
	assert.Equal(t, 1, results[4].Skipped)

	hydrogen, err := client.Query.FindElement(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1.008", dataset.FormatDecimal(hydrogen.Measurements().Weight, "-"))
	assert.False(t, hydrogen.Measurements().Hardness.Valid)

	edges, err := client.Query.FindCompositionsByElement(ctx, 8)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "Water", edges[0].CompoundName())
}

func TestClient_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeSources(t, dir)
	dbPath := filepath.Join(dir, "periodic.db")

	first, err := periodic.New(periodic.WithSQLite(dbPath), periodic.WithSourceDir(dir))
	require.NoError(t, err)
	_, err = first.Schema.EnsureAll(ctx)
	require.NoError(t, err)
	_, err = first.LoadKind(ctx, dataset.KindState)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := periodic.New(periodic.WithDatabaseURL("sqlite:///" + dbPath))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	states, err := second.Query.ListStates(ctx)
	require.NoError(t, err)
	assert.Len(t, states, 5)

	outcome, err := second.Schema.Ensure(ctx, dataset.KindState)
	require.NoError(t, err)
	assert.Equal(t, service.TableAlreadyExists, outcome.Status)
}

func TestClient_WithSourceFiles(t *testing.T) {
	ctx := context.Background()
	client := newClient(t, periodic.WithSourceFiles(periodic.SourceFiles{States: "estados.csv"}))

	assert.True(t, strings.HasSuffix(client.SourcePath(dataset.KindState), "estados.csv"))
	assert.True(t, strings.HasSuffix(client.SourcePath(dataset.KindSeries), "series.csv"))

	_, err := client.Schema.EnsureAll(ctx)
	require.NoError(t, err)
	_, err = client.LoadKind(ctx, dataset.KindState)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestClient_LoadKindRejectsUnknownKind(t *testing.T) {
	client := newClient(t)
	_, err := client.LoadKind(context.Background(), dataset.Kind("isotopes"))
	require.ErrorIs(t, err, periodic.ErrInvalidArgument)
}

func TestClient_MetricsRegisterer(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	client := newClient(t, periodic.WithMetricsRegisterer(reg))

	_, err := client.Schema.EnsureAll(ctx)
	require.NoError(t, err)
	_, err = client.LoadKind(ctx, dataset.KindState)
	require.NoError(t, err)

	assert.Equal(t, 5.0, testutil.ToFloat64(client.Metrics.Collector().WithLabelValues("states", "committed")))
	count, err := testutil.GatherAndCount(reg, "periodic_load_records_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_RequiresDatabase(t *testing.T) {
	_, err := periodic.New()
	require.ErrorIs(t, err, periodic.ErrNoDatabase)
}

func TestNew_UnsupportedURL(t *testing.T) {
	_, err := periodic.New(periodic.WithDatabaseURL("mysql://localhost/periodic"))
	require.Error(t, err)
}

func TestClient_CloseTwice(t *testing.T) {
	dir := t.TempDir()
	client, err := periodic.New(periodic.WithSQLite(filepath.Join(dir, "periodic.db")))
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.ErrorIs(t, client.Close(), periodic.ErrClientClosed)

	_, err = client.LoadFile(context.Background(), dataset.KindState, filepath.Join(dir, "states.csv"))
	require.ErrorIs(t, err, periodic.ErrClientClosed)
}
