package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/helixml/periodic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *periodic.Client {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"states.csv": "1,Solid\n2,Liquid\n3,Gas\n4,Plasma\n5,Unknown\n",
		"series.csv": "1,Nonmetals\n2,Noble gases\n3,Alkali metals\n4,Alkaline earth metals\n5,Metalloids\n" +
			"6,Halogens\n7,Post-transition metals\n8,Transition metals\n9,Lanthanides\n10,Actinides\n",
		"elements.csv": "1,Hydrogen,H,1.00794,1,3,1s1,2.2,14.01,20.28,72.8,13.598,53,,,0.0899,0.1805,14.304,0.14,1766\n" +
			"2,Helium,He,4.002602,2,3,1s2,,0.95,4.22,,24.587,31,,,0.1785,0.1513,5.193,,1868\n" +
			"3,Lithium,Li,6.941,3,1,[He] 2s1,0.98,453.69,1615,59.6,5.391,167,0.6,4.9,0.535,84.8,3.582,20,1817\n",
		"compounds.csv":         "1,Water,H2O,18.015,0-100\n2,Lithium hydride,LiH,7.95,0-1\n",
		"compound_elements.csv": "1,Water,1,H,2\n2,Lithium hydride,3,Li,1\n2,Lithium hydride,1,H,1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	client, err := periodic.New(
		periodic.WithSQLite(filepath.Join(dir, "periodic.db")),
		periodic.WithSourceDir(dir),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// seeded returns menu input that creates and loads every table.
func seeded(lines ...string) string {
	return strings.Join(append([]string{"1", "3", "4", "5", "6", "7"}, lines...), "\n") + "\n"
}

func run(t *testing.T, client *periodic.Client, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, NewMenu(client, strings.NewReader(input), &out).Run(context.Background()))
	return out.String()
}

func TestMenu_ExitOption(t *testing.T) {
	out := run(t, newClient(t), "20\n")

	assert.Contains(t, out, " 1. Create all tables")
	assert.Contains(t, out, "20. Exit")
	assert.True(t, strings.HasSuffix(out, "Bye.\n"))
}

func TestMenu_EndOfInputExits(t *testing.T) {
	out := run(t, newClient(t), "")
	assert.Contains(t, out, "Bye.")
}

func TestMenu_RejectsInvalidSelections(t *testing.T) {
	out := run(t, newClient(t), "abc\n0\n21\n20\n")

	assert.Equal(t, 3, strings.Count(out, "is not an option"))
	assert.Contains(t, out, "Bye.")
}

func TestMenu_CreateLoadAndList(t *testing.T) {
	out := run(t, newClient(t), seeded("10", "8", "12", "20"))

	assert.Contains(t, out, "created")
	assert.Contains(t, out, "Loaded states: 5 committed, 0 skipped, 0 defaulted")
	assert.Contains(t, out, "Loaded elements: 3 committed")
	assert.Contains(t, out, "Loaded compositions: 3 committed")
	assert.Contains(t, out, "Plasma")
	assert.Contains(t, out, "1.008")
	assert.Contains(t, out, "Lithium hydride")
}

func TestMenu_CreateTwiceReportsExisting(t *testing.T) {
	out := run(t, newClient(t), "1\n1\n20\n")
	assert.Contains(t, out, "already exists")
}

func TestMenu_Search(t *testing.T) {
	out := run(t, newClient(t), seeded("13", "ium", "13", "xyz", "20"))

	assert.Contains(t, out, "Helium")
	assert.Contains(t, out, "Lithium")
	assert.Contains(t, out, `No element name contains "xyz".`)
}

func TestMenu_CompositionsByElement(t *testing.T) {
	out := run(t, newClient(t), seeded("14", "abc", "1", "14", "2", "14", "99", "20"))

	assert.Contains(t, out, `"abc" is not a number.`)
	assert.Contains(t, out, "Water")
	assert.Contains(t, out, "Element 2 is not part of any compound.")
	assert.Contains(t, out, "Not found: element 99")
}

func TestMenu_CompoundsByFormula(t *testing.T) {
	out := run(t, newClient(t), seeded("15", "LiH", "20"))

	assert.Contains(t, out, "Formulas: H2O, LiH")
	assert.Contains(t, out, "Lithium hydride")
}

func TestMenu_RenameState(t *testing.T) {
	out := run(t, newClient(t), seeded("16", "6", "X", "16", "4", "Ionised", "20"))

	assert.Contains(t, out, "Not found: state 6")
	assert.Contains(t, out, "State updated:")
	assert.Contains(t, out, "Ionised")
}

func TestMenu_ReassignSeries(t *testing.T) {
	out := run(t, newClient(t), seeded("17", "1868", "11", "17", "1868", "5", "20"))

	assert.Contains(t, out, "Discovery years: 1766, 1817, 1868")
	assert.Contains(t, out, "Invalid value")
	assert.Contains(t, out, "1 elements updated:")
}

func TestMenu_DeleteCompound(t *testing.T) {
	out := run(t, newClient(t), seeded("18", "999", "18", "1", "20"))

	assert.Contains(t, out, "Not found")
	assert.Contains(t, out, "Deleted compound 1 (Water, H2O).")
}

func TestMenu_DeleteElementsByState(t *testing.T) {
	out := run(t, newClient(t), seeded("19", "3", "20"))

	assert.Contains(t, out, "Deleted 2 elements.")
	assert.Contains(t, out, "Remaining elements:")
}

func TestMenu_DropAll(t *testing.T) {
	out := run(t, newClient(t), seeded("2", "20"))
	assert.Equal(t, 5, strings.Count(out, "dropped"))
}

func TestMenu_LoadWithoutTablesReportsSkips(t *testing.T) {
	out := run(t, newClient(t), "3\n20\n")
	assert.Contains(t, out, "Loaded states: 0 committed, 5 skipped")
}
