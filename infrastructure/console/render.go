package console

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/helixml/periodic/application/service"
	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/shopspring/decimal"
)

// nullPlaceholder is printed for absent values.
const nullPlaceholder = "-"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func optionalID(id int64, ok bool) string {
	if !ok {
		return nullPlaceholder
	}
	return strconv.FormatInt(id, 10)
}

// RenderStates writes states as a table.
func RenderStates(w io.Writer, states []element.State) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, s := range states {
		fmt.Fprintf(tw, "%d\t%s\n", s.ID(), s.Name())
	}
	return tw.Flush()
}

// RenderSeries writes series as a table.
func RenderSeries(w io.Writer, series []element.Series) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME")
	for _, s := range series {
		fmt.Fprintf(tw, "%d\t%s\n", s.ID(), s.Name())
	}
	return tw.Flush()
}

// RenderElements writes elements as a table with every attribute.
func RenderElements(w io.Writer, elements []element.Element) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tSYMBOL\tWEIGHT\tSERIES\tSTATE\tENERGY\tEN\tFUSION\tBOILING\tEA\tIONIZATION\tRADIUS\tHARDNESS\tMODULUS\tDENSITY\tCONDUCTIVITY\tHEAT\tABUNDANCE\tYEAR")
	for _, e := range elements {
		m := e.Measurements()
		d := func(v decimal.NullDecimal) string { return dataset.FormatDecimal(v, nullPlaceholder) }
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			e.ID(), e.Name(), e.Symbol(), d(m.Weight),
			optionalID(e.SeriesID()), optionalID(e.StateID()),
			e.Energy(), d(m.Electronegativity), d(m.Fusion), d(m.Boiling), d(m.ElectronAffinity), d(m.Ionization),
			e.Radius(), d(m.Hardness), d(m.Modulus), d(m.Density), d(m.Conductivity), d(m.Heat), d(m.Abundance),
			e.DiscoveryYear(),
		)
	}
	return tw.Flush()
}

// RenderCompounds writes compounds as a table.
func RenderCompounds(w io.Writer, compounds []compound.Compound) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tFORMULA\tMASS\tCONCENTRATION")
	for _, c := range compounds {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID(), c.Name(), c.Formula(), c.Mass(), c.Concentration())
	}
	return tw.Flush()
}

// RenderCompositions writes composition edges as a table.
func RenderCompositions(w io.Writer, compositions []compound.Composition) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCOMPOUND\tCOMPOUND NAME\tELEMENT\tSYMBOL\tSUBSCRIPT")
	for _, c := range compositions {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%s\t%d\n",
			c.ID(), c.CompoundID(), c.CompoundName(), c.ElementID(), c.Symbol(), c.Subscript())
	}
	return tw.Flush()
}

// RenderOutcomes writes the result of schema actions.
func RenderOutcomes(w io.Writer, outcomes []service.TableOutcome) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "TABLE\tSTATUS\tREASON")
	for _, o := range outcomes {
		reason := o.Reason
		if reason == "" {
			reason = nullPlaceholder
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", o.Kind, o.Status, reason)
	}
	return tw.Flush()
}

// RenderLoad writes the summary of a load pass and every skipped record.
func RenderLoad(w io.Writer, result service.LoadResult) error {
	fmt.Fprintf(w, "Loaded %s: %d committed, %d skipped, %d defaulted (run %s)\n",
		result.Kind, result.Committed, result.Skipped, result.Defaulted, result.RunID)
	if len(result.Skips) == 0 {
		return nil
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "LINE\tREASON\tRECORD")
	for _, s := range result.Skips {
		fmt.Fprintf(tw, "%d\t%s\t%v\n", s.Line, s.Reason, s.Fields)
	}
	return tw.Flush()
}
