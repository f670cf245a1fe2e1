package service

import (
	"context"
	"log/slog"

	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/shopspring/decimal"
)

// fields reads positional values from one source record. Malformed numbers
// fall back to 0 or null and are only noted at Debug.
type fields struct {
	ctx    context.Context
	logger *slog.Logger
	values []string
}

func (f fields) text(i int) string {
	return f.values[i]
}

func (f fields) integer(i int, name string) int64 {
	n, ok := dataset.ParseInt(f.values[i])
	if !ok {
		f.logger.DebugContext(f.ctx, "integer field not parsed, using 0",
			slog.String("field", name),
			slog.String("value", f.values[i]),
		)
	}
	return n
}

func (f fields) count(i int, name string) int64 {
	n := f.integer(i, name)
	if n < 0 {
		f.logger.DebugContext(f.ctx, "negative count, using 0",
			slog.String("field", name),
			slog.Int64("value", n),
		)
		return 0
	}
	return n
}

func (f fields) fixed(i int, name string) decimal.NullDecimal {
	d, ok := dataset.ParseDecimal(f.values[i])
	if !ok {
		f.logger.DebugContext(f.ctx, "decimal field not parsed, using null",
			slog.String("field", name),
			slog.String("value", f.values[i]),
		)
	}
	return d
}

func (f fields) state() element.State {
	return element.NewState(f.integer(0, "id"), f.text(1))
}

func (f fields) series() element.Series {
	return element.NewSeries(f.integer(0, "id"), f.text(1))
}

// element parses an element record. The series and state keys are returned
// separately for resolution.
func (f fields) element() (e element.Element, seriesID, stateID int64) {
	m := element.Measurements{
		Weight:            f.fixed(3, "weight"),
		Electronegativity: f.fixed(7, "electronegativity"),
		Fusion:            f.fixed(8, "fusion"),
		Boiling:           f.fixed(9, "boiling"),
		ElectronAffinity:  f.fixed(10, "electron_affinity"),
		Ionization:        f.fixed(11, "ionization"),
		Hardness:          f.fixed(13, "hardness"),
		Modulus:           f.fixed(14, "modulus"),
		Density:           f.fixed(15, "density"),
		Conductivity:      f.fixed(16, "conductivity"),
		Heat:              f.fixed(17, "heat"),
		Abundance:         f.fixed(18, "abundance"),
	}
	e = element.NewElement(
		f.integer(0, "id"),
		f.text(1),
		f.text(2),
		f.text(6),
		f.integer(12, "radius"),
		f.integer(19, "discovery_year"),
		m,
	)
	return e, f.integer(4, "series_id"), f.integer(5, "state_id")
}

func (f fields) compound() compound.Compound {
	return compound.NewCompound(f.integer(0, "id"), f.text(1), f.text(2), f.text(3), f.text(4))
}

func (f fields) composition() compound.Composition {
	return compound.NewComposition(
		f.integer(0, "compound_id"),
		f.text(1),
		f.integer(2, "element_id"),
		f.text(3),
		f.count(4, "subscript"),
	)
}
