// Package console provides the interactive text menu over a periodic client.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/helixml/periodic"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/helixml/periodic/internal/log"
)

// errEndOfInput ends the menu when the input source is exhausted.
var errEndOfInput = errors.New("end of input")

// exitOption is the selection that leaves the menu.
const exitOption = 20

type action func(m *Menu, ctx context.Context) error

type option struct {
	label string
	run   action
}

// options is indexed by selection number minus one.
var options = []option{
	{"Create all tables", (*Menu).createAll},
	{"Drop all tables", (*Menu).dropAll},
	{"Load states", loadAction(dataset.KindState)},
	{"Load series", loadAction(dataset.KindSeries)},
	{"Load elements", loadAction(dataset.KindElement)},
	{"Load compounds", loadAction(dataset.KindCompound)},
	{"Load compositions", loadAction(dataset.KindComposition)},
	{"List elements", (*Menu).listElements},
	{"List series", (*Menu).listSeries},
	{"List states", (*Menu).listStates},
	{"List compounds", (*Menu).listCompounds},
	{"List compositions", (*Menu).listCompositions},
	{"Search elements by name", (*Menu).searchElements},
	{"Compositions of an element", (*Menu).compositionsByElement},
	{"Compounds by formula", (*Menu).compoundsByFormula},
	{"Rename a state", (*Menu).renameState},
	{"Reassign series by discovery year", (*Menu).reassignSeries},
	{"Delete a compound", (*Menu).deleteCompound},
	{"Delete elements by state", (*Menu).deleteElementsByState},
	{"Exit", nil},
}

// Menu dispatches numbered selections read from in to the client and writes
// results to out. The menu owns no dataset logic.
type Menu struct {
	client *periodic.Client
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// NewMenu creates a Menu reading selections from in.
func NewMenu(client *periodic.Client, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		client: client,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: client.Logger(),
	}
}

// Run shows the menu until the exit option is chosen or input ends.
func (m *Menu) Run(ctx context.Context) error {
	ctx = log.WithCorrelationID(ctx, uuid.NewString())
	m.logger.DebugContext(ctx, "menu session started")

	for {
		m.printMenu()
		selection, err := m.readSelection()
		if errors.Is(err, errEndOfInput) || selection == exitOption {
			fmt.Fprintln(m.out, "Bye.")
			return nil
		}
		if err != nil {
			return err
		}

		if err := options[selection-1].run(m, ctx); err != nil {
			if errors.Is(err, errEndOfInput) {
				fmt.Fprintln(m.out, "Bye.")
				return nil
			}
			m.report(err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	for i, opt := range options {
		fmt.Fprintf(m.out, "%2d. %s\n", i+1, opt.label)
	}
}

// readSelection re-prompts until a number in range is entered.
func (m *Menu) readSelection() (int, error) {
	for {
		line, err := m.readLine(fmt.Sprintf("Choose an option [1-%d]: ", len(options)))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(m.out, "%q is not an option, enter a number from 1 to %d.\n", line, len(options))
			continue
		}
		return n, nil
	}
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		fmt.Fprintln(m.out)
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// readInt re-prompts until an integer is entered.
func (m *Menu) readInt(prompt string) (int64, error) {
	for {
		line, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			fmt.Fprintf(m.out, "%q is not a number.\n", line)
			continue
		}
		return n, nil
	}
}

// report prints an operation error as a user message.
func (m *Menu) report(err error) {
	switch {
	case errors.Is(err, dataset.ErrNotFound):
		fmt.Fprintf(m.out, "Not found: %v\n", err)
	case errors.Is(err, dataset.ErrInvalidArgument):
		fmt.Fprintf(m.out, "Invalid value: %v\n", err)
	default:
		fmt.Fprintf(m.out, "Error: %v\n", err)
	}
}

func (m *Menu) createAll(ctx context.Context) error {
	outcomes, err := m.client.Schema.EnsureAll(ctx)
	if rerr := RenderOutcomes(m.out, outcomes); rerr != nil {
		return rerr
	}
	return err
}

func (m *Menu) dropAll(ctx context.Context) error {
	return RenderOutcomes(m.out, m.client.Schema.DropAll(ctx))
}

func loadAction(kind dataset.Kind) action {
	return func(m *Menu, ctx context.Context) error {
		result, err := m.client.LoadKind(ctx, kind)
		if err != nil {
			return err
		}
		return RenderLoad(m.out, result)
	}
}

func (m *Menu) listElements(ctx context.Context) error {
	elements, err := m.client.Query.ListElements(ctx)
	if err != nil {
		return err
	}
	return RenderElements(m.out, elements)
}

func (m *Menu) listSeries(ctx context.Context) error {
	series, err := m.client.Query.ListSeries(ctx)
	if err != nil {
		return err
	}
	return RenderSeries(m.out, series)
}

func (m *Menu) listStates(ctx context.Context) error {
	states, err := m.client.Query.ListStates(ctx)
	if err != nil {
		return err
	}
	return RenderStates(m.out, states)
}

func (m *Menu) listCompounds(ctx context.Context) error {
	compounds, err := m.client.Query.ListCompounds(ctx)
	if err != nil {
		return err
	}
	return RenderCompounds(m.out, compounds)
}

func (m *Menu) listCompositions(ctx context.Context) error {
	compositions, err := m.client.Query.ListCompositions(ctx)
	if err != nil {
		return err
	}
	return RenderCompositions(m.out, compositions)
}

func (m *Menu) searchElements(ctx context.Context) error {
	text, err := m.readLine("Text contained in the name: ")
	if err != nil {
		return err
	}
	elements, err := m.client.Query.SearchElementsByName(ctx, text)
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		fmt.Fprintf(m.out, "No element name contains %q.\n", text)
		return nil
	}
	return RenderElements(m.out, elements)
}

func (m *Menu) compositionsByElement(ctx context.Context) error {
	id, err := m.readInt("Element id: ")
	if err != nil {
		return err
	}
	compositions, err := m.client.Query.FindCompositionsByElement(ctx, id)
	if err != nil {
		return err
	}
	if len(compositions) == 0 {
		fmt.Fprintf(m.out, "Element %d is not part of any compound.\n", id)
		return nil
	}
	return RenderCompositions(m.out, compositions)
}

func (m *Menu) compoundsByFormula(ctx context.Context) error {
	formulas, err := m.client.Query.Formulas(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Formulas: %s\n", strings.Join(formulas, ", "))

	formula, err := m.readLine("Formula: ")
	if err != nil {
		return err
	}
	compounds, err := m.client.Query.FindCompoundsByFormula(ctx, formula)
	if err != nil {
		return err
	}
	if len(compounds) == 0 {
		fmt.Fprintf(m.out, "No compound has formula %q.\n", formula)
		return nil
	}
	return RenderCompounds(m.out, compounds)
}

func (m *Menu) renameState(ctx context.Context) error {
	if err := m.listStates(ctx); err != nil {
		return err
	}
	id, err := m.readInt("State id: ")
	if err != nil {
		return err
	}
	name, err := m.readLine("New name: ")
	if err != nil {
		return err
	}
	state, err := m.client.Mutation.RenameState(ctx, id, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "State updated:")
	return RenderStates(m.out, []element.State{state})
}

func (m *Menu) reassignSeries(ctx context.Context) error {
	years, err := m.client.Query.DiscoveryYears(ctx)
	if err != nil {
		return err
	}
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.FormatInt(y, 10)
	}
	fmt.Fprintf(m.out, "Discovery years: %s\n", strings.Join(labels, ", "))

	year, err := m.readInt("Discovery year: ")
	if err != nil {
		return err
	}
	seriesID, err := m.readInt("New series id: ")
	if err != nil {
		return err
	}
	elements, err := m.client.Mutation.ReassignSeriesByDiscoveryYear(ctx, year, seriesID)
	if err != nil {
		return err
	}
	if len(elements) == 0 {
		fmt.Fprintf(m.out, "No element was discovered in %d.\n", year)
		return nil
	}
	fmt.Fprintf(m.out, "%d elements updated:\n", len(elements))
	return RenderElements(m.out, elements)
}

func (m *Menu) deleteCompound(ctx context.Context) error {
	id, err := m.readInt("Compound id: ")
	if err != nil {
		return err
	}
	removed, err := m.client.Mutation.DeleteCompound(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Deleted compound %d (%s, %s).\n", removed.ID(), removed.Name(), removed.Formula())
	return nil
}

func (m *Menu) deleteElementsByState(ctx context.Context) error {
	id, err := m.readInt("State id: ")
	if err != nil {
		return err
	}
	removed, err := m.client.Mutation.DeleteElementsByState(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Deleted %d elements.\n", len(removed))
	fmt.Fprintln(m.out, "Remaining elements:")
	return m.listElements(ctx)
}
