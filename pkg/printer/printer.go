// Package printer renders record-like data as aligned text for CLI
// consumption.
//
// Columns are declared up front with a key, an optional label, and a
// visibility predicate over the output verbosity. The same printer
// renders either a multi-row table (one row per record) or a single
// record as a labeled vertical block. Printing has no hidden state:
// repeated calls with the same inputs produce identical bytes.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
)

// Level is the output verbosity. Columns can be gated to appear only
// at higher levels.
type Level int

const (
	// Brief is the default terse output level.
	Brief Level = iota

	// Verbose reveals columns gated with VerboseOnly.
	Verbose
)

// Always shows a column at every verbosity level.
func Always(Level) bool { return true }

// VerboseOnly shows a column only at Verbose and above.
func VerboseOnly(l Level) bool { return l >= Verbose }

// Item is a single record: a mapping from field key to value. Values
// may be strings, numbers, or []string for list-valued fields. The
// printer never mutates an Item.
type Item map[string]any

// Column describes one output field.
type Column struct {
	// Key is the Item key this column reads.
	Key string

	// Multiline marks list-valued fields that render as an indented
	// sub-list in vertical-block output.
	Multiline bool

	// Show decides whether the column is visible at a given level.
	Show func(Level) bool

	// Format overrides the default value formatting.
	Format func(any) string

	label string
}

// ColumnOption configures a declared column.
type ColumnOption func(*Column)

// Label overrides the display label derived from the column key.
func Label(label string) ColumnOption {
	return func(c *Column) { c.label = label }
}

// Multiline marks the column as list-valued.
func Multiline() ColumnOption {
	return func(c *Column) { c.Multiline = true }
}

// ShowWith sets the column's visibility predicate.
func ShowWith(pred func(Level) bool) ColumnOption {
	return func(c *Column) { c.Show = pred }
}

// Formatter sets a custom value formatter for the column.
func Formatter(format func(any) string) ColumnOption {
	return func(c *Column) { c.Format = format }
}

// Printer writes tables and field blocks to a single destination at a
// fixed verbosity level. Not safe for concurrent use; CLI invocations
// have exactly one writer.
type Printer struct {
	w       io.Writer
	level   Level
	header  string
	columns []Column
}

// New creates a printer writing to w at the given verbosity level.
func New(w io.Writer, level Level) *Printer {
	return &Printer{w: w, level: level}
}

// AddColumn appends a column. Declaration order is display order.
func (p *Printer) AddColumn(key string, opts ...ColumnOption) {
	col := Column{
		Key:   key,
		Show:  Always,
		label: deriveLabel(key),
	}
	for _, o := range opts {
		o(&col)
	}
	p.columns = append(p.columns, col)
}

// SetHeader sets the banner printed before the next table or block.
func (p *Printer) SetHeader(text string) {
	p.header = text
}

// PrintItems renders items as an aligned table, one row per item,
// visible columns in declared order. List-valued fields are joined
// inline; fields absent from an item render empty.
func (p *Printer) PrintItems(items []Item) error {
	if err := p.printHeader(); err != nil {
		return err
	}

	cols := p.visibleColumns()
	table := uitable.New()
	table.MaxColWidth = 60

	labels := make([]any, len(cols))
	for i, col := range cols {
		labels[i] = strings.ToUpper(col.label)
	}
	table.AddRow(labels...)

	for _, item := range items {
		row := make([]any, len(cols))
		for i, col := range cols {
			row[i] = p.formatInline(col, item[col.Key])
		}
		table.AddRow(row...)
	}

	_, err := fmt.Fprintln(p.w, table)
	return err
}

// PrintItem renders a single item as a labeled vertical block, one
// field per line. Multiline fields render as an indented sub-list
// under the field label.
func (p *Printer) PrintItem(item Item) error {
	if err := p.printHeader(); err != nil {
		return err
	}

	cols := p.visibleColumns()
	width := 0
	for _, col := range cols {
		if n := len(col.label) + 1; n > width {
			width = n
		}
	}

	for _, col := range cols {
		value := item[col.Key]
		if col.Multiline {
			if _, err := fmt.Fprintf(p.w, "%s:\n", col.label); err != nil {
				return err
			}
			for _, entry := range listValues(value) {
				if _, err := fmt.Fprintf(p.w, "    %s\n", entry); err != nil {
					return err
				}
			}
			continue
		}
		if _, err := fmt.Fprintf(p.w, "%-*s %s\n", width, col.label+":", p.formatInline(col, value)); err != nil {
			return err
		}
	}

	return nil
}

// printHeader writes the banner, if one was set.
func (p *Printer) printHeader() error {
	if p.header == "" {
		return nil
	}

	width := len(p.header) + 4
	if width < 40 {
		width = 40
	}
	rule := strings.Repeat("-", width)
	pad := (width - len(p.header)) / 2

	_, err := fmt.Fprintf(p.w, "%s\n%s%s\n%s\n", rule, strings.Repeat(" ", pad), p.header, rule)
	return err
}

func (p *Printer) visibleColumns() []Column {
	cols := make([]Column, 0, len(p.columns))
	for _, col := range p.columns {
		if col.Show(p.level) {
			cols = append(cols, col)
		}
	}
	return cols
}

// formatInline renders a value for a table cell or a single block line.
func (p *Printer) formatInline(col Column, value any) string {
	if value == nil {
		return ""
	}
	if col.Format != nil {
		return col.Format(value)
	}
	if list := listValues(value); list != nil {
		return strings.Join(list, ", ")
	}
	return fmt.Sprint(value)
}

// listValues normalizes list-valued fields to []string. Returns nil
// for scalar values.
func listValues(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, len(v))
		for i, e := range v {
			out[i] = fmt.Sprint(e)
		}
		return out
	default:
		return nil
	}
}

// deriveLabel turns a snake_case field key into a display label,
// e.g. "package_count" becomes "Package Count".
func deriveLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
