// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// parsing and formatting durations while this package handles presentation:
// result lines, explain traces, and history and config tables.
package format

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jpl-au/workdur/internal/diff"
	"github.com/jpl-au/workdur/internal/log"
	"github.com/jpl-au/workdur/internal/numeric"
	"github.com/jpl-au/workdur/internal/service"
)

// Result prints the formatted value of a valid result, or the rejection
// reason of an invalid one.
func Result(w io.Writer, res service.Result) error {
	if !res.IsValid {
		_, err := fmt.Fprintf(w, "invalid: %s\n", res.Reason)
		return err
	}
	out := res.FormattedValue
	if out == "" {
		out = "0"
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// Tokens renders tokens as "1 | 4h | 35m", showing an unlabeled token's
// missing label as "_".
func Tokens(tokens []numeric.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		label := t.Label
		if label == "" {
			label = "_"
		}
		parts[i] = t.Value + label
	}
	return strings.Join(parts, " | ")
}

// Trace prints every stage of an explain run, the classified segments as a
// table, and a diff of the input against the expanded text.
func Trace(w io.Writer, tr numeric.Trace, colour bool) error {
	fmt.Fprintf(w, "input:     %q\n", tr.Input)
	fmt.Fprintf(w, "pattern:   %s\n", tr.Pattern)
	fmt.Fprintf(w, "compact:   %q\n", tr.Compact)
	if tr.Raw != nil {
		fmt.Fprintf(w, "tokens:    %s\n", Tokens(tr.Raw))
		fmt.Fprintf(w, "inferred:  %s\n", Tokens(tr.Inferred))
	}
	if tr.Expanded != "" {
		fmt.Fprintf(w, "expanded:  %q\n", tr.Expanded)
	}

	if len(tr.Segments) > 0 {
		t := table.NewWriter()
		t.AppendHeader(table.Row{"#", "Value", "Label", "Unit", "Amount"})
		for i, s := range tr.Segments {
			t.AppendRow(table.Row{i + 1, s.Value, s.Label, s.Unit.String(), s.Amount})
		}
		fmt.Fprintln(w, t.Render())
	}

	if tr.Err != nil {
		fmt.Fprintf(w, "result:    rejected (%v)\n", tr.Err)
	} else {
		fmt.Fprintf(w, "result:    %s (%d minutes)\n", tr.Duration, tr.Duration.InMinutes())
	}

	final := tr.Expanded
	if final == "" {
		final = tr.Compact
	}
	if r := diff.Compute(tr.Input, final, "input", "parsed"); r.Changed {
		fmt.Fprintln(w)
		fmt.Fprint(w, r.Format(colour))
		if colour {
			fmt.Fprintf(w, "inline:    %s\n", diff.Inline(tr.Input, final, true))
		} else {
			fmt.Fprintf(w, "inline:    %s\n", r.Inline)
		}
	}
	return nil
}

var historyHeader = table.Row{
	"#",
	"Time",
	"Source",
	"Pattern",
	"Input",
	"Output",
	"Error",
}

// History prints log records as a table, newest first.
func History(w io.Writer, recs []log.Record) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, "no history")
		return err
	}

	t := table.NewWriter()
	t.AppendHeader(historyHeader)
	for _, r := range recs {
		output := r.Output
		if !r.Success && output == "" {
			output = "-"
		}
		t.AppendRow(table.Row{
			strconv.FormatInt(r.ID, 10),
			r.Time.Format("2006-01-02 15:04"),
			r.Source,
			r.Pattern,
			r.Input,
			output,
			truncate(r.Error, 48),
		})
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// Config prints configuration keys in sorted order, marking unset keys.
func Config(w io.Writer, all map[string]string, isSet func(string) bool) error {
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		suffix := ""
		if !isSet(k) {
			suffix = " (default)"
		}
		if _, err := fmt.Fprintf(w, "%s = %s%s\n", k, all[k], suffix); err != nil {
			return err
		}
	}
	return nil
}

// Comparison renders a CompareToDays result as a word.
func Comparison(c int) string {
	switch {
	case c < 0:
		return "less"
	case c > 0:
		return "more"
	default:
		return "equal"
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
