package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"backoffice/internal/client/api"
)

// renderTable prints rows in aligned columns.
func (a *App) renderTable(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "(no rows)")
	}
}

func describeLineItems(items []api.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%s @%s", it.Item, it.Quantity, it.Rate))
	}
	return strings.Join(parts, "; ")
}

// checkbox renders a completed flag the way the web UI did.
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
