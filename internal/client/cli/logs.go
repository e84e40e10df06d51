package cli

import (
	"context"
	"fmt"
)

// Logs prints the action log; the server already scopes it by role.
func (a *App) Logs(ctx context.Context) error {
	logs, err := a.api.ListLogs(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		logs = nil
	}

	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{l.Timestamp, l.PerformedBy, l.Action})
	}
	a.renderTable([]string{"TIMESTAMP", "BY", "ACTION"}, rows)
	return nil
}
