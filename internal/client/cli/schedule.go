package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Schedule dispatches the schedule subcommands. The schedule is
// append-only, so there is no edit or delete.
func (a *App) Schedule(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return a.listSchedule(ctx)
	case "add":
		return a.addScheduleEvent(ctx)
	default:
		return fmt.Errorf("unknown schedule command %q", args[0])
	}
}

func (a *App) listSchedule(ctx context.Context) error {
	events, err := a.api.ListSchedule(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		events = nil
	}

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(e.ID), 10), e.Date, e.Text,
		})
	}
	a.renderTable([]string{"ID", "DATE", "EVENT"}, rows)
	return nil
}

func (a *App) addScheduleEvent(ctx context.Context) error {
	date, err := getSimpleText(a.reader, "Date", a.out)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Event", a.out)
	if err != nil {
		return err
	}

	e, err := a.api.CreateScheduleEvent(ctx, date, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added event #%d on %s\n", e.ID, e.Date)
	return nil
}
