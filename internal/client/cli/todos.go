package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Todos dispatches the todos subcommands.
func (a *App) Todos(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return a.listTodos(ctx)
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: todos add <text...>")
		}
		return a.addTodo(ctx, strings.Join(args[1:], " "))
	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("usage: todos toggle <id>")
		}
		return a.toggleTodo(ctx, args[1])
	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: todos del <id>")
		}
		return a.deleteTodo(ctx, args[1])
	default:
		return fmt.Errorf("unknown todos command %q", args[0])
	}
}

func (a *App) listTodos(ctx context.Context) error {
	todos, err := a.api.ListTodos(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		todos = nil
	}

	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(t.ID), 10), checkbox(t.Completed), t.Text,
		})
	}
	a.renderTable([]string{"ID", "DONE", "TEXT"}, rows)
	return nil
}

func (a *App) addTodo(ctx context.Context, text string) error {
	t, err := a.api.CreateTodo(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added todo #%d\n", t.ID)
	return nil
}

func (a *App) toggleTodo(ctx context.Context, idArg string) error {
	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		return fmt.Errorf("bad todo id %q", idArg)
	}
	t, err := a.api.ToggleTodo(ctx, uint(id))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s #%d %s\n", checkbox(t.Completed), t.ID, t.Text)
	return nil
}

func (a *App) deleteTodo(ctx context.Context, idArg string) error {
	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		return fmt.Errorf("bad todo id %q", idArg)
	}
	if err := a.api.DeleteTodo(ctx, uint(id)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted todo #%d\n", id)
	return nil
}
