package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Units dispatches the units subcommands.
func (a *App) Units(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return a.listUnits(ctx)
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: units get <name>")
		}
		return a.getUnit(ctx, args[1])
	case "add":
		return a.addUnit(ctx)
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: units edit <id>")
		}
		return a.editUnit(ctx, args[1])
	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: units del <id>")
		}
		return a.deleteUnit(ctx, args[1])
	default:
		return fmt.Errorf("unknown units command %q", args[0])
	}
}

func (a *App) listUnits(ctx context.Context) error {
	units, err := a.api.ListUnits(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		units = nil
	}

	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(u.ID), 10), u.Name, u.Address, u.Contact,
		})
	}
	a.renderTable([]string{"ID", "NAME", "ADDRESS", "CONTACT"}, rows)
	return nil
}

func (a *App) getUnit(ctx context.Context, name string) error {
	u, err := a.api.GetUnit(ctx, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "#%d %s\n  address: %s\n  contact: %s\n", u.ID, u.Name, u.Address, u.Contact)
	return nil
}

func (a *App) promptUnit() (name, address, contact string, err error) {
	if name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return
	}
	if address, err = getSimpleText(a.reader, "Address", a.out); err != nil {
		return
	}
	contact, err = getSimpleText(a.reader, "Contact", a.out)
	return
}

func (a *App) addUnit(ctx context.Context) error {
	name, address, contact, err := a.promptUnit()
	if err != nil {
		return err
	}
	u, err := a.api.CreateUnit(ctx, name, address, contact)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created unit #%d %q\n", u.ID, u.Name)
	return nil
}

func (a *App) editUnit(ctx context.Context, idArg string) error {
	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		return fmt.Errorf("bad unit id %q", idArg)
	}
	name, address, contact, err := a.promptUnit()
	if err != nil {
		return err
	}
	u, err := a.api.UpdateUnit(ctx, uint(id), name, address, contact)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated unit #%d %q\n", u.ID, u.Name)
	return nil
}

func (a *App) deleteUnit(ctx context.Context, idArg string) error {
	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		return fmt.Errorf("bad unit id %q", idArg)
	}
	if err := a.api.DeleteUnit(ctx, uint(id)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted unit #%d\n", id)
	return nil
}
