package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"backoffice/internal/client/api"
)

// Entries dispatches the entries subcommands.
func (a *App) Entries(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	switch args[0] {
	case "list":
		return a.listEntries(ctx, args[1:])
	case "add":
		return a.addEntry(ctx)
	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: entries edit <id>")
		}
		return a.editEntry(ctx, args[1])
	case "del":
		if len(args) < 2 {
			return fmt.Errorf("usage: entries del <id>")
		}
		return a.deleteEntry(ctx, args[1])
	case "export":
		if len(args) < 2 {
			return fmt.Errorf("usage: entries export <file.csv>")
		}
		return a.exportEntries(ctx, args[1])
	default:
		return fmt.Errorf("unknown entries command %q", args[0])
	}
}

// parseEntryFilter reads key=value args: unit=, no=, from=, to=.
func parseEntryFilter(args []string) (api.EntryFilter, error) {
	var f api.EntryFilter
	for _, arg := range args {
		k, v, found := strings.Cut(arg, "=")
		if !found {
			return f, fmt.Errorf("bad filter %q, want key=value", arg)
		}
		switch k {
		case "unit":
			f.Unit = v
		case "no":
			f.No = v
		case "from":
			f.From = v
		case "to":
			f.To = v
		default:
			return f, fmt.Errorf("unknown filter %q", k)
		}
	}
	return f, nil
}

func (a *App) listEntries(ctx context.Context, args []string) error {
	filter, err := parseEntryFilter(args)
	if err != nil {
		return err
	}

	entries, err := a.api.ListEntries(ctx, filter)
	if err != nil {
		// a failed fetch renders an empty table, never a crash
		fmt.Fprintf(a.out, "error: %v\n", err)
		entries = nil
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.Type,
			e.CompanyName,
			e.Unit,
			e.Date,
			describeLineItems(e.Description),
			e.Total,
		})
	}
	a.renderTable([]string{"ID", "TYPE", "COMPANY", "UNIT", "DATE", "ITEMS", "TOTAL"}, rows)
	return nil
}

// promptEntry collects the shared and per-type fields for an entry.
func (a *App) promptEntry(entryType string) (api.Entry, error) {
	var e api.Entry
	e.Type = entryType

	var err error
	if e.CompanyName, err = getSimpleText(a.reader, "Company name", a.out); err != nil {
		return e, err
	}
	if e.Unit, err = getSimpleText(a.reader, "Unit", a.out); err != nil {
		return e, err
	}
	if e.Date, err = getSimpleText(a.reader, "Date (dd-mm-yyyy)", a.out); err != nil {
		return e, err
	}

	switch entryType {
	case "Quotation":
		e.QuotationNo, err = getSimpleText(a.reader, "Quotation no", a.out)
	case "Invoice":
		if e.InvoiceNo, err = getSimpleText(a.reader, "Invoice no", a.out); err == nil {
			e.ReferenceNo, err = getSimpleText(a.reader, "Reference no", a.out)
		}
	case "Purchase":
		if e.BuyingCompany, err = getSimpleText(a.reader, "Buying company", a.out); err == nil {
			if e.SellingCompany, err = getSimpleText(a.reader, "Selling company", a.out); err == nil {
				e.Mop, err = getSimpleText(a.reader, "Mode of payment", a.out)
			}
		}
	case "Goods Exp", "Cash Exp":
		e.SNo, err = getSimpleText(a.reader, "S no", a.out)
	}
	if err != nil {
		return e, err
	}

	e.Description = []api.LineItem{}
	fmt.Fprintln(a.out, "Line items (empty item name finishes):")
	for {
		item, err := getSimpleText(a.reader, "  Item", a.out)
		if err != nil {
			return e, err
		}
		if item == "" {
			break
		}
		var li api.LineItem
		li.Item = item
		if li.Denomination, err = getSimpleText(a.reader, "  Denomination", a.out); err != nil {
			return e, err
		}
		if li.Quantity, err = getSimpleText(a.reader, "  Quantity", a.out); err != nil {
			return e, err
		}
		if li.Rate, err = getSimpleText(a.reader, "  Rate", a.out); err != nil {
			return e, err
		}
		e.Description = append(e.Description, li)
	}
	return e, nil
}

func (a *App) addEntry(ctx context.Context) error {
	entryType, err := getSimpleText(a.reader, "Type (Quotation/Invoice/Purchase/Goods Exp/Cash Exp)", a.out)
	if err != nil {
		return err
	}

	entry, err := a.promptEntry(entryType)
	if err != nil {
		return err
	}

	created, err := a.api.CreateEntry(ctx, entry)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created entry #%d, total %s\n", created.ID, created.Total)
	return nil
}

func (a *App) editEntry(ctx context.Context, idArg string) error {
	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		return fmt.Errorf("bad entry id %q", idArg)
	}

	entryType, err := getSimpleText(a.reader, "Type (unchanged on the server)", a.out)
	if err != nil {
		return err
	}
	entry, err := a.promptEntry(entryType)
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateEntry(ctx, uint(id), entry)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated entry #%d, total %s\n", updated.ID, updated.Total)
	return nil
}

func (a *App) deleteEntry(ctx context.Context, idArg string) error {
	id, err := strconv.ParseUint(idArg, 10, 32)
	if err != nil {
		return fmt.Errorf("bad entry id %q", idArg)
	}
	if err := a.api.DeleteEntry(ctx, uint(id)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted entry #%d\n", id)
	return nil
}

func (a *App) exportEntries(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := a.api.ExportEntriesCSV(ctx, f); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported entries to %s\n", path)
	return nil
}
