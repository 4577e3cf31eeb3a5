package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhle/workdesk/internal/cli"
	"github.com/minhle/workdesk/internal/clock"
	"github.com/minhle/workdesk/internal/ledger"
	"github.com/minhle/workdesk/internal/lifecycle"
	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/query"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work items through the faceted filter pipeline",
		Long: `Fetch all items of a kind, recompute their lifecycle status, apply the
active facets (search, status, priority, date, archive scope) and print one
page of the result.`,
		RunE: runList,
	}

	cmd.Flags().String("kind", "task", "record kind (lead, project, task)")
	cmd.Flags().String("search", "", "case-insensitive substring search")
	cmd.Flags().String("status", "", "status facet")
	cmd.Flags().String("priority", "", "priority/potential facet")
	cmd.Flags().String("due", "", "date facet: today, overdue or YYYY-MM-DD")
	cmd.Flags().String("archived", "active", "archive scope: active, archived, all")
	cmd.Flags().Int("page", 0, "page index (zero-based)")
	cmd.Flags().Int("page-size", 20, "page size; 0 shows everything")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := parseKind(kindFlag)
	if err != nil {
		return err
	}

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	items, err := store.FetchAll(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to fetch %ss: %w", kind, err)
	}

	now := clock.System().Now()
	classified := lifecycle.Classify(items, now)
	visible := query.Filter(classified, filter, now)
	page := query.Page(visible, filter.Page, filter.PageSize)

	if len(visible) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No matching items.")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%ss (%d matching)", kind, len(visible)))) //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	printHeader(w, kind)
	for i := range page {
		printRow(w, &page[i], now)
	}

	pages := query.PageCount(len(visible), filter.PageSize)
	if pages > 1 {
		fmt.Fprintf(w, "\n%s\n", cli.SubtleStyle.Render(
			fmt.Sprintf("page %d of %d", filter.Page+1, pages)))
	}
	return nil
}

func filterFromFlags(cmd *cobra.Command) (query.FilterState, error) {
	search, _ := cmd.Flags().GetString("search")
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	due, _ := cmd.Flags().GetString("due")
	archived, _ := cmd.Flags().GetString("archived")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	filter := query.NewFilterState(pageSize)
	filter.Search = search
	filter.Status = model.Status(status)
	filter.Priority = model.Priority(priority)
	filter.Page = page

	switch archived {
	case "active", "":
		filter.Scope = query.ScopeActive
	case "archived":
		filter.Scope = query.ScopeArchived
	case "all":
		filter.Scope = query.ScopeAll
	default:
		return filter, fmt.Errorf("unknown archive scope %q", archived)
	}

	switch due {
	case "":
	case "today":
		filter.Date = query.DateFacet{Kind: query.DateToday}
	case "overdue":
		filter.Date = query.DateFacet{Kind: query.DateOverdue}
	default:
		day, err := parseDate(due)
		if err != nil {
			return filter, err
		}
		filter.Date = query.DateFacet{Kind: query.DateOn, On: day}
	}

	return filter, nil
}

func printHeader(w *tabwriter.Writer, kind model.Kind) {
	switch kind {
	case model.KindProject:
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			cli.HeaderStyle.Render("ID"),
			cli.HeaderStyle.Render("Name"),
			cli.HeaderStyle.Render("Status"),
			cli.HeaderStyle.Render("End Date"),
			cli.HeaderStyle.Render("Contract"),
			cli.HeaderStyle.Render("Paid"),
			cli.HeaderStyle.Render("Debt"))
	case model.KindLead:
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			cli.HeaderStyle.Render("ID"),
			cli.HeaderStyle.Render("Name"),
			cli.HeaderStyle.Render("Care Status"),
			cli.HeaderStyle.Render("Potential"),
			cli.HeaderStyle.Render("Company"),
			cli.HeaderStyle.Render("Next Follow-up"))
	default:
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cli.HeaderStyle.Render("ID"),
			cli.HeaderStyle.Render("Name"),
			cli.HeaderStyle.Render("Status"),
			cli.HeaderStyle.Render("Priority"),
			cli.HeaderStyle.Render("Deadline"))
	}
}

func printRow(w *tabwriter.Writer, item *model.WorkItem, now time.Time) {
	switch item.Kind {
	case model.KindProject:
		status := string(item.Status)
		if days := ledger.OverdueDays(now, item.Due, item.Status); days > 0 {
			status = fmt.Sprintf("%s (%dd)", status, days)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(item.ID), item.Name, status, formatDate(item.Due),
			formatMoney(item.ContractValue),
			formatMoney(ledger.TotalPaid(item.Payments)),
			formatMoney(ledger.Debt(item.ContractValue, item.Payments)))
	case model.KindLead:
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(item.ID), item.Name, item.Status, item.Priority,
			item.Company, formatDate(item.EffectiveFollowUp()))
	default:
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(item.ID), item.Name, item.Status, item.Priority,
			formatDate(item.Due))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
