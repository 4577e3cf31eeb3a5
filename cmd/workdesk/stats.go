package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minhle/workdesk/internal/cli"
	"github.com/minhle/workdesk/internal/clock"
	"github.com/minhle/workdesk/internal/ledger"
	"github.com/minhle/workdesk/internal/lifecycle"
	"github.com/minhle/workdesk/internal/model"
	"github.com/minhle/workdesk/internal/query"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the widget counters for a kind",
		Long: `Compute the named counters behind the statistic widgets: each counter
applies only its own facet over the archive-scoped collection, so the
numbers reflect what clearing every other filter would show.`,
		RunE: runStats,
	}

	cmd.Flags().String("kind", "task", "record kind (lead, project, task)")
	cmd.Flags().String("archived", "active", "archive scope: active, archived, all")

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	kindFlag, _ := cmd.Flags().GetString("kind")
	kind, err := parseKind(kindFlag)
	if err != nil {
		return err
	}
	archived, _ := cmd.Flags().GetString("archived")

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

	// Stats see the archive scope but no other facet.
	scoped := query.Filter(classified, query.FilterState{Scope: query.ArchiveScope(archived)}, now)
	stats := query.Aggregate(scoped, kind, now)

	fmt.Println(cli.TitleStyle.Render(cli.ChartIcon + "  " + string(kind) + " statistics")) //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	for _, stat := range stats {
		fmt.Fprintf(w, "%s\t%d\n", stat.Widget, stat.Count)
	}

	if kind == model.KindProject {
		totals := ledger.Sum(scoped)
		fmt.Fprintf(w, "%s\t%s\n", "contract_value", formatMoney(totals.ContractValue))
		fmt.Fprintf(w, "%s\t%s\n", "debt", formatMoney(totals.Debt))
	}
	return nil
}
