package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/minhle/workdesk/internal/cli"
	"github.com/minhle/workdesk/internal/common"
	"github.com/minhle/workdesk/internal/ledger"
	"github.com/minhle/workdesk/internal/model"
)

func payCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Inspect and update a project's payment schedule",
	}
	cmd.AddCommand(payListCmd())
	cmd.AddCommand(payToggleCmd())
	return cmd
}

func payListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <project-id>",
		Short: "Show a project's payment schedule and ledger",
		Args:  cobra.ExactArgs(1),
		RunE:  runPayList,
	}
}

func payToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <project-id> <index>",
		Short: "Flip one installment between paid and unpaid",
		Long: `Flip the paid flag of the installment at the given zero-based index and
persist the new schedule. The in-memory toggle is applied first; if
persistence fails, the pre-toggle schedule is kept untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: runPayToggle,
	}
}

func runPayList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close storage", "error", closeErr)
		}
	}()

	item, err := store.GetWorkItem(ctx, args[0])
	if err != nil {
		return err
	}
	if item.Kind != model.KindProject {
		return fmt.Errorf("%s is a %s, not a project", args[0], item.Kind)
	}

	fmt.Println(cli.FormatTitle(item.Name)) //nolint:forbidigo // User-facing output

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.HeaderStyle.Render("#"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Paid"))
	for i, p := range item.Payments {
		paid := "-"
		if p.Paid {
			paid = cli.SuccessIcon
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, formatMoney(p.Amount), paid)
	}

	fmt.Fprintf(w, "\n%s\t%s\n", "contract", formatMoney(item.ContractValue))
	fmt.Fprintf(w, "%s\t%s\n", "paid", formatMoney(ledger.TotalPaid(item.Payments)))
	fmt.Fprintf(w, "%s\t%s\n", "debt", formatMoney(ledger.Debt(item.ContractValue, item.Payments)))
	return nil
}

func runPayToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid payment index %q", args[1])
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

	item, err := store.GetWorkItem(ctx, args[0])
	if err != nil {
		return err
	}
	if item.Kind != model.KindProject {
		return fmt.Errorf("%s is a %s, not a project", args[0], item.Kind)
	}

	// Optimistic update: toggle in memory first. The untouched item.Payments
	// slice is the rollback snapshot while persistence is in flight.
	toggled, err := ledger.TogglePayment(item.Payments, index)
	if err != nil {
		return err
	}

	if err := store.PersistPayments(ctx, item.ID, toggled); err != nil {
		common.LogError(err, "persist failed, keeping pre-toggle schedule",
			common.Fields{"id": item.ID, "index": index})
		return fmt.Errorf("failed to persist payments: %w", err)
	}
	item.Payments = toggled

	state := "unpaid"
	if toggled[index].Paid {
		state = "paid"
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("installment %d marked %s; debt is now %s", //nolint:forbidigo // User-facing output
		index, state, formatMoney(ledger.Debt(item.ContractValue, item.Payments)))))
	return nil
}
