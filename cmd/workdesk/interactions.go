package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhle/workdesk/internal/cli"
	"github.com/minhle/workdesk/internal/model"
)

func interactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactions",
		Short: "Manage a lead's care history",
	}
	cmd.AddCommand(interactionsAddCmd())
	cmd.AddCommand(interactionsNextCmd())
	return cmd
}

func interactionsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <lead-id>",
		Short: "Record an interaction with a lead",
		Args:  cobra.ExactArgs(1),
		RunE:  runInteractionsAdd,
	}

	cmd.Flags().String("date", "", "interaction date (YYYY-MM-DD, default today)")
	cmd.Flags().String("next", "", "next follow-up date (YYYY-MM-DD)")
	cmd.Flags().String("notes", "", "free-form notes")

	return cmd
}

func interactionsNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <lead-id>",
		Short: "Show a lead's effective follow-up date",
		Long: `The effective follow-up date is the next-follow-up carried by the lead's
most recent interaction; earlier interactions do not count.`,
		Args: cobra.ExactArgs(1),
		RunE: runInteractionsNext,
	}
}

func runInteractionsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	dateFlag, _ := cmd.Flags().GetString("date")
	nextFlag, _ := cmd.Flags().GetString("next")
	notes, _ := cmd.Flags().GetString("notes")

	record := model.InteractionRecord{Date: time.Now(), Notes: notes}
	if dateFlag != "" {
		date, err := parseDate(dateFlag)
		if err != nil {
			return err
		}
		record.Date = date
	}
	if nextFlag != "" {
		next, err := parseDate(nextFlag)
		if err != nil {
			return err
		}
		record.NextFollowUp = &next
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

	if _, err := store.AppendInteraction(ctx, args[0], record); err != nil {
		return fmt.Errorf("failed to record interaction: %w", err)
	}

	fmt.Println(cli.FormatSuccess("interaction recorded")) //nolint:forbidigo // User-facing output
	return nil
}

func runInteractionsNext(cmd *cobra.Command, args []string) error {
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
	if item.Kind != model.KindLead {
		return fmt.Errorf("%s is a %s, not a lead", args[0], item.Kind)
	}

	next := item.EffectiveFollowUp()
	if next == nil {
		fmt.Println(cli.SubtleStyle.Render("no follow-up scheduled")) //nolint:forbidigo // User-facing output
		return nil
	}
	fmt.Println(cli.FormatSuccess("next follow-up: " + next.Format("2006-01-02"))) //nolint:forbidigo // User-facing output
	return nil
}
