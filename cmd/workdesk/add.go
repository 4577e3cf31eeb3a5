package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/minhle/workdesk/internal/cli"
	"github.com/minhle/workdesk/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <kind> <name>",
		Short: "Create a lead, project or task",
		Args:  cobra.ExactArgs(2),
		RunE:  runAdd,
	}

	cmd.Flags().String("description", "", "free-form description")
	cmd.Flags().String("phone", "", "contact phone (leads)")
	cmd.Flags().String("company", "", "company name (leads)")
	cmd.Flags().String("status", "", "initial status (defaults per kind)")
	cmd.Flags().String("priority", "", "priority or potential")
	cmd.Flags().String("due", "", "end date / deadline (YYYY-MM-DD)")
	cmd.Flags().Float64("contract-value", 0, "contract value (projects)")
	cmd.Flags().Float64Slice("payment", nil, "installment amount, repeatable (projects)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	description, _ := cmd.Flags().GetString("description")
	phone, _ := cmd.Flags().GetString("phone")
	company, _ := cmd.Flags().GetString("company")
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	due, _ := cmd.Flags().GetString("due")
	contractValue, _ := cmd.Flags().GetFloat64("contract-value")
	installments, _ := cmd.Flags().GetFloat64Slice("payment")

	item := model.WorkItem{
		Kind:          kind,
		Name:          args[1],
		Description:   description,
		Phone:         phone,
		Company:       company,
		Status:        model.Status(status),
		Priority:      model.Priority(priority),
		ContractValue: contractValue,
	}
	if item.Status == "" {
		item.Status = defaultStatus(kind)
	}
	if due != "" {
		day, parseErr := parseDate(due)
		if parseErr != nil {
			return parseErr
		}
		item.Due = &day
	}
	for _, amount := range installments {
		item.Payments = append(item.Payments, model.Payment{Amount: amount})
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

	id, err := store.CreateWorkItem(ctx, &item)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", kind, err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("created %s %s", kind, id))) //nolint:forbidigo // User-facing output
	return nil
}

func defaultStatus(kind model.Kind) model.Status {
	switch kind {
	case model.KindProject:
		return model.StatusPlanning
	case model.KindTask:
		return model.StatusTodo
	default:
		return model.StatusNew
	}
}
