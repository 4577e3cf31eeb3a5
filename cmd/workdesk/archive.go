package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/minhle/workdesk/internal/bulk"
	"github.com/minhle/workdesk/internal/cli"
	"github.com/minhle/workdesk/internal/common"
	"github.com/minhle/workdesk/internal/service"
)

// progressStore advances the progress bar as each per-item mutation
// completes, success or not.
type progressStore struct {
	service.Store
	bar *progressbar.ProgressBar
}

func (p progressStore) MutateArchived(ctx context.Context, id string, archived bool) error {
	err := p.Store.MutateArchived(ctx, id, archived)
	_ = p.bar.Add(1)
	return err
}

func (p progressStore) DeleteByID(ctx context.Context, id string) error {
	err := p.Store.DeleteByID(ctx, id)
	_ = p.bar.Add(1)
	return err
}

func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive id...",
		Short: "Archive the given work items",
		Long: `Archive every listed item. Items are processed one by one; a failure on
one id never stops the rest, and the per-item outcome is reported at the
end.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(cmd, bulk.ActionArchive, args)
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore id...",
		Short: "Restore the given work items from the archive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(cmd, bulk.ActionRestore, args)
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete id...",
		Short: "Permanently delete the given work items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBulk(cmd, bulk.ActionDelete, args)
		},
	}
}

func runBulk(cmd *cobra.Command, action bulk.Action, ids []string) error {
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

	bar := progressbar.Default(int64(len(ids)), string(action))
	processor := bulk.New(progressStore{Store: store, bar: bar})
	result := processor.Run(ctx, action, ids)
	_ = bar.Finish()

	common.LogInfo("bulk action finished", common.Fields{
		"action":    string(action),
		"succeeded": len(result.Succeeded),
		"failed":    len(result.Failed),
	})

	for _, id := range result.Succeeded {
		fmt.Println(cli.FormatSuccess(id)) //nolint:forbidigo // User-facing output
	}
	for _, failure := range result.Failed {
		fmt.Println(cli.FormatError(fmt.Sprintf("%s: %s", failure.ID, failure.Reason))) //nolint:forbidigo // User-facing output
	}

	if len(result.Failed) > 0 {
		return fmt.Errorf("%s failed for %d of %d items", action, len(result.Failed), len(ids))
	}
	return nil
}
