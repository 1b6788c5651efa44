package main

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"artlink/internal/ledger"
	"artlink/internal/logging"
	"artlink/internal/report"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var includeReview bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply <report.json>",
		Short: "Commit a report's auto-link assignments to the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			artifact, err := report.Load(args[0])
			if err != nil {
				return err
			}

			candidates := artifact.Report.AutoLink
			if includeReview {
				candidates = append(candidates, artifact.Report.NeedsReview...)
			}
			if len(candidates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to apply")
				return nil
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "Would apply %d links from run %s\n", len(candidates), artifact.RunID)
				return nil
			}

			// Serialize concurrent applies against the same ledger.
			lock := flock.New(cfg.Paths.LedgerPath + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire ledger lock: %w", err)
			}
			if !locked {
				return errors.New("another apply is in progress for this ledger")
			}
			defer lock.Unlock()

			var applied, skipped, conflicts int
			err = ctx.withLedger(func(store *ledger.Store) error {
				for _, cand := range candidates {
					outcome, applyErr := store.Apply(cmd.Context(), cand.RecordID, cand.AssetID, artifact.RunID)
					switch {
					case applyErr == nil && outcome.Applied:
						applied++
					case applyErr == nil && outcome.AlreadyApplied:
						skipped++
					case errors.Is(applyErr, ledger.ErrAssetConflict) || errors.Is(applyErr, ledger.ErrRecordConflict):
						conflicts++
						logger.Warn("link refused", logging.String("record_id", cand.RecordID),
							logging.String("asset_id", cand.AssetID), logging.Error(applyErr))
					default:
						return applyErr
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Applied %d links (%d already present, %d conflicts) from run %s\n",
				applied, skipped, conflicts, artifact.RunID)
			if conflicts > 0 {
				return fmt.Errorf("%d links conflicted with existing ledger state; re-run matching against current data", conflicts)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeReview, "include-review", false, "Also apply the needs-review partition")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be applied without writing")
	return cmd
}
