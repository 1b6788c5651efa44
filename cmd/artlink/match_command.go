package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"artlink/internal/catalog"
	"artlink/internal/ledger"
	"artlink/internal/logging"
	"artlink/internal/match"
	"artlink/internal/report"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var recordsFlag string
	var assetsFlag string
	var outDir string
	var jsonOutput bool
	var save bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score catalog records against media assets",
		Long: strings.TrimSpace(`
Score every unlinked catalog record against the unused media assets and
partition the results into auto-link, needs-review, rejected, and
unmatched. Links already recorded in the ledger are excluded up front.
Nothing is applied; use "artlink apply" with a saved report to commit
the auto-link partition.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			recordsPath := firstNonEmpty(recordsFlag, cfg.Paths.RecordsFile)
			assetsPath := firstNonEmpty(assetsFlag, cfg.Paths.AssetsFile)
			if recordsPath == "" || assetsPath == "" {
				return errors.New("records and assets files must be set via flags or [paths] in the config")
			}

			records, err := catalog.LoadRecords(recordsPath)
			if err != nil {
				return err
			}
			assets, err := catalog.LoadAssets(assetsPath)
			if err != nil {
				return err
			}

			if err := ctx.withLedger(func(store *ledger.Store) error {
				return markLedgerState(cmd, store, records, assets)
			}); err != nil {
				return err
			}

			engine, err := match.New(cfg.MatchPolicy(), cfg.BuildLexicon(), logger)
			if err != nil {
				return err
			}
			rep := engine.Resolve(records, assets)

			artifact := report.NewArtifact(rep, engine.Policy())
			rows := report.Flatten(rep, records, assets)

			if save || outDir != "" {
				dir := firstNonEmpty(outDir, cfg.Paths.ReportDir)
				written, err := report.Save(dir, artifact, rows)
				if err != nil {
					return err
				}
				logger.Info("report saved",
					logging.String("run_id", artifact.RunID),
					logging.Int("files", len(written)))
				fmt.Fprintf(cmd.OutOrStdout(), "Report %s written to %s\n", artifact.RunID, dir)
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), artifact)
			}
			renderReport(cmd, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&recordsFlag, "records", "", "CSV file of catalog records")
	cmd.Flags().StringVar(&assetsFlag, "assets", "", "CSV file of media assets")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for report artifacts (implies --save)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full report as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Write report artifacts to the report directory")
	return cmd
}

// markLedgerState folds applied links into the inputs so the engine
// skips records and assets the ledger already accounts for.
func markLedgerState(cmd *cobra.Command, store *ledger.Store, records []match.Record, assets []match.Asset) error {
	used, err := store.UsedAssetIDs(cmd.Context())
	if err != nil {
		return err
	}
	linked, err := store.LinkedRecords(cmd.Context())
	if err != nil {
		return err
	}

	for i := range assets {
		if _, ok := used[assets[i].ID]; ok {
			assets[i].Used = true
		}
	}
	for i := range records {
		if assetID, ok := linked[records[i].ID]; ok && records[i].AssetID == "" {
			records[i].AssetID = assetID
		}
	}
	return nil
}

func renderReport(cmd *cobra.Command, rows report.Rows) {
	out := cmd.OutOrStdout()

	sections := []struct {
		title string
		rows  []report.Row
	}{
		{"Auto-link", rows.AutoLink},
		{"Needs review", rows.NeedsReview},
		{"Rejected", rows.Rejected},
	}
	for _, section := range sections {
		fmt.Fprintln(out, sectionHeader(out, section.title, len(section.rows)))
		if len(section.rows) == 0 {
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintln(out, renderCandidateTable(section.rows))
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, sectionHeader(out, "Unmatched", len(rows.Unmatched)))
	if len(rows.Unmatched) > 0 {
		fmt.Fprintln(out, renderUnmatchedTable(rows.Unmatched))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
