package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/popnet/tabular"
)

// Export file names inside --out.
const (
	populationFile = "population.arrow"
	contactsFile   = "contacts.arrow"
	manifestFile   = "manifest.yaml"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the population as Arrow IPC files",
		Long: `Write population.arrow (one column per attribute, NaN dates as nulls),
contacts.arrow (every layer behind a "layer" column) and manifest.yaml
into --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			p, logger, err := loadPopulation(cmd)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			pop, err := tabular.PopulationRecord(nil, p)
			if err != nil {
				return err
			}
			defer pop.Release()
			if err := writeRecord(filepath.Join(out, populationFile), pop); err != nil {
				return err
			}

			con, err := tabular.ContactsRecord(nil, p.Contacts())
			if err != nil {
				return err
			}
			defer con.Release()
			if err := writeRecord(filepath.Join(out, contactsFile), con); err != nil {
				return err
			}

			m, err := tabular.Shrink(p)
			if err != nil {
				return err
			}
			f, err := os.Create(filepath.Join(out, manifestFile))
			if err != nil {
				return fmt.Errorf("create manifest: %w", err)
			}
			defer f.Close()
			if err := m.Encode(f); err != nil {
				return err
			}

			logger.Info("exported population", slog.String("dir", out), slog.String("id", m.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s, %s and %s to %s\n", populationFile, contactsFile, manifestFile, out)
			return nil
		},
	}

	cmd.Flags().String("out", "", "Output directory")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func writeRecord(path string, rec arrow.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := tabular.WriteIPC(f, nil, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
