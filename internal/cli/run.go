package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"isrevy/internal/adapters/report"
	"isrevy/internal/adapters/repository"
)

func newRunCommand(a *cliApp) *cobra.Command {
	var outDir string
	var saveOrder string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Read the source files once and write the event lists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			svc, err := a.newService()
			if err != nil {
				return err
			}
			run, err := svc.Run(ctx, a.sources())
			if err != nil {
				return err
			}

			if outDir != "" {
				if err := writeReports(outDir, run); err != nil {
					return err
				}
			}
			if saveOrder != "" {
				if err := svc.SaveOrder(ctx, saveOrder); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "out", "directory for generated lists")
	cmd.Flags().StringVar(&saveOrder, "save-order", "", "write the start order to this file after the run")
	return cmd
}

// writeReports renders the participant table, the playlist and the start
// list into dir.
func writeReports(dir string, run repository.Run) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	writers := []struct {
		name   string
		render func(f *os.File) error
	}{
		{"participants.csv", func(f *os.File) error {
			return report.WriteParticipantsCSV(f, run.Participants)
		}},
		{"playlist.m3u", func(f *os.File) error {
			return report.WritePlaylistM3U(f, run.Schedule)
		}},
		{"startlist.html", func(f *os.File) error {
			return report.RenderStartListHTML(f, report.StartList{
				Title:         run.Title,
				GeneratedAt:   run.CreatedAt,
				Entries:       run.Schedule,
				Discrepancies: run.Discrepancies,
				Officials:     run.Officials,
			})
		}},
	}

	for _, w := range writers {
		f, err := os.Create(filepath.Join(dir, w.name))
		if err != nil {
			return fmt.Errorf("create %s: %w", w.name, err)
		}
		if err := w.render(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", w.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", w.name, err)
		}
	}
	return nil
}
