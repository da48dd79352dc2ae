package main

import (
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	bgremove "github.com/gcslaoli/background-remover-go"
)

type batchOptions struct {
	outDir  string
	workers int
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch files...",
		Short: "Remove the background of several images in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runBatch(c, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", "", "Output directory (defaults to each input's directory)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Number of parallel workers (defaults to the CPU count)")

	return cmd
}

func runBatch(c *cobra.Command, root *rootOptions, opts *batchOptions, files []string) error {
	r, err := newRemover(root.compression)
	if err != nil {
		return err
	}

	if opts.outDir != "" {
		if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	jobs := make([]bgremove.Job, len(files))
	for i, f := range files {
		jobs[i] = bgremove.Job{Input: f, Output: outputPath("", f, opts.outDir)}
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt)
	defer stop()

	failed := 0
	for _, res := range r.RemoveBackgroundFiles(ctx, jobs, opts.workers) {
		entry := log.WithField("input", res.Job.Input)
		if res.Err != nil {
			failed++
			entry.WithError(res.Err).Error("background removal failed")
			continue
		}
		entry.WithField("background", res.Stats.Background).Debug("background removed")
		fmt.Fprintf(c.OutOrStdout(), "Background removed. Saved to %s\n", res.Job.Output)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(jobs))
	}
	return nil
}

