package main

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	bgremove "github.com/gcslaoli/background-remover-go"
)

type rootOptions struct {
	input        string
	inputBase64  string
	output       string
	outputBase64 bool
	compression  string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "bgremove [input] [output]",
		Short:         "Make near-white pixels of an image transparent",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			setupLogger(opts.logLevel)
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.input = args[0]
			}
			if len(args) > 1 {
				opts.output = args[1]
			}
			return runRemove(c, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.logLevel, "level", "l", "info", "Log level")
	cmd.PersistentFlags().StringVar(&opts.compression, "compression", "default", "PNG compression (default, fast, best, none)")

	cmd.Flags().StringVar(&opts.input, "in", "", "Path to the source image (png/jpg/bmp/gif/tiff/webp/ico)")
	cmd.Flags().StringVar(&opts.inputBase64, "inbase64", "", "Base64 image input (optionally data URL)")
	cmd.Flags().StringVar(&opts.output, "out", "", "Output path (defaults to <name>_nobg.png)")
	cmd.Flags().BoolVar(&opts.outputBase64, "outbase64", false, "Write the PNG result as base64 to stdout instead of a file")

	cmd.AddCommand(newBatchCmd(opts))

	return cmd
}

func setupLogger(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
		log.SetOutput(colorable.NewColorableStderr())
	} else {
		log.SetOutput(os.Stderr)
	}
}

func newRemover(compression string) (*bgremove.Remover, error) {
	c, err := bgremove.ParseCompression(compression)
	if err != nil {
		return nil, err
	}
	return bgremove.NewRemover(c), nil
}

func runRemove(c *cobra.Command, opts *rootOptions) error {
	if opts.input == "" && opts.inputBase64 == "" {
		_ = c.Usage()
		return errors.New("an input image is required")
	}

	r, err := newRemover(opts.compression)
	if err != nil {
		return err
	}

	source := opts.input
	if opts.inputBase64 != "" {
		source = "base64"
	}

	var stats bgremove.Stats
	switch {
	case opts.outputBase64:
		var encoded string
		encoded, stats, err = removeToBase64(r, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), encoded)
	case opts.inputBase64 != "":
		img, _, decErr := bgremove.DecodeBase64Image(opts.inputBase64)
		if decErr != nil {
			return decErr
		}
		out := outputPath(opts.output, "", "")
		if stats, err = r.RemoveBackgroundToFile(img, out); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Background removed. Saved to %s\n", out)
	default:
		out := outputPath(opts.output, opts.input, "")
		if stats, err = r.RemoveBackgroundFile(opts.input, out); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Background removed. Saved to %s\n", out)
	}

	log.WithFields(log.Fields{
		"source":     source,
		"size":       fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		"background": stats.Background,
		"ratio":      fmt.Sprintf("%.3f", stats.Ratio()),
	}).Debug("background removed")

	return nil
}

func removeToBase64(r *bgremove.Remover, opts *rootOptions) (string, bgremove.Stats, error) {
	if opts.inputBase64 != "" {
		return r.RemoveBackgroundBase64(opts.inputBase64)
	}

	data, err := os.ReadFile(opts.input)
	if err != nil {
		return "", bgremove.Stats{}, &bgremove.DecodeError{Op: "open", Path: opts.input, Err: err}
	}

	out, stats, err := r.RemoveBackgroundBytes(data)
	if err != nil {
		return "", bgremove.Stats{}, err
	}
	return base64.StdEncoding.EncodeToString(out), stats, nil
}

// outputPath returns explicit when set, otherwise <name>_nobg.png placed in
// dir, or next to input when dir is empty.
func outputPath(explicit, input, dir string) string {
	if explicit != "" {
		return explicit
	}

	base := "output"
	if input != "" {
		base = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+"_nobg.png")
}
