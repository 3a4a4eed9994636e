package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"swatchbook/internal/command"
	"swatchbook/internal/config"
	"swatchbook/internal/ui"
)

var version = "dev"

var flags struct {
	text       string
	stdin      bool
	file       string
	json       bool
	preview    bool
	configPath string
}

var rootCmd = &cobra.Command{
	Use:   "swatchbook [command]",
	Short: "Turn hex colors in text into a swatch palette archive",
	Long: `Swatchbook scans up to three lines of text for hex color codes, places
up to ten per line into a 3x10 palette and saves it as a zip archive
holding a single Swatches.json document.

Without a command the palette given by --file (or an empty one) is shown.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := "view"
		if len(args) > 0 {
			token = args[0]
		}
		return run(cmd, token)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.text, "text", "t", "", "source text to scan for hex colors")
	pf.BoolVar(&flags.stdin, "stdin", false, "read source text from standard input")
	pf.StringVarP(&flags.file, "file", "f", "", "palette archive to view")
	pf.BoolVar(&flags.json, "json", false, "print the palette document as JSON")
	pf.BoolVar(&flags.preview, "preview", false, "also write a PNG preview next to the archive")
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default $SWATCHBOOK_CONFIG or <user config dir>/swatchbook/config.*)")
}

func run(cmd *cobra.Command, token string) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		ui.ErrorNote(err.Error())
		return err
	}

	if !flags.json {
		ui.PrintBanner(version)
	}

	inputs, err := readInputs(cmd)
	if err != nil {
		return err
	}

	r := &command.Runner{
		Config:  cfg,
		Inputs:  inputs,
		JSON:    flags.json,
		Preview: flags.preview,
	}
	runErr := r.Run(token)

	if err := command.WriteMetrics(cfg.MetricsFile); err != nil {
		ui.LogStatus("warning", "Metrics not written: "+err.Error())
	}
	return runErr
}

// readInputs collects the host-provided inputs. Text passed as an empty
// --text is present; text is absent only when neither flag is given.
func readInputs(cmd *cobra.Command) (command.Inputs, error) {
	inputs := command.Inputs{File: flags.file}
	switch {
	case flags.stdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return inputs, fmt.Errorf("read stdin: %w", err)
		}
		text := string(data)
		inputs.Text = &text
	case cmd.Flags().Changed("text"):
		text := flags.text
		inputs.Text = &text
	}
	return inputs, nil
}

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		ui.LogStatus("error", command.FailureKind(err)+": "+err.Error())
		os.Exit(1)
	}
}
