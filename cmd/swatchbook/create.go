package main

import "github.com/spf13/cobra"

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Build a palette from --text or --stdin and save it as an archive",
	Long: `Create scans the first three lines of the source text for hex color
codes (#RGB or #RRGGBB, '#' optional), keeps at most ten per line and
saves the palette under the configured output directory.

Any token that is not a valid color aborts the command without writing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, "create")
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
