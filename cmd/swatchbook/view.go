package main

import "github.com/spf13/cobra"

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the palette stored in --file, or an empty palette",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, "view")
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
