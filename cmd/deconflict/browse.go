package main

import (
	"github.com/spf13/cobra"

	"drone-deconflict/internal/report"
	"drone-deconflict/internal/tui"
)

var browseInput string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse a saved conflict report in the terminal",
	Long:  "browse opens an interactive terminal viewer over a report document written by check --output.",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := report.LoadDocument(browseInput)
		if err != nil {
			return err
		}
		return tui.Browse(doc)
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseInput, "input", "report.json", "Path to a report document (JSON)")
}
