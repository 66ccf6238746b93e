package main

import (
	"github.com/spf13/cobra"

	"drone-deconflict/internal/mission"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the detectors over the built-in demo mission",
	Long:  "demo runs a detection pass over three built-in flight plans that are known to converge, without needing mission files.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadDetectionConfig()
		if err != nil {
			return err
		}
		_, err = runDetection(cmd, cfg, mission.BuiltIn())
		return err
	},
}

func init() {
	addRunFlags(demoCmd)
}
