package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"drone-deconflict/internal/airspace"
	"drone-deconflict/internal/mission"
	"drone-deconflict/internal/report"
	"drone-deconflict/internal/web"
)

var (
	serveMissions []string
	serveAddr     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a detection pass and serve the results over HTTP",
	Long:  "serve runs the detectors once and exposes the results as a web page, JSON endpoints, and an interactive 3D chart.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadDetectionConfig()
		if err != nil {
			return err
		}

		var trajectories []*airspace.Trajectory
		if len(serveMissions) > 0 {
			trajectories, err = mission.LoadAll(serveMissions...)
			if err != nil {
				return err
			}
		} else {
			trajectories = mission.BuiltIn()
		}

		result, err := runDetection(cmd, cfg, trajectories)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		srv := web.NewServer(report.NewDocument(result.RunID, result.Conflicts), trajectories)
		go func() {
			log.Printf("[Main] Result server listening on %s", serveAddr)
			if err := srv.Start(ctx, serveAddr); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Result server failed: %v", err)
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		cancel()
		log.Println("[Main] Result server stopped.")
		return nil
	},
}

func init() {
	addRunFlags(serveCmd)
	serveCmd.Flags().StringArrayVar(&serveMissions, "mission", nil, "Mission file with drone flight plans (repeatable; demo mission when omitted)")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address for the result server")
}
