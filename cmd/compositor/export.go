package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedantwpatil/compositor/internal/project"
)

var exportOutPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a demo project snapshot fixture to seed render/precompute",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutPath, "out", "fixture.json", "output path for the generated snapshot")
}

func runExport(cmd *cobra.Command, args []string) error {
	rec := project.NewRecording(1920, 1080, 8000, project.RecordingMetadata{
		MouseEvents: []project.MouseEvent{
			{TimeMs: 0, X: 200, Y: 200},
			{TimeMs: 500, X: 420, Y: 260},
			{TimeMs: 1200, X: 900, Y: 520},
			{TimeMs: 2000, X: 900, Y: 520},
			{TimeMs: 3200, X: 1500, Y: 700},
		},
		ClickEvents: []project.ClickEvent{
			{TimeMs: 1200, X: 900, Y: 520, Button: "left"},
		},
		KeyboardEvents: []project.KeyboardEvent{
			{TimeMs: 1800, Key: "KeyH"},
			{TimeMs: 1900, Key: "KeyI"},
			{TimeMs: 2700, Key: "Enter"},
		},
	})

	clip := project.NewClip(rec.ID, 0, 8000, 0)

	scale := 2.0
	zoomEnd := 4000.0
	snap := project.Snapshot{
		Recordings: project.RecordingSet{rec.ID: rec},
		Clips:      []project.Clip{clip},
		TimelineEffects: []project.Effect{
			{
				ID:        project.NewID(),
				Type:      project.EffectZoom,
				StartTime: 800,
				EndTime:   zoomEnd,
				Enabled:   true,
				Zoom: &project.ZoomBlock{
					Scale:          scale,
					IntroMs:        300,
					OutroMs:        300,
					FollowStrategy: project.FollowMouse,
				},
			},
		},
	}

	f, err := os.Create(exportOutPath)
	if err != nil {
		return fmt.Errorf("compositor: create %s: %w", exportOutPath, err)
	}
	defer f.Close()
	return project.EncodeSnapshot(f, snap)
}
