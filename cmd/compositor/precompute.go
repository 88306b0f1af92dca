package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedantwpatil/compositor/internal/camera"
	"github.com/vedantwpatil/compositor/internal/compositor"
	"github.com/vedantwpatil/compositor/internal/motion"
	"github.com/vedantwpatil/compositor/internal/project"
)

var (
	precomputeProjectPath string
	precomputeOutPath     string
)

var precomputeCmd = &cobra.Command{
	Use:   "precompute",
	Short: "Build the frame-indexed camera path table for random-access playback",
	RunE:  runPrecompute,
}

func init() {
	precomputeCmd.Flags().StringVar(&precomputeProjectPath, "project", "", "project snapshot JSON path")
	precomputeCmd.Flags().StringVar(&precomputeOutPath, "out", "", "output path for the camera table (default stdout)")
}

type cameraTableEntry struct {
	Frame  int        `json:"frame"`
	Scale  float64    `json:"scale"`
	Center [2]float64 `json:"center"`
}

func runPrecompute(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(precomputeProjectPath)
	if err != nil {
		return err
	}

	comp := compositor.New(*cfg)
	fps := float64(cfg.Output.FPS)
	if err := comp.BuildFrameLayout(snap.Clips, fps); err != nil {
		return err
	}

	out := os.Stdout
	if precomputeOutPath != "" {
		f, err := os.Create(precomputeOutPath)
		if err != nil {
			return fmt.Errorf("compositor: create %s: %w", precomputeOutPath, err)
		}
		defer f.Close()
		out = f
	}

	total := totalFrameCount(snap.Clips, fps)
	clusterCache := make(map[string][]motion.Cluster)

	frames := make([]camera.FrameInput, 0, total)
	var rec project.Recording
	var events []project.MouseEvent
	var clusters []motion.Cluster

	for frame := 0; frame < total; frame++ {
		clip, sourceMs, timelineMs, ok := comp.SourceTimeForFrame(frame, fps)
		if !ok {
			break
		}
		r, err := recordingFor(snap, clip)
		if err != nil {
			return err
		}
		rec, events = r, r.Metadata.MouseEvents
		if c, cached := clusterCache[r.ID]; cached {
			clusters = c
		} else {
			clusters = motion.BuildClusters(events, float64(r.Width), float64(r.Height),
				cfg.Camera.ClusterRadiusFrac, cfg.Camera.ClusterMinHoldMs)
			clusterCache[r.ID] = clusters
		}

		zoom := activeZoomContext(snap.TimelineEffects, timelineMs)
		if zoom == nil {
			zoom = activeZoomContext(r.Effects, sourceMs)
		}
		frames = append(frames, camera.FrameInput{TimelineMs: timelineMs, SourceMs: sourceMs, Zoom: zoom})
	}
	if len(frames) == 0 {
		return nil
	}

	nearestEvent, _ := nearestMouseEvent(events, frames[0].SourceMs)
	baseInput := cameraInput(rec, nearestEvent, events, clusters, nil,
		float64(cfg.Output.Width), float64(cfg.Output.Height), 0, 0)

	table := comp.PrecomputeCameraPath(frames, baseInput)

	enc := json.NewEncoder(out)
	for i, r := range table {
		if err := enc.Encode(cameraTableEntry{Frame: i, Scale: r.Scale, Center: [2]float64{r.Center.X, r.Center.Y}}); err != nil {
			return err
		}
	}
	return nil
}
