package main

import (
	"fmt"

	"github.com/vedantwpatil/compositor/internal/camera"
	"github.com/vedantwpatil/compositor/internal/config"
	"github.com/vedantwpatil/compositor/internal/motion"
	"github.com/vedantwpatil/compositor/internal/project"
)

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func loadSnapshot(path string) (project.Snapshot, error) {
	if path == "" {
		return project.Snapshot{}, fmt.Errorf("--project is required")
	}
	return project.LoadSnapshot(path)
}

func recordingFor(snap project.Snapshot, clip project.Clip) (project.Recording, error) {
	rec, ok := snap.Recordings[clip.RecordingID]
	if !ok {
		return project.Recording{}, fmt.Errorf("recording %q referenced by clip %q not found", clip.RecordingID, clip.ID)
	}
	return rec, nil
}

// cameraInput assembles a camera.Input for one frame from the pieces the
// render loop already has in hand.
func cameraInput(rec project.Recording, event project.MouseEvent, events []project.MouseEvent, clusters []motion.Cluster,
	zoom *camera.ZoomContext, outputW, outputH, timelineMs, sourceMs float64) camera.Input {
	return camera.Input{
		TimelineMs:   timelineMs,
		SourceMs:     sourceMs,
		Zoom:         zoom,
		Recording:    rec,
		Event:        event,
		Events:       events,
		Clusters:     clusters,
		OutputWidth:  outputW,
		OutputHeight: outputH,
	}
}

// activeZoomContext finds the timeline-scoped Zoom effect covering
// timelineMs, if any (§4.F-1 needs the effect's own window for the
// intro/outro ramp, not just its payload).
func activeZoomContext(effectsSet []project.Effect, timelineMs float64) *camera.ZoomContext {
	for _, e := range effectsSet {
		if e.Type != project.EffectZoom || !e.Enabled || e.Zoom == nil {
			continue
		}
		if timelineMs < e.StartTime || timelineMs > e.EndTime {
			continue
		}
		return &camera.ZoomContext{Block: *e.Zoom, StartTime: e.StartTime, EndTime: e.EndTime}
	}
	return nil
}
