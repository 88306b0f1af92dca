package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vedantwpatil/compositor/internal/compositor"
	"github.com/vedantwpatil/compositor/internal/motion"
	"github.com/vedantwpatil/compositor/internal/project"
)

var (
	renderProjectPath string
	renderOutPath     string
	renderPosition    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render per-frame camera, cursor, keystroke and effect state for a project snapshot",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderProjectPath, "project", "", "project snapshot JSON path")
	renderCmd.Flags().StringVar(&renderOutPath, "out", "", "output path for the frame stream (default stdout)")
	renderCmd.Flags().StringVar(&renderPosition, "keystroke-position", "bottom-center", "keystroke overlay position preset")
}

// frameRecord is one line of the render stream: the resolved state a pixel
// surface needs to draw this frame (§6).
type frameRecord struct {
	Frame      int                  `json:"frame"`
	TimelineMs float64              `json:"timelineMs"`
	SourceMs   float64              `json:"sourceMs"`
	ClipID     string               `json:"clipId"`
	InGap      bool                 `json:"inGap"`
	Camera     cameraRecord         `json:"camera"`
	Cursor     cursorRecord         `json:"cursor"`
	Keystrokes []keystrokeRecord    `json:"keystrokes,omitempty"`
	Effects    []effectDrawRecord   `json:"effects,omitempty"`
}

type cameraRecord struct {
	Scale  float64 `json:"scale"`
	Center [2]float64 `json:"center"`
}

type cursorRecord struct {
	Position [2]float64   `json:"position"`
	Opacity  float64      `json:"opacity"`
	Ripples  []ripple     `json:"ripples,omitempty"`
}

type ripple struct {
	X, Y, Radius, Opacity float64
}

type keystrokeRecord struct {
	Text     string  `json:"text"`
	Position string  `json:"position"`
	Opacity  float64 `json:"opacity"`
}

type effectDrawRecord struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Opacity float64 `json:"opacity"`
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(renderProjectPath)
	if err != nil {
		return err
	}

	out := os.Stdout
	if renderOutPath != "" {
		f, err := os.Create(renderOutPath)
		if err != nil {
			return fmt.Errorf("compositor: create %s: %w", renderOutPath, err)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)

	comp := compositor.New(*cfg)
	fps := float64(cfg.Output.FPS)
	if err := comp.BuildFrameLayout(snap.Clips, fps); err != nil {
		return err
	}

	clusterCache := make(map[string][]motion.Cluster)
	totalFrames := totalFrameCount(snap.Clips, fps)

	for frame := 0; frame < totalFrames; frame++ {
		clip, sourceMs, timelineMs, ok := comp.SourceTimeForFrame(frame, fps)
		if !ok {
			break
		}
		rec, err := recordingFor(snap, clip)
		if err != nil {
			return err
		}

		clusters, cached := clusterCache[rec.ID]
		if !cached {
			clusters = motion.BuildClusters(rec.Metadata.MouseEvents, float64(rec.Width), float64(rec.Height),
				cfg.Camera.ClusterRadiusFrac, cfg.Camera.ClusterMinHoldMs)
			clusterCache[rec.ID] = clusters
		}

		active := comp.ResolveActiveClip(frame)

		drawCmds := comp.ResolveEffects(clip, rec, snap.TimelineEffects, timelineMs, sourceMs)
		zoom := activeZoomContext(snap.TimelineEffects, timelineMs)
		if zoom == nil {
			zoom = activeZoomContext(rec.Effects, sourceMs)
		}

		nearestEvent, _ := nearestMouseEvent(rec.Metadata.MouseEvents, sourceMs)

		camState := comp.ComputeCameraState(cameraInput(rec, nearestEvent, rec.Metadata.MouseEvents, clusters,
			zoom, float64(cfg.Output.Width), float64(cfg.Output.Height), timelineMs, sourceMs))

		cursorCfg := motion.CursorConfig{
			Speed:        0.5,
			Smoothness:   0.5,
			Gliding:      true,
			HideOnIdle:   true,
			IdleTimeout:  2000,
			MotionBlur:   false,
			ClickEffects: true,
		}
		cursorState := comp.CalculateCursorState(cursorCfg, rec.Metadata.MouseEvents, rec.Metadata.ClickEvents, sourceMs, fps, nil)

		blocks := comp.RenderKeystrokes(rec.Metadata.KeyboardEvents, sourceMs, renderPosition)

		rcd := frameRecord{
			Frame:      frame,
			TimelineMs: timelineMs,
			SourceMs:   sourceMs,
			ClipID:     clip.ID,
			InGap:      active.InGap,
			Camera:     cameraRecord{Scale: camState.Scale, Center: [2]float64{camState.Center.X, camState.Center.Y}},
			Cursor: cursorRecord{
				Position: [2]float64{cursorState.Position.X, cursorState.Position.Y},
				Opacity:  cursorState.Opacity,
				Ripples:  toRippleRecords(cursorState.Ripples),
			},
		}
		for _, b := range blocks {
			rcd.Keystrokes = append(rcd.Keystrokes, keystrokeRecord{Text: b.Text, Position: b.Position, Opacity: b.Opacity})
		}
		for _, d := range drawCmds {
			rcd.Effects = append(rcd.Effects, effectDrawRecord{ID: d.ID, Type: string(d.Type), Opacity: d.Opacity})
		}

		if err := enc.Encode(rcd); err != nil {
			return err
		}
	}
	return nil
}

func toRippleRecords(rs []motion.Ripple) []ripple {
	out := make([]ripple, len(rs))
	for i, r := range rs {
		out[i] = ripple{X: r.X, Y: r.Y, Radius: r.Radius, Opacity: r.Opacity}
	}
	return out
}

func nearestMouseEvent(events []project.MouseEvent, t float64) (project.MouseEvent, bool) {
	if len(events) == 0 {
		return project.MouseEvent{}, false
	}
	best := events[0]
	bestDiff := abs(best.TimeMs - t)
	for _, e := range events[1:] {
		if d := abs(e.TimeMs - t); d < bestDiff {
			best, bestDiff = e, d
		}
	}
	return best, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func totalFrameCount(clips []project.Clip, fps float64) int {
	var maxFrame int
	for _, c := range clips {
		end := int((c.StartTime + c.Duration) * fps / 1000)
		if end > maxFrame {
			maxFrame = end
		}
	}
	return maxFrame
}
