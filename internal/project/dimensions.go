package project

// ResolveSourceDimensions implements the Camera Engine's source-dimension
// resolution precedence (§4.F-3):
//
//  1. the current mouse event's CaptureWidth/CaptureHeight, when present;
//  2. the recording's CaptureArea.FullBounds scaled by ScaleFactor;
//  3. the recording's own Width/Height;
//  4. 1920x1080.
//
// cursorX/cursorY are the raw (unnormalized) cursor coordinates for the
// frame being resolved; when they exceed the chosen dimensions by more
// than tolerance (default 1.10, i.e. 10%) on either axis, the recording's
// CaptureArea.ScaleFactor (or 1 if absent) is applied to the result to
// correct a physical-vs-logical coordinate mismatch.
func ResolveSourceDimensions(rec Recording, event MouseEvent, cursorX, cursorY float64, fallbackW, fallbackH int, tolerance float64) (float64, float64) {
	w, h := resolveBase(rec, event, fallbackW, fallbackH)

	if tolerance <= 0 {
		tolerance = 1.10
	}
	if (cursorX > w*tolerance || cursorY > h*tolerance) && rec.CaptureArea != nil && rec.CaptureArea.ScaleFactor > 0 {
		w *= rec.CaptureArea.ScaleFactor
		h *= rec.CaptureArea.ScaleFactor
	}
	return w, h
}

func resolveBase(rec Recording, event MouseEvent, fallbackW, fallbackH int) (float64, float64) {
	if event.CaptureWidth > 0 && event.CaptureHeight > 0 {
		return float64(event.CaptureWidth), float64(event.CaptureHeight)
	}
	if rec.CaptureArea != nil && rec.CaptureArea.FullBounds.Width > 0 && rec.CaptureArea.FullBounds.Height > 0 {
		scale := rec.CaptureArea.ScaleFactor
		if scale <= 0 {
			scale = 1
		}
		return float64(rec.CaptureArea.FullBounds.Width) * scale, float64(rec.CaptureArea.FullBounds.Height) * scale
	}
	if rec.Width > 0 && rec.Height > 0 {
		return float64(rec.Width), float64(rec.Height)
	}
	if fallbackW <= 0 {
		fallbackW = 1920
	}
	if fallbackH <= 0 {
		fallbackH = 1080
	}
	return float64(fallbackW), float64(fallbackH)
}
