package camera

// halfWindow implements §4.F-2: the viewport half-extent at the given
// scale, adjusted so the wider axis reserves letterbox space the camera
// must not pan into unless overscan allows it.
func halfWindow(scale float64, outputW, outputH, sourceW, sourceH float64) (halfX, halfY float64) {
	if scale <= 0 {
		scale = 1
	}
	halfX = 0.5 / scale
	halfY = 0.5 / scale

	if outputW <= 0 || outputH <= 0 || sourceW <= 0 || sourceH <= 0 {
		return halfX, halfY
	}

	outputAspect := outputW / outputH
	sourceAspect := sourceW / sourceH

	switch {
	case outputAspect > sourceAspect:
		halfY *= outputAspect / sourceAspect
	case outputAspect < sourceAspect:
		halfX *= sourceAspect / outputAspect
	}
	return halfX, halfY
}
