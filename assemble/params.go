package assemble

// clampParams enforces the caller's parameter obligations centrally, so
// the driver's clamp-then-log behaviour is auditable in one place
// instead of scattered across the pipeline. It reports whether either
// value needed clamping, so the caller can log the clamp exactly once
// per call.
func clampParams(kmax int, fractionMajorPath float64) (clampedKmax int, clampedFraction float64, clamped bool) {
	clampedKmax = kmax
	if clampedKmax < 2 {
		clampedKmax = 2
		clamped = true
	}

	clampedFraction = fractionMajorPath
	if clampedFraction < 0 {
		clampedFraction = 0
		clamped = true
	}
	if clampedFraction > 1 {
		clampedFraction = 1
		clamped = true
	}

	return clampedKmax, clampedFraction, clamped
}

// chooseK picks k = max(2, min(kmax, maxPathLen)).
func chooseK(kmax int, maxPathLen int) int {
	k := kmax
	if maxPathLen < k {
		k = maxPathLen
	}
	if k < 2 {
		k = 2
	}

	return k
}
