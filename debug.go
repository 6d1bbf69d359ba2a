package bgsp

import (
	"fmt"
	"os"
	"time"
)

// debugMode gates the stderr diagnostics of every bank, plane and pool.
var debugMode bool

// SetDebugMode enables or disables debug mode. When enabled, texture cache
// misses, per-call rendering stats and clamped construction parameters are
// logged to stderr.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return debugMode
}

func debugf(format string, args ...any) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[bgsp] "+format+"\n", args...)
}

// debugTextureMiss logs a cache miss and whether it produced a texture.
func debugTextureMiss(key textureKey, ok bool, cached int) {
	if !debugMode {
		return
	}
	result := "rendered"
	if !ok {
		result = "absent"
	}
	debugf("texture miss code=%d palette=%d sym=%v: %s (cached: %d)",
		key.code, key.palette, key.sym, result, cached)
}

// debugPlaneStats logs how many cells one BgPlane.Rendering call redrew.
func debugPlaneStats(redrawn, total int, elapsed time.Duration) {
	if !debugMode {
		return
	}
	debugf("plane: redrawn %d/%d cells in %v", redrawn, total, elapsed)
}

// debugSpriteStats logs culling and draw counts of one SpritePool.Rendering call.
func debugSpriteStats(candidates, drawn, capacity int, elapsed time.Duration) {
	if !debugMode {
		return
	}
	debugf("sprites: %d of %d slots on screen, %d drawn in %v", candidates, capacity, drawn, elapsed)
}

// debugClamped warns when a construction parameter had to be clamped.
func debugClamped(what string, requested, used int) {
	if requested == used {
		return
	}
	debugf("warning: %s %d clamped to %d", what, requested, used)
}
