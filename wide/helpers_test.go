package wide

import "testing"

// forceWidth pins the native vector width for one test so chain shapes are
// deterministic regardless of the host CPU. Tests using it must not run in
// parallel.
func forceWidth(t *testing.T, width int) {
	t.Helper()
	oldLevel, oldWidth := currentLevel, currentWidth
	currentLevel, currentWidth = LevelScalar, width
	t.Cleanup(func() {
		currentLevel, currentWidth = oldLevel, oldWidth
	})
}
