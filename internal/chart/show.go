package chart

import (
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// Show opens each saved figure with the platform image viewer. Best
// effort: failures are logged and ignored, the figures are already on
// disk.
func Show(paths ...string) {
	for _, path := range paths {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", path)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
		default:
			cmd = exec.Command("xdg-open", path)
		}
		if err := cmd.Start(); err != nil {
			zap.L().Warn("chart: open figure viewer",
				zap.String("path", path), zap.Error(err))
		}
	}
}
