package game

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/font"

	"outie/internal/scene"
)

// SaveScreenshot rasterizes f at zoom and writes dir/outie-<unix>.png.
func SaveScreenshot(dir string, f *scene.Frame, zoom int, face font.Face, now time.Time) (string, error) {
	img := scene.NewCanvas(WorldWidth, WorldHeight, zoom)
	scene.Rasterize(img, f, zoom, face)

	path := filepath.Join(dir, fmt.Sprintf("outie-%d.png", now.Unix()))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close screenshot: %w", err)
	}
	return path, nil
}
