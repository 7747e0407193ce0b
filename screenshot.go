package nodecanvas

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled screenshot to be captured at the end of the
// current frame's Draw call. The resulting PNG is written to ScreenshotDir
// with a timestamped filename.
func (e *Editor) Screenshot(label string) {
	e.screenshotQueue = append(e.screenshotQueue, label)
}

// flushScreenshots captures the rendered frame for every queued label and
// writes each as a PNG file. Called at the end of Editor.Draw.
func (e *Editor) flushScreenshots(screen *ebiten.Image) {
	if len(e.screenshotQueue) == 0 {
		return
	}
	defer func() { e.screenshotQueue = e.screenshotQueue[:0] }()

	log := e.canvas.process.log
	if err := os.MkdirAll(e.ScreenshotDir, 0o755); err != nil {
		log.Error().Err(err).Str("dir", e.ScreenshotDir).Msg("screenshot mkdir")
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for i, label := range e.screenshotQueue {
		path := filepath.Join(e.ScreenshotDir, shotFileName(stamp, i, label))
		if err := saveFrame(path, img); err != nil {
			log.Error().Err(err).Str("label", label).Msg("screenshot")
			continue
		}
		log.Info().Str("path", path).Int("nodes", len(e.canvas.nodes)).Msg("screenshot written")
	}
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// saveFrame writes a captured canvas frame as PNG, reporting the close error
// when encoding succeeded.
func saveFrame(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close screenshot: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode screenshot %s: %w", filepath.Base(path), err)
	}
	return nil
}

// shotFileName names the seq'th shot of a frame. Runs of characters outside
// [A-Za-z0-9.-] collapse to one underscore; an empty label becomes "canvas".
func shotFileName(stamp string, seq int, label string) string {
	parts := strings.FieldsFunc(label, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '.')
	})
	name := strings.Join(parts, "_")
	if name == "" {
		name = "canvas"
	}
	return fmt.Sprintf("%s_%02d_%s.png", stamp, seq, name)
}
