package nodecanvas

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestShotFileName(t *testing.T) {
	tests := []struct {
		label string
		seq   int
		want  string
	}{
		{"hello", 0, "20260101_120000_00_hello.png"},
		{"after-drag", 1, "20260101_120000_01_after-drag.png"},
		{"frame.01", 2, "20260101_120000_02_frame.01.png"},
		{"has spaces", 0, "20260101_120000_00_has_spaces.png"},
		{"path/to/thing", 0, "20260101_120000_00_path_to_thing.png"},
		{"special!@#$%", 0, "20260101_120000_00_special.png"},
		{"  marquee  done ", 3, "20260101_120000_03_marquee_done.png"},
		{"", 0, "20260101_120000_00_canvas.png"},
		{"///", 12, "20260101_120000_12_canvas.png"},
	}
	for _, tt := range tests {
		if got := shotFileName("20260101_120000", tt.seq, tt.label); got != tt.want {
			t.Errorf("shotFileName(%q, %d) = %q, want %q", tt.label, tt.seq, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	e := NewEditor(DefaultConfig())
	e.Screenshot("a")
	e.Screenshot("b")
	e.Screenshot("c")
	if len(e.screenshotQueue) != 3 {
		t.Fatalf("queue len = %d, want 3", len(e.screenshotQueue))
	}
	if e.screenshotQueue[0] != "a" || e.screenshotQueue[1] != "b" || e.screenshotQueue[2] != "c" {
		t.Errorf("queue = %v, want [a b c]", e.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha premultiplied
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{
		255, 0, 0, 255,
		127, 63, 0, 128,
		0, 0, 0, 0,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestSaveFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Pix[0], img.Pix[3] = 200, 255
	if err := saveFrame(path, img); err != nil {
		t.Fatalf("saveFrame: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 4x2", b)
	}
}

func TestSaveFrame_BadPath(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if err := saveFrame(filepath.Join(t.TempDir(), "missing", "shot.png"), img); err == nil {
		t.Error("expected error for missing directory")
	}
}
