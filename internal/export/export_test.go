package export

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 8), B: 64, A: 255})
		}
	}
	return img
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.png")
	if err := Save(path, testImage(), Options{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 40 || decoded.Bounds().Dy() != 30 {
		t.Errorf("decoded bounds %v", decoded.Bounds())
	}
}

func TestSaveWebP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.webp")
	if err := Save(path, testImage(), Options{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty webp file")
	}
}

func TestSaveScaled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.png")
	if err := Save(path, testImage(), Options{Scale: 2}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 80 || decoded.Bounds().Dy() != 60 {
		t.Errorf("scaled bounds %v, want 80x60", decoded.Bounds())
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.bmp")
	if err := Save(path, testImage(), Options{}); err == nil {
		t.Fatal("expected an error for .bmp")
	}
}
