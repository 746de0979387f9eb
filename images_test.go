package docpress

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProcessImageDownscalesWideImages(t *testing.T) {
	data := encodeTestPNG(t, 2000, 10)

	out, err := processImage(data)
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png preserved", format)
	}
	if got := img.Bounds().Dx(); got != maxImageWidth {
		t.Errorf("width = %d, want %d", got, maxImageWidth)
	}
	// 2000x10 scaled to 1280 wide keeps the aspect ratio.
	if got := img.Bounds().Dy(); got != 6 {
		t.Errorf("height = %d, want 6", got)
	}
}

func TestProcessImagePassesThroughSmallImages(t *testing.T) {
	data := encodeTestPNG(t, 640, 480)

	out, err := processImage(data)
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("small images should pass through unchanged")
	}
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	if _, err := processImage([]byte("not an image")); err == nil {
		t.Fatal("processImage should fail on undecodable input")
	}
}
