package storage

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func pngBytes(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func useTempDir(t *testing.T) {
	t.Helper()
	old := BaseDir
	BaseDir = t.TempDir()
	t.Cleanup(func() { BaseDir = old })
}

func TestUploadStoresUnderFolderWithCollisionResistantName(t *testing.T) {
	useTempDir(t)

	url, err := Upload(pngBytes(t, 10, 10), "toy.png", FolderProducts)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(url, PublicPrefix+FolderProducts+"/") {
		t.Fatalf("url not under products folder: %s", url)
	}

	name := filepath.Base(url)
	if !regexp.MustCompile(`^\d+_[0-9a-f]{8}\.jpg$`).MatchString(name) {
		t.Fatalf("unexpected filename shape: %s", name)
	}

	if _, err := os.Stat(filepath.Join(BaseDir, FolderProducts, name)); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}

func TestUploadRejectsUnknownFolderAndType(t *testing.T) {
	useTempDir(t)

	if _, err := Upload(pngBytes(t, 4, 4), "toy.png", "movies"); err == nil {
		t.Fatal("expected unknown folder rejection")
	}
	if _, err := Upload(pngBytes(t, 4, 4), "toy.pdf", FolderProducts); err == nil {
		t.Fatal("expected unsupported type rejection")
	}
}

func TestUploadDownscalesWideImages(t *testing.T) {
	useTempDir(t)

	url, err := Upload(pngBytes(t, 2400, 600), "banner.png", FolderBrands)
	if err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(filepath.Join(BaseDir, FolderBrands, filepath.Base(url)))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1200 {
		t.Fatalf("expected width 1200 after downscale, got %d", cfg.Width)
	}
}

func TestDeleteIsBestEffort(t *testing.T) {
	useTempDir(t)

	url, err := Upload(pngBytes(t, 8, 8), "toy.png", FolderCategories)
	if err != nil {
		t.Fatal(err)
	}

	Delete(url)
	if _, err := os.Stat(filepath.Join(BaseDir, FolderCategories, filepath.Base(url))); !os.IsNotExist(err) {
		t.Fatal("expected file removed")
	}

	// none of these may panic or error out
	Delete("")
	Delete(url) // already gone
	Delete("https://elsewhere.example/images/x.jpg")
	Delete(PublicPrefix + "../../etc/passwd")
}
