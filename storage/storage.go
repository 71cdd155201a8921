package storage

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Logical folders; each upload lands in exactly one of them.
const (
	FolderProducts   = "products"
	FolderCategories = "categories"
	FolderBrands     = "brands"
)

var (
	// BaseDir is where uploads land on disk; PublicPrefix is how they are
	// served. Overridable for tests.
	BaseDir      = filepath.Join("static", "images")
	PublicPrefix = "/static/images/"
)

// Images wider than this are downscaled before storage.
const maxWidth = 1200

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
}

var validFolders = map[string]bool{
	FolderProducts: true, FolderCategories: true, FolderBrands: true,
}

// Upload validates, compresses and stores one image, returning its public
// URL. Names are collision-resistant (millisecond timestamp plus a random
// fragment) since nothing checks uniqueness before the write.
func Upload(r io.Reader, filename, folder string) (string, error) {
	if !validFolders[folder] {
		return "", fmt.Errorf("unknown upload folder %q", folder)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode image %q: %w", filename, err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	name := fmt.Sprintf("%d_%s.jpg", time.Now().UnixMilli(), uuid.New().String()[:8])
	dir := filepath.Join(BaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	out, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}

	return PublicPrefix + folder + "/" + name, nil
}

// Delete removes a stored image by its public URL. Best-effort: failures and
// foreign URLs are logged and ignored.
func Delete(publicURL string) {
	if publicURL == "" {
		return
	}
	rel, ok := strings.CutPrefix(publicURL, PublicPrefix)
	if !ok || strings.Contains(rel, "..") {
		log.Println("storage: skipping delete of foreign url:", publicURL)
		return
	}
	if err := os.Remove(filepath.Join(BaseDir, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		log.Println("storage: delete failed:", err)
	}
}
