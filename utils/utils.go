package utils

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	rndm "math/rand"
)

// --- Random String and ID Generators ---

var base36Runes = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// RandomBase36 creates an uppercase base36 string of length n.
func RandomBase36(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = base36Runes[rndm.Intn(len(base36Runes))]
	}
	return string(b)
}

// Base36Timestamp returns the current millisecond timestamp in uppercase base36.
func Base36Timestamp(now time.Time) string {
	return strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}

// --- Slug Helper ---

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func Slugify(name string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

func ValidateImageFileType(w http.ResponseWriter, header *multipart.FileHeader) bool {
	mimeType := header.Header.Get("Content-Type")
	if !SupportedImageTypes[mimeType] {
		http.Error(w, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF.", http.StatusBadRequest)
		return false
	}
	return true
}

// SanitizeFilename strips anything that could escape the upload directory.
func SanitizeFilename(name string) string {
	re := regexp.MustCompile(`[^\w.\-]`)
	clean := re.ReplaceAllString(filepath.Base(name), "_")
	if clean == "" {
		return "file"
	}
	return clean
}
