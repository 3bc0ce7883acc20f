package platform

import (
	"encoding/base64"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// MaxIconBytes bounds the size of an image inlined as a shortcut icon; a
// larger file keeps the type's builtin fallback icon instead.
const MaxIconBytes = 256 * 1024

var iconMIMETypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".ico":  "image/x-icon",
	".svg":  "image/svg+xml",
	".webp": "image/webp",
}

// FileIcon returns a data-URL icon snapshot for a path, best effort. Image
// files small enough are inlined; everything else yields "" and the UI
// falls back to the shortcut type's builtin icon. Failures never block
// shortcut creation.
func FileIcon(path string) string {
	mime, ok := iconMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return ""
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() > MaxIconBytes {
		return ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("icon snapshot for %s: %v", path, err)
		return ""
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
