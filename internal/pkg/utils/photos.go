package utils

import (
	"path/filepath"
	"strings"
)

var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".heic": true,
	".tif":  true,
	".tiff": true,
}

// IsPhotoFile reports whether name looks like a deliverable image by its
// extension. Hidden files never are.
func IsPhotoFile(name string) bool {
	base := filepath.Base(name)
	if base == "" || strings.HasPrefix(base, ".") {
		return false
	}
	return photoExtensions[strings.ToLower(filepath.Ext(base))]
}
