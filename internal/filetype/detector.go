package filetype

import (
	"path/filepath"
	"strings"
)

// Category is the coarse file classification used to pick a processing
// pipeline. CategoryUnknown is the zero value so an unclassified file never
// accidentally reaches a pipeline.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryImage
	CategoryPDF
)

func (c Category) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

var imageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"gif":  {},
}

// Detect classifies a file extension. The leading dot is optional and case
// is ignored.
func Detect(ext string) Category {
	ext = NormalizeExt(ext)

	if ext == "pdf" {
		return CategoryPDF
	}
	if _, ok := imageExtensions[ext]; ok {
		return CategoryImage
	}
	return CategoryUnknown
}

// DetectPath classifies a file by its path's extension.
func DetectPath(path string) Category {
	return Detect(filepath.Ext(path))
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
