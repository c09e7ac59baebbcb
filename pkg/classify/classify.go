// Package classify infers an asset category from a file extension.
//
// Only Footage, Audio and Images are ever inferred here: compositions and
// solids carry their own item-type metadata in the host application and are
// classified by the host bridge, not by extension.
package classify

import (
	"strings"

	"github.com/tidybin/tidybin/pkg/types"
)

// Context carries per-asset information that changes classification.
type Context struct {
	// IsSequence marks the asset as one frame of an image sequence.
	// A sequence of still frames is treated as footage, not as images.
	IsSequence bool
}

// Fixed reference tables. Lookup keys are lower case without a leading dot.
var (
	videoExtensions = newExtensionSet(
		"mp4", "mov", "avi", "mxf", "mkv", "webm", "m4v",
		"mpg", "mpeg", "wmv", "flv", "r3d", "braw",
	)

	audioExtensions = newExtensionSet(
		"mp3", "wav", "aac", "aif", "aiff", "m4a", "flac", "ogg", "wma",
	)

	imageExtensions = newExtensionSet(
		"jpg", "jpeg", "png", "psd", "psb", "tif", "tiff", "exr", "dpx",
		"tga", "bmp", "gif", "ai", "eps", "svg", "webp", "hdr", "dng",
	)
)

func newExtensionSet(extensions ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[ext] = struct{}{}
	}
	return set
}

// Classify maps a file extension to a category type. The extension is
// normalized to lower case and a leading dot is stripped before lookup.
// Video and audio extensions are unaffected by the sequence flag; image
// extensions map to Footage instead of Images when ctx.IsSequence is set.
// An unknown or empty extension yields no category, which is a normal
// outcome rather than an error.
func Classify(extension string, ctx Context) (types.CategoryType, bool) {
	ext := strings.ToLower(strings.TrimPrefix(extension, "."))
	if ext == "" {
		return "", false
	}

	if _, ok := videoExtensions[ext]; ok {
		return types.CategoryFootage, true
	}
	if _, ok := audioExtensions[ext]; ok {
		return types.CategoryAudio, true
	}
	if _, ok := imageExtensions[ext]; ok {
		if ctx.IsSequence {
			return types.CategoryFootage, true
		}
		return types.CategoryImages, true
	}

	return "", false
}

// ClassifyFilename derives the extension from the substring after the last
// dot in the filename and delegates to Classify. A filename without a dot
// yields an empty extension and therefore no category.
func ClassifyFilename(filename string, ctx Context) (types.CategoryType, bool) {
	return Classify(ExtensionOf(filename), ctx)
}

// ExtensionOf returns the filename's extension without the dot, lower-cased.
// Filenames with no dot yield an empty string.
func ExtensionOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
