package utils

import "strings"

// Do not depend on the OS for mimetypes.
// Windows registry entries change the result of mime.TypeByExtension.

// MimeTypeByExtension returns the image mimetype for the given file name
// extension, which must including the leading dot.
// If the extension is not known, the call returns with ok=false and,
// additionally, a default "application/octet-stream" mime type is returned.
func MimeTypeByExtension(ext string) (mimeType string, ok bool) {
	mimeType, ok = mimeTypes[strings.ToLower(ext)]
	if ok {
		return
	}

	return defaultMimeType, false
}

var (
	defaultMimeType = "application/octet-stream"

	mimeTypes = map[string]string{
		".bmp":  "image/bmp",
		".gif":  "image/gif",
		".icns": "image/icns",
		".ico":  "image/x-icon",
		".jpeg": "image/jpeg",
		".jpg":  "image/jpeg",
		".png":  "image/png",
		".svg":  "image/svg+xml",
		".tif":  "image/tiff",
		".tiff": "image/tiff",
		".webp": "image/webp",
	}
)
