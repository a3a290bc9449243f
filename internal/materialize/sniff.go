package materialize

import (
	"bytes"
	"path/filepath"
	"strings"
)

// sniffLen is the number of leading bytes inspected for binary markers.
const sniffLen = 512

// defaultBinaryExtensions returns the file extensions always copied verbatim.
func defaultBinaryExtensions() []string {
	return []string{
		// Images
		".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico",
		// Archives
		".zip", ".tar", ".gz", ".bz2", ".xz", ".rar", ".7z",
		// Executables
		".exe", ".dll", ".so", ".dylib", ".bin",
		// Media
		".mp3", ".mp4", ".avi", ".mov", ".wav",
		// Documents
		".pdf", ".doc", ".docx", ".xls", ".xlsx",
		// Fonts
		".ttf", ".otf", ".woff", ".woff2",
	}
}

// IsBinary reports whether a source file should be copied verbatim instead of
// template-rendered. The check is deterministic for a given file: the
// extension list is consulted first, then the content is scanned for a null
// byte within the first 512 bytes.
func IsBinary(path string, content []byte) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, binaryExt := range defaultBinaryExtensions() {
		if ext == binaryExt {
			return true
		}
	}

	return isBinaryContent(content)
}

// isBinaryContent checks content for binary markers (null bytes in the
// sniffed prefix).
func isBinaryContent(content []byte) bool {
	checkLen := len(content)
	if checkLen > sniffLen {
		checkLen = sniffLen
	}

	return bytes.IndexByte(content[:checkLen], 0) != -1
}
