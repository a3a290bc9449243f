package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Slugify turns a project title into a package-safe project name: lowercase,
// runs of whitespace collapsed to a single hyphen, anything outside
// [a-z0-9._-] dropped.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r == ' ' || r == '\t':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
			lastHyphen = r == '-'
		}
	}
	return strings.Trim(b.String(), "-")
}

// BuildProps assembles the write-once answers/props record consumed by the
// materializer and the external steps.
func BuildProps(o CreateOptions, stackLabel, deployHost string) map[string]string {
	return map[string]string{
		"title":          o.Title,
		"name":           Slugify(o.Title),
		"stack":          o.Stack,
		"stackLabel":     stackLabel,
		"packageManager": o.PackageManager,
		"deployTool":     o.DeployTool,
		"deployHost":     deployHost,
		"year":           strconv.Itoa(time.Now().Year()),
	}
}

// DestState describes the destination directory before any writes.
type DestState struct {
	// Exists reports whether the destination directory exists.
	Exists bool
	// Empty reports whether the destination is absent or has no entries.
	Empty bool
}

// InspectDest stats the destination directory.
func InspectDest(path string) (DestState, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DestState{Exists: false, Empty: true}, nil
		}
		return DestState{}, err
	}
	return DestState{Exists: true, Empty: len(entries) == 0}, nil
}
