package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// recordingRunner records external invocations instead of executing them.
type recordingRunner struct {
	calls  [][]string
	failOn string
}

func (r *recordingRunner) Run(ctx context.Context, dir string, argv []string) error {
	r.calls = append(r.calls, argv)
	if r.failOn != "" && argv[0] == r.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

// writeFile writes a file under root, creating parent directories.
func writeFile(t *testing.T, root, rel string, content []byte) {
	t.Helper()

	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// buildTemplateRoot lays out a full template root: common and stack-specific
// configuration documents plus template sources, including a binary asset.
func buildTemplateRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()

	writeFile(t, root, "config/common.json", []byte(`{
		"installFiles": {
			"common/readme.md": "README.md",
			"common/gitignore": ".gitignore",
			"common/favicon.png": "public/favicon.png"
		},
		"dependencies": [],
		"devDependencies": ["serve"]
	}`))

	writeFile(t, root, "config/react.json", []byte(`{
		"installFiles": {
			"react/package.json": "package.json",
			"react/index.js": "src/index.js",
			"react/readme.md": "README.md"
		},
		"dependencies": ["react", "react-dom"],
		"devDependencies": []
	}`))

	writeFile(t, root, "common/readme.md", []byte("# {{title}}\n\nGenerated project.\n"))
	writeFile(t, root, "common/gitignore", []byte("node_modules\ndist\n"))
	writeFile(t, root, "common/favicon.png", faviconBytes())
	writeFile(t, root, "react/package.json", []byte("{\n  \"name\": \"{{name}}\",\n  \"private\": true\n}\n"))
	writeFile(t, root, "react/index.js", []byte("// {{title}} entry point\n"))
	writeFile(t, root, "react/readme.md", []byte("# {{title}}\n\nA {{stackLabel}} project by {{packageManager}}.\n"))

	return root
}

// faviconBytes returns a small byte blob with a PNG signature and embedded
// null bytes so binary sniffing kicks in.
func faviconBytes() []byte {
	return []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
		0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
		0x7b, 0x7b, 0x74, 0x69, 0x74, 0x6c, 0x65, 0x7d, 0x7d, // "{{title}}" bytes, must survive verbatim
		0x00, 0x00, 0x00, 0x00,
	}
}
