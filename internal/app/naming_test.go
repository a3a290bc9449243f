package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple", input: "myapp", want: "myapp"},
		{name: "lowercases", input: "MyApp", want: "myapp"},
		{name: "spaces to hyphens", input: "My Cool App", want: "my-cool-app"},
		{name: "collapses whitespace runs", input: "My   App", want: "my-app"},
		{name: "trims surrounding space", input: "  My App  ", want: "my-app"},
		{name: "drops punctuation", input: "Hello, World!", want: "hello-world"},
		{name: "keeps dots and underscores", input: "app_v2.0", want: "app_v2.0"},
		{name: "trims leading hyphen", input: "-app-", want: "app"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildProps(t *testing.T) {
	opts := CreateOptions{
		Title:          "My App",
		Stack:          "react",
		PackageManager: "yarn",
		DeployTool:     "surge",
	}

	props := BuildProps(opts, "React", "casey-my-app.surge.sh")

	want := map[string]string{
		"title":          "My App",
		"name":           "my-app",
		"stack":          "react",
		"stackLabel":     "React",
		"packageManager": "yarn",
		"deployTool":     "surge",
		"deployHost":     "casey-my-app.surge.sh",
	}
	for key, value := range want {
		if props[key] != value {
			t.Errorf("Expected props[%q] = %q, got %q", key, value, props[key])
		}
	}

	if props["year"] == "" {
		t.Error("Expected year to be set")
	}
}

func TestInspectDest(t *testing.T) {
	t.Run("absent directory", func(t *testing.T) {
		state, err := InspectDest(filepath.Join(t.TempDir(), "nothere"))
		if err != nil {
			t.Fatalf("InspectDest failed: %v", err)
		}
		if state.Exists {
			t.Error("Expected Exists=false for absent directory")
		}
		if !state.Empty {
			t.Error("Absent directory counts as empty")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		state, err := InspectDest(t.TempDir())
		if err != nil {
			t.Fatalf("InspectDest failed: %v", err)
		}
		if !state.Exists || !state.Empty {
			t.Errorf("Expected exists and empty, got %+v", state)
		}
	})

	t.Run("non-empty directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to seed directory: %v", err)
		}

		state, err := InspectDest(dir)
		if err != nil {
			t.Fatalf("InspectDest failed: %v", err)
		}
		if !state.Exists || state.Empty {
			t.Errorf("Expected exists and non-empty, got %+v", state)
		}
	})
}
