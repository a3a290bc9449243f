package shell

import (
	"reflect"
	"testing"
)

func TestInstallArgs(t *testing.T) {
	tests := []struct {
		name     string
		manager  string
		packages []string
		dev      bool
		want     []string
	}{
		{
			name:    "npm base install",
			manager: ManagerNpm,
			want:    []string{"npm", "install"},
		},
		{
			name:     "npm runtime packages",
			manager:  ManagerNpm,
			packages: []string{"react", "react-dom"},
			want:     []string{"npm", "install", "--save", "react", "react-dom"},
		},
		{
			name:     "npm dev packages",
			manager:  ManagerNpm,
			packages: []string{"eslint"},
			dev:      true,
			want:     []string{"npm", "install", "--save-dev", "eslint"},
		},
		{
			name:    "yarn base install",
			manager: ManagerYarn,
			want:    []string{"yarn", "install"},
		},
		{
			name:     "yarn runtime packages",
			manager:  ManagerYarn,
			packages: []string{"preact"},
			want:     []string{"yarn", "add", "preact"},
		},
		{
			name:     "yarn dev packages",
			manager:  ManagerYarn,
			packages: []string{"eslint", "prettier"},
			dev:      true,
			want:     []string{"yarn", "add", "--dev", "eslint", "prettier"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InstallArgs(tt.manager, tt.packages, tt.dev)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGitInitArgs(t *testing.T) {
	steps := GitInitArgs("My App")

	if len(steps) != 3 {
		t.Fatalf("Expected 3 git steps, got %d", len(steps))
	}

	if !reflect.DeepEqual(steps[0], []string{"git", "init"}) {
		t.Errorf("Unexpected first step: %v", steps[0])
	}
	if !reflect.DeepEqual(steps[1], []string{"git", "add", "-A"}) {
		t.Errorf("Unexpected second step: %v", steps[1])
	}
	if steps[2][len(steps[2])-1] != "Initial commit: My App" {
		t.Errorf("Commit message should carry the title, got %v", steps[2])
	}
}

func TestDeployArgs(t *testing.T) {
	if got := DeployArgs(DeployNow, ".", ""); !reflect.DeepEqual(got, []string{"now", "."}) {
		t.Errorf("Unexpected now args: %v", got)
	}

	want := []string{"surge", ".", "casey-app.surge.sh"}
	if got := DeployArgs(DeploySurge, ".", "casey-app.surge.sh"); !reflect.DeepEqual(got, want) {
		t.Errorf("Unexpected surge args: %v", got)
	}
}

func TestQuote(t *testing.T) {
	got := Quote([]string{"git", "commit", "-m", "two words"})
	want := `git commit -m 'two words'`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
