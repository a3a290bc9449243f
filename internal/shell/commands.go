package shell

// Package manager identifiers.
const (
	ManagerNpm  = "npm"
	ManagerYarn = "yarn"
)

// Deploy tool identifiers.
const (
	DeployNow   = "now"
	DeploySurge = "surge"
)

// InstallArgs builds the argv for installing the declared packages with the
// chosen package manager. With no packages it installs whatever the
// materialized manifest declares.
func InstallArgs(manager string, packages []string, dev bool) []string {
	if manager == ManagerYarn {
		if len(packages) == 0 {
			return []string{"yarn", "install"}
		}
		argv := []string{"yarn", "add"}
		if dev {
			argv = append(argv, "--dev")
		}
		return append(argv, packages...)
	}

	if len(packages) == 0 {
		return []string{"npm", "install"}
	}
	argv := []string{"npm", "install"}
	if dev {
		argv = append(argv, "--save-dev")
	} else {
		argv = append(argv, "--save")
	}
	return append(argv, packages...)
}

// GitInitArgs builds the argv sequence that initializes a repository and
// records the initial commit.
func GitInitArgs(title string) [][]string {
	return [][]string{
		{"git", "init"},
		{"git", "add", "-A"},
		{"git", "commit", "-m", "Initial commit: " + title},
	}
}

// DeployArgs builds the argv that registers the deployment hook for the
// chosen tool. Surge needs an explicit target host; now derives one itself.
func DeployArgs(tool, dir, host string) []string {
	if tool == DeploySurge {
		return []string{"surge", dir, host}
	}
	return []string{"now", dir}
}
