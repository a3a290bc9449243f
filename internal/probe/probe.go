package probe

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mitoteru/sprout/internal/debug"
)

// Capabilities records which optional external tools are present on PATH.
// The record is produced once at startup and read by later steps; nothing
// re-probes the environment mid-flow.
type Capabilities struct {
	// Yarn reports whether the yarn package manager is available.
	Yarn bool
	// Git reports whether the git binary is available.
	Git bool
	// Now reports whether the now deployment CLI is available.
	Now bool
	// Surge reports whether the surge deployment CLI is available.
	Surge bool
}

// Detect probes PATH for the optional external tools.
func Detect() Capabilities {
	caps := Capabilities{
		Yarn:  available("yarn"),
		Git:   available("git"),
		Now:   available("now"),
		Surge: available("surge"),
	}
	debug.Debug("[probe] Capabilities: yarn=%v, git=%v, now=%v, surge=%v",
		caps.Yarn, caps.Git, caps.Now, caps.Surge)
	return caps
}

// available reports whether a binary can be found on PATH.
func available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// DeployHost builds the surge deployment hostname for a project from the
// current user's identity. The USER environment variable is read-only input;
// USERNAME covers Windows.
func DeployHost(project string) string {
	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	if user == "" {
		user = "anonymous"
	}
	user = strings.ToLower(user)
	return fmt.Sprintf("%s-%s.surge.sh", user, project)
}
