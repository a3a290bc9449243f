package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

const (
	// configDirName is the directory under the template root holding the
	// configuration documents.
	configDirName = "config"
	// commonConfigName is the stack-independent configuration document applied
	// ahead of every stack-specific one.
	commonConfigName = "common"
	// templatesEnvVar overrides the default template root location.
	templatesEnvVar = "SPROUT_TEMPLATES"
	// defaultTemplateRoot is used when neither the flag nor the environment
	// variable is set.
	defaultTemplateRoot = "~/.sprout/templates"
)

// LoadStackConfig reads and validates a single stack configuration document.
func LoadStackConfig(path string) (*StackConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	var cfg StackConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid JSON syntax", err)
	}

	if err := ValidateStackConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ConfigPath returns the path of a stack configuration document under the
// template root. The common document uses the reserved name "common".
func ConfigPath(root, name string) string {
	return filepath.Join(root, configDirName, name+".json")
}

// Resolve loads the common and stack-specific configuration documents for the
// given stack identifier and merges them, common entries first.
//
// An unknown identifier is a user-facing error enumerating the known stacks;
// no file is read in that case.
func Resolve(root, stackID string, reg *Registry) (*Resolved, error) {
	if !reg.Known(stackID) {
		return nil, NewConfigError(UnknownStack, "",
			fmt.Sprintf("unknown stack %q (available stacks: %s)", stackID, strings.Join(reg.IDs(), ", ")))
	}

	common, err := LoadStackConfig(ConfigPath(root, commonConfigName))
	if err != nil {
		return nil, err
	}

	stack, err := LoadStackConfig(ConfigPath(root, stackID))
	if err != nil {
		return nil, err
	}

	return merge(stackID, common, stack), nil
}

// TemplateRoot resolves the template root directory.
// Priority: explicit flag value > SPROUT_TEMPLATES env > ~/.sprout/templates.
// A leading ~ is expanded to the home directory.
func TemplateRoot(flagValue string) (string, error) {
	root := flagValue
	if root == "" {
		root = os.Getenv(templatesEnvVar)
	}
	if root == "" {
		root = defaultTemplateRoot
	}

	expanded, err := homedir.Expand(root)
	if err != nil {
		return "", fmt.Errorf("failed to expand template root %q: %w", root, err)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve template root %q: %w", expanded, err)
	}

	return abs, nil
}
