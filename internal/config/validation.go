package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidateStackConfig checks a decoded configuration document for structural
// problems. The path is only used for error reporting.
func ValidateStackConfig(path string, cfg *StackConfig) error {
	for i, pair := range cfg.InstallFiles {
		if pair.Source == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, path,
				fmt.Sprintf("installFiles[%d]", i), "source path cannot be empty")
		}
		if pair.Dest == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, path,
				fmt.Sprintf("installFiles[%q]", pair.Source), "destination path cannot be empty")
		}
		if err := validateRelativePath(pair.Source); err != nil {
			return NewConfigErrorWithField(ConfigValidationFailed, path,
				fmt.Sprintf("installFiles[%q]", pair.Source), err.Error())
		}
		if err := validateRelativePath(pair.Dest); err != nil {
			return NewConfigErrorWithField(ConfigValidationFailed, path,
				fmt.Sprintf("installFiles[%q]", pair.Source), "destination: "+err.Error())
		}
	}

	for i, dep := range cfg.Dependencies {
		if strings.TrimSpace(dep) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, path,
				fmt.Sprintf("dependencies[%d]", i), "package name cannot be empty")
		}
	}
	for i, dep := range cfg.DevDependencies {
		if strings.TrimSpace(dep) == "" {
			return NewConfigErrorWithField(ConfigValidationFailed, path,
				fmt.Sprintf("devDependencies[%d]", i), "package name cannot be empty")
		}
	}

	return nil
}

// validateRelativePath rejects absolute paths and paths escaping their root.
func validateRelativePath(p string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("path must be relative: %s", p)
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("path escapes the root: %s", p)
	}
	return nil
}
