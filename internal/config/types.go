package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FilePair is one declared install-file entry: a template source path and the
// destination path it materializes to. Both paths are relative.
type FilePair struct {
	Source string
	Dest   string
}

// InstallFiles is an ordered list of install-file pairs.
//
// The JSON wire form is an object mapping source path to destination path.
// Declaration order in the document is significant (later entries win on
// destination collisions), so decoding goes through the json.Decoder token
// stream instead of a map.
type InstallFiles []FilePair

// UnmarshalJSON decodes an installFiles object preserving key order.
func (f *InstallFiles) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("installFiles must be a JSON object")
	}

	var pairs InstallFiles
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		src, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("installFiles key must be a string")
		}

		var dest string
		if err := dec.Decode(&dest); err != nil {
			return fmt.Errorf("installFiles[%q]: destination must be a string", src)
		}

		pairs = append(pairs, FilePair{Source: src, Dest: dest})
	}

	// Closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = pairs
	return nil
}

// MarshalJSON encodes the pairs back to an object in declaration order.
func (f InstallFiles) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, pair := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(pair.Source)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(pair.Dest)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// StackConfig is one stack configuration document: the files it installs and
// the packages it depends on. The common configuration shares this shape.
type StackConfig struct {
	// InstallFiles maps template source paths to destination paths, in
	// declaration order.
	InstallFiles InstallFiles `json:"installFiles"`
	// Dependencies are runtime package names to install.
	Dependencies []string `json:"dependencies"`
	// DevDependencies are development-only package names to install.
	DevDependencies []string `json:"devDependencies"`
}

// Resolved is the merge product of the common and stack-specific
// configurations: common entries first, then stack entries, declaration order
// preserved within each document.
type Resolved struct {
	// Stack is the identifier the configuration was resolved for.
	Stack string
	// Files is the full ordered install-file list.
	Files []FilePair
	// Dependencies is the combined runtime dependency list.
	Dependencies []string
	// DevDependencies is the combined development dependency list.
	DevDependencies []string
}

// merge combines the common and stack configurations, common first.
func merge(stackID string, common, stack *StackConfig) *Resolved {
	r := &Resolved{Stack: stackID}
	r.Files = append(r.Files, common.InstallFiles...)
	r.Files = append(r.Files, stack.InstallFiles...)
	r.Dependencies = append(r.Dependencies, common.Dependencies...)
	r.Dependencies = append(r.Dependencies, stack.Dependencies...)
	r.DevDependencies = append(r.DevDependencies, common.DevDependencies...)
	r.DevDependencies = append(r.DevDependencies, stack.DevDependencies...)
	return r
}
