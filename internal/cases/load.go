package cases

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions LoadFile understands.
var Extensions = []string{".yaml", ".yml", ".toml", ".cue"}

// LoadFile reads a case file, choosing the decoder by extension.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var raw rawFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, &raw)
	case ".toml":
		err = decodeTOML(data, &raw)
	case ".cue":
		err = decodeCUE(path, data, &raw)
	default:
		return nil, fmt.Errorf("%s: unsupported case file extension %q (want one of %v)", path, ext, Extensions)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if len(raw.Cases) == 0 {
		return nil, fmt.Errorf("%s: no cases defined", path)
	}

	file := &File{Path: path, Cases: make([]Case, 0, len(raw.Cases))}
	seen := make(map[string]bool, len(raw.Cases))
	for i, rc := range raw.Cases {
		c, err := rc.toCase()
		if err != nil {
			return nil, fmt.Errorf("%s: cases[%d]: %w", path, i, err)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%s: cases[%d]: duplicate case name %q", path, i, c.Name)
		}
		seen[c.Name] = true
		file.Cases = append(file.Cases, c)
	}
	return file, nil
}

// LoadFiles loads every path in order, stopping at the first error.
func LoadFiles(paths []string) ([]*File, error) {
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// decodeYAML rejects unknown fields so typos like "expected:" are caught.
func decodeYAML(data []byte, raw *rawFile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func decodeTOML(data []byte, raw *rawFile) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}
	return nil
}

func decodeCUE(path string, data []byte, raw *rawFile) error {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to compile CUE: %w", err)
	}
	if !value.LookupPath(cue.ParsePath("cases")).Exists() {
		return fmt.Errorf("missing top-level cases field")
	}
	if err := value.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode CUE: %w", err)
	}
	return nil
}
