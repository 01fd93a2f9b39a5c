package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	cfg "github.com/automoto/platformer/config"
	"gopkg.in/yaml.v3"
)

// ManifestPath is the optional frame-count override inside the asset filesystem.
var ManifestPath = path.Join(ImageDir, "manifest.yaml")

// manifestFile is the on-disk form:
//
//	types:
//	  player2:
//	    idle: 5
//	    walk: 6
type manifestFile struct {
	Types map[string]map[string]int `yaml:"types"`
}

// LoadManifest reads ManifestPath from fsys. When the file does not exist
// the fallback manifest is returned unchanged.
func LoadManifest(fsys fs.FS, fallback cfg.AnimationManifest) (cfg.AnimationManifest, error) {
	data, err := fs.ReadFile(fsys, ManifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", ManifestPath, err)
	}

	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ManifestPath, err)
	}
	return m, nil
}

// ParseManifest decodes a YAML manifest. Unknown action names and
// non-positive frame counts are rejected.
func ParseManifest(data []byte) (cfg.AnimationManifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(file.Types) == 0 {
		return nil, errors.New("manifest declares no character types")
	}

	m := make(cfg.AnimationManifest, len(file.Types))
	for charType, actions := range file.Types {
		defs := make(map[cfg.StateID]cfg.AnimationDef, len(actions))
		for name, count := range actions {
			state, ok := cfg.ParseState(name)
			if !ok {
				return nil, fmt.Errorf("%s: unknown action %q", charType, name)
			}
			if count < 1 {
				return nil, fmt.Errorf("%s/%s: frame count must be at least 1, got %d", charType, name, count)
			}
			defs[state] = cfg.AnimationDef{Frames: count}
		}
		m[charType] = defs
	}
	return m, nil
}
