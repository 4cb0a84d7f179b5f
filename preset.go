package rings

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed presets/*.yaml
var presetFS embed.FS

// PresetNames returns the names of the built-in configurations, sorted.
func PresetNames() []string {
	entries, err := fs.ReadDir(presetFS, "presets")
	if err != nil {
		panic(err)
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Preset returns the built-in configuration called name. Presets are
// overlaid onto [DefaultConfig].
func Preset(name string) (Config, error) {
	b, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	cfg, err := LoadConfig(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return cfg, nil
}
