package dragdrop

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const defaultGestureSensitivity = 10.0 // layout pixels

// Options tunes a Controller. The zero value is usable: a non-positive
// GestureSensitivity means the default.
type Options struct {
	// ImmediateDragStart fires OnDragStart at pointer-down instead of on the
	// first move away from the origin.
	ImmediateDragStart bool `toml:"immediate_drag_start"`
	// GestureSensitivity is the displacement a two-finger gesture must reach
	// before moves are delivered.
	GestureSensitivity float64 `toml:"gesture_sensitivity"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{GestureSensitivity: defaultGestureSensitivity}
}

func (o Options) sensitivity() float64 {
	if o.GestureSensitivity > 0 {
		return o.GestureSensitivity
	}
	return defaultGestureSensitivity
}

// LoadOptions reads Options from a TOML file. Keys missing from the file keep
// their defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, &opts); err != nil {
		return Options{}, fmt.Errorf("load options %s: %w", path, err)
	}
	return opts, nil
}

// ParseOptions decodes Options from TOML text.
func ParseOptions(data string) (Options, error) {
	opts := DefaultOptions()
	if _, err := toml.Decode(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}
