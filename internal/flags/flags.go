// Package flags reads the feature flags from the config file's "flags"
// section. Flags left out of the file keep their defaults.
package flags

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rishabh06704/getdaysleft/internal/log"
)

const (
	// FlagAutoStart starts the countdown on launch when a date was supplied
	// through --date or --url.
	FlagAutoStart = "auto-start"

	// FlagForceOSC52 copies links with the OSC 52 escape sequence even on a
	// local terminal.
	FlagForceOSC52 = "force-osc52"
)

var defaults = map[string]bool{
	FlagAutoStart:  true,
	FlagForceOSC52: false,
}

// Defaults returns every known flag with its default value.
func Defaults() map[string]bool {
	return maps.Clone(defaults)
}

// Validate rejects flag names this build does not know, which are
// usually typos in the config file.
func Validate(values map[string]bool) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if _, ok := defaults[name]; !ok {
			return fmt.Errorf("unknown feature flag %q (known: %v)", name, slices.Sorted(maps.Keys(defaults)))
		}
	}
	return nil
}

// Registry answers flag lookups. It is read-only once built.
type Registry struct {
	values map[string]bool
}

// New layers values over the defaults.
func New(values map[string]bool) *Registry {
	r := &Registry{values: Defaults()}
	maps.Copy(r.values, values)
	log.Debug(log.CatConfig, "feature flags", "flags", r.values)
	return r
}

// Enabled reports whether name is on. Unknown names and a nil registry
// report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	on, ok := r.values[name]
	if !ok {
		log.Debug(log.CatConfig, "unknown flag looked up", "flag", name)
	}
	return on
}

// All returns a copy of every flag value.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return map[string]bool{}
	}
	return maps.Clone(r.values)
}
