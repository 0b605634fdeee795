package profile

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed configs/*.yaml
var configFS embed.FS

// builtinProfiles maps lowercased locale names to their profiles
var builtinProfiles = map[string]*Profile{}

func init() {
	entries, err := configFS.ReadDir("configs")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := configFS.ReadFile(filepath.Join("configs", entry.Name()))
		if err != nil {
			continue
		}

		var p Profile
		if err := yaml.Unmarshal(data, &p); err != nil {
			continue
		}
		if err := p.Compile(); err != nil {
			continue
		}

		builtinProfiles[strings.ToLower(p.Locale)] = &p
	}
}

// Load loads a locale profile by name
func Load(locale string) (*Profile, error) {
	if p, ok := builtinProfiles[strings.ToLower(locale)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown locale: %s (available: %s)",
		locale, strings.Join(Available(), ", "))
}

// Available returns the names of all built-in locale profiles
func Available() []string {
	names := make([]string, 0, len(builtinProfiles))
	for _, p := range builtinProfiles {
		names = append(names, p.Locale)
	}
	sort.Strings(names)
	return names
}

// LoadFromFile loads a locale profile from a YAML file, letting users
// override the built-in pattern tables and weights.
func LoadFromFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Compile(); err != nil {
		return nil, err
	}

	return &p, nil
}
