package config

import (
	"encoding/json"
	"os"
	"sort"
	"strings"
)

// Box policies applied when a drawn box is committed.
const (
	PolicyPreserve    = "preserve"     // keep corners as drawn, zero area allowed
	PolicyNormalize   = "normalize"    // reorder corners so start is top-left
	PolicyRejectEmpty = "reject_empty" // drop zero-width or zero-height boxes
)

// ClassConfig describes one selectable annotation class.
type ClassConfig struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"` // Tk color name or #rrggbb
}

// Config holds runtime configuration for the labeler.
// Fields may be loaded from a JSON file; a missing file yields DefaultConfig().
type Config struct {
	Debug bool `json:"debug"`

	Classes    []ClassConfig `json:"classes"`
	Extensions []string      `json:"extensions"` // lower case, with leading dot

	BoxPolicy   string `json:"box_policy"`
	WarnUnsaved bool   `json:"warn_unsaved"`

	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`
}

// DefaultClasses returns the two base classes (0 red, 1 blue).
func DefaultClasses() []ClassConfig {
	return []ClassConfig{
		{ID: 0, Name: "Class 0", Color: "red"},
		{ID: 1, Name: "Class 1", Color: "blue"},
	}
}

// DefaultExtensions returns the image extensions listed when opening a folder.
func DefaultExtensions() []string { return []string{".png", ".jpg", ".jpeg"} }

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		Classes:      DefaultClasses(),
		Extensions:   DefaultExtensions(),
		BoxPolicy:    PolicyPreserve,
		WarnUnsaved:  false,
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if len(c.Classes) == 0 {
		c.Classes = DefaultClasses()
	}
	seen := make(map[int]bool, len(c.Classes))
	classes := c.Classes[:0]
	for _, cl := range c.Classes {
		if cl.ID < 0 || seen[cl.ID] {
			continue
		}
		seen[cl.ID] = true
		cl.Name = strings.TrimSpace(cl.Name)
		classes = append(classes, cl)
	}
	if len(classes) == 0 {
		classes = DefaultClasses()
	}
	sort.SliceStable(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	c.Classes = classes

	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	c.Extensions = exts

	switch c.BoxPolicy {
	case PolicyPreserve, PolicyNormalize, PolicyRejectEmpty:
	default:
		c.BoxPolicy = PolicyPreserve
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = 800
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 600
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}
