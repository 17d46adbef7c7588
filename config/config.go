// Package config declares the plain configuration record external
// callers build and pass into dictionary/analyzer setup. Per spec.md
// §6's Non-goals, this module does no file parsing: Config is a JSON
// deserialization target a caller-owned loader fills in.
package config

import (
	"encoding/json"
	"errors"
)

// ErrConfig wraps an invalid plugin settings blob or a malformed
// configuration record.
var ErrConfig = errors.New("config: invalid configuration")

// Projection selects which word-info field a caller-facing "surface"
// column reports.
type Projection string

const (
	ProjectionSurface        Projection = "surface"
	ProjectionNormalized     Projection = "normalized"
	ProjectionReading        Projection = "reading"
	ProjectionDictionaryForm Projection = "dictionary_form"
)

// PluginConfig is one entry of an ordered plugin list: a name identifying
// which concrete plugin to construct, and an opaque settings blob passed
// to that plugin's Setup.
type PluginConfig struct {
	Name     string          `json:"name"`
	Settings json.RawMessage `json:"settings"`
}

// Config is the external configuration record of spec.md §6.
type Config struct {
	SystemDict            string         `json:"system_dict"`
	UserDicts             []string       `json:"user_dicts"`
	CharacterDefinition   string         `json:"character_definition"`
	InputTextPlugins      []PluginConfig `json:"input_text_plugins"`
	OovProviders          []PluginConfig `json:"oov_providers"`
	PathRewritePlugins    []PluginConfig `json:"path_rewrite_plugins"`
	ConnectionCostPlugins []PluginConfig `json:"connection_cost_plugins"`
	Projection            Projection     `json:"projection"`
}
