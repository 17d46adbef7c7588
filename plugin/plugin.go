// Package plugin declares the closed set of plugin interfaces consulted
// across the analysis pipeline. Per spec.md §9, input-text, OOV, and
// path-rewrite plugins are uniform variants over a small closed interface
// — a tagged set, not an open extension mechanism. A fourth kind,
// connection-cost editors, edits the grammar's connection matrix once at
// setup time (used by InhibitConnection; see SPEC_FULL.md §4.G).
package plugin

import (
	"encoding/json"
	"errors"

	"github.com/morana-nlp/morana/dic"
)

// ErrPlugin wraps a plugin setup or run-time failure. Setup-time errors
// are fatal to dictionary load; run-time errors are per-input.
var ErrPlugin = errors.New("plugin: error")

// Settings is the raw per-plugin configuration blob from config.Config's
// plugin-list entries.
type Settings = json.RawMessage

// InputTextRewriter is the settings-driven setup step of an input-text
// plugin. The rewriters in package inputtext do not implement it: their
// Setup takes a skip set, and rewriting goes through inputtext.Rewriter.
type InputTextRewriter interface {
	Setup(settings Settings, grammar *dic.Grammar) error
}

// ConnectionCostEditor edits the grammar's connection-cost matrix once,
// after grammar load and before any lattice is built.
type ConnectionCostEditor interface {
	Setup(settings Settings, grammar *dic.Grammar) error
	Edit(grammar *dic.Grammar)
}
