package pathrewrite

import (
	"encoding/json"
	"fmt"

	"github.com/morana-nlp/morana/dic"
	"github.com/morana-nlp/morana/plugin"
)

// InhibitConnection implements plugin.ConnectionCostEditor rather than
// Rewriter: per SPEC_FULL.md §4.G, the original mechanism edits
// the grammar's connection matrix once at setup time instead of dropping
// whole paths at rewrite time. It is kept in this package (despite not
// being a path rewriter in implementation) for spec.md §4 naming
// compatibility.
type InhibitConnection struct {
	pairs []inhibitedPair
}

type inhibitedPair struct {
	LeftID  int `json:"left_id"`
	RightID int `json:"right_id"`
}

// Setup decodes the configured (left_id, right_id) pairs and validates
// each against grammar's connection matrix dimensions.
func (ic *InhibitConnection) Setup(settings plugin.Settings, grammar *dic.Grammar) error {
	var pairs []inhibitedPair
	if err := json.Unmarshal(settings, &pairs); err != nil {
		return fmt.Errorf("pathrewrite: inhibit_connection: %w", err)
	}
	for _, p := range pairs {
		if _, err := grammar.CheckLeftID(p.LeftID); err != nil {
			return fmt.Errorf("pathrewrite: inhibit_connection: %w", err)
		}
		if _, err := grammar.CheckRightID(p.RightID); err != nil {
			return fmt.Errorf("pathrewrite: inhibit_connection: %w", err)
		}
	}
	ic.pairs = pairs
	return nil
}

// Edit writes dic.InhibitedConnection into every configured (left,
// right) cell, applied once, before any lattice is built.
func (ic *InhibitConnection) Edit(grammar *dic.Grammar) {
	for _, p := range ic.pairs {
		grammar.SetConnectCost(uint16(p.LeftID), uint16(p.RightID), dic.InhibitedConnection)
	}
}
