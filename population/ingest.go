// SPDX-License-Identifier: MIT
// File: ingest.go
// Role: AddContacts and MakeEdgeList, normalizing every contact input shape
//       into layer rows.
// Policy:
//   - All input is normalized and validated before any layer is touched, so a
//     failed call leaves the contacts unchanged.
//   - Missing weights are filled for the new rows only; existing rows keep
//     their beta.
//   - Partner lists emit (i, p) in listed order and are never mirrored.

package population

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/popnet/contacts"
)

// AddOption configures AddContacts and MakeEdgeList.
type AddOption func(*addConfig)

type addConfig struct {
	layerKey string
	beta     float64
}

// WithLayerKey names the target layer for single-layer inputs. Without it
// the first schema layer key is used.
func WithLayerKey(key string) AddOption {
	return func(c *addConfig) { c.layerKey = key }
}

// WithBeta sets the weight given to new rows that arrive without one.
// Without it contacts.DefaultBeta is used.
func WithBeta(beta float64) AddOption {
	return func(c *addConfig) { c.beta = beta }
}

func newAddConfig(opts ...AddOption) addConfig {
	cfg := addConfig{beta: float64(contacts.DefaultBeta)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// AddContacts appends contact rows to the population's layers, creating any
// layer that does not exist yet.
//
// Accepted inputs:
//   - *contacts.Contacts: every layer is appended under its own key;
//   - *contacts.Layer: appended under the target layer key;
//   - [][]float64: raw rows (p1, p2[, beta]) for the target layer;
//   - contacts.Columns: a p1/p2[/beta] column dict for the target layer;
//   - []map[string][]int: per-agent partner lists keyed by layer;
//   - [][]int: per-agent partner lists for the target layer.
//
// The target layer key is WithLayerKey or the schema's first layer key
// (ErrNoLayerKey if neither exists). Other types fail with
// ErrUnsupportedContacts.
// Complexity: O(existing edges of touched layers + new edges).
func (p *Population) AddContacts(raw any, opts ...AddOption) error {
	cfg := newAddConfig(opts...)

	batch, err := p.normalize(raw, cfg)
	if err != nil {
		return fmt.Errorf("AddContacts: %w", err)
	}
	if err = batch.Validate(); err != nil {
		return fmt.Errorf("AddContacts: %w", err)
	}
	for _, k := range batch.Keys() {
		if k == "" {
			return fmt.Errorf("AddContacts: %w", contacts.ErrEmptyLayerKey)
		}
	}

	for _, k := range batch.Keys() {
		l, _ := batch.Layer(k)
		if cur, ok := p.contacts.Layer(k); ok {
			if err = cur.Append(l); err != nil {
				return fmt.Errorf("AddContacts: layer %q: %w", k, err)
			}
			continue
		}
		if err = p.contacts.AddLayer(k, l.Clone()); err != nil {
			return fmt.Errorf("AddContacts: %w", err)
		}
	}

	return nil
}

// normalize converts raw into a detached collection of new rows.
func (p *Population) normalize(raw any, cfg addConfig) (*contacts.Contacts, error) {
	if c, ok := raw.(*contacts.Contacts); ok {
		if c == nil {
			return nil, contacts.ErrLayerNil
		}
		return c, nil
	}
	if lists, ok := raw.([]map[string][]int); ok {
		return MakeEdgeList(p.schema.layerKeys, lists, WithBeta(cfg.beta))
	}

	key, err := p.targetKey(cfg)
	if err != nil {
		return nil, err
	}

	var l *contacts.Layer
	switch v := raw.(type) {
	case *contacts.Layer:
		if v == nil {
			return nil, contacts.ErrLayerNil
		}
		l = v
	case [][]float64:
		l, err = contacts.FromRows(v, contacts.WithBeta(cfg.beta))
	case contacts.Columns:
		l, err = contacts.FromColumns(v, contacts.WithBeta(cfg.beta))
	case map[string]any:
		l, err = contacts.FromColumns(contacts.Columns(v), contacts.WithBeta(cfg.beta))
	case [][]int:
		l, err = partnerLayer(v, float32(cfg.beta))
	default:
		return nil, fmt.Errorf("%T: %w", raw, ErrUnsupportedContacts)
	}
	if err != nil {
		return nil, err
	}

	out := contacts.New()
	if err = out.AddLayer(key, l); err != nil {
		return nil, err
	}

	return out, nil
}

// targetKey resolves the layer key for single-layer inputs.
func (p *Population) targetKey(cfg addConfig) (string, error) {
	if cfg.layerKey != "" {
		return cfg.layerKey, nil
	}
	if len(p.schema.layerKeys) == 0 {
		return "", ErrNoLayerKey
	}

	return p.schema.layerKeys[0], nil
}

// partnerLayer emits one edge (i, p) per partner p of agent i.
func partnerLayer(lists [][]int, beta float32) (*contacts.Layer, error) {
	l := contacts.NewLayer()
	for i, partners := range lists {
		for _, q := range partners {
			if err := appendEdge(l, i, q, beta); err != nil {
				return nil, err
			}
		}
	}

	return l, nil
}

// appendEdge adds one row, rejecting indices that do not fit an int32.
func appendEdge(l *contacts.Layer, i, q int, beta float32) error {
	if i > math.MaxInt32 || q > math.MaxInt32 || q < math.MinInt32 {
		return fmt.Errorf("edge (%d,%d): %w", i, q, ErrBadValue)
	}
	l.P1 = append(l.P1, int32(i))
	l.P2 = append(l.P2, int32(q))
	l.Beta = append(l.Beta, beta)

	return nil
}

// MakeEdgeList converts per-agent partner lists into a contacts collection.
//
// lists[i] maps a layer key to agent i's partners. The result holds one
// layer per key of layerKeys, in that order, followed by any new key found
// in lists, in first-seen order (keys new within one agent's map are taken
// in ascending order). Every partner p of agent i becomes the edge (i, p)
// with the WithBeta weight; edges are not mirrored. WithLayerKey is ignored.
// Complexity: O(total partners).
func MakeEdgeList(layerKeys []string, lists []map[string][]int, opts ...AddOption) (*contacts.Contacts, error) {
	cfg := newAddConfig(opts...)
	beta := float32(cfg.beta)

	keys := append([]string{}, layerKeys...)
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}
	for _, m := range lists {
		var fresh []string
		for k := range m {
			if !known[k] {
				fresh = append(fresh, k)
				known[k] = true
			}
		}
		sort.Strings(fresh)
		keys = append(keys, fresh...)
	}

	out := contacts.New(keys...)
	for i, m := range lists {
		for k, partners := range m {
			l, _ := out.Layer(k)
			for _, q := range partners {
				if err := appendEdge(l, i, q, beta); err != nil {
					return nil, fmt.Errorf("MakeEdgeList: layer %q: %w", k, err)
				}
			}
		}
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("MakeEdgeList: %w", err)
	}

	return out, nil
}
