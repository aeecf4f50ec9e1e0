// SPDX-License-Identifier: MIT
// File: manifest.go
// Role: Shrink, the reduced export: everything but per-agent and per-edge data.

package tabular

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/popnet/population"
)

// FieldInfo is one attribute declaration in a Manifest.
type FieldInfo struct {
	Key   string `json:"key" yaml:"key"`
	Group string `json:"group" yaml:"group"`
	Kind  string `json:"kind" yaml:"kind"`
}

// LayerInfo names a layer and its edge count.
type LayerInfo struct {
	Key   string `json:"key" yaml:"key"`
	Edges int    `json:"edges" yaml:"edges"`
}

// Manifest describes a population without its arrays or edges.
type Manifest struct {
	ID     string      `json:"id" yaml:"id"`
	Size   int         `json:"size" yaml:"size"`
	Fields []FieldInfo `json:"fields" yaml:"fields"`
	Layers []LayerInfo `json:"layers" yaml:"layers"`
	Extra  []string    `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Shrink returns the manifest of p under a fresh random ID. Layers follow
// the collection's key order; Extra lists side-mapping keys sorted.
// Complexity: O(fields + layers + extra).
func Shrink(p *population.Population) (*Manifest, error) {
	if p == nil {
		return nil, fmt.Errorf("Shrink: %w", ErrNilInput)
	}

	m := &Manifest{
		ID:    uuid.NewString(),
		Size:  p.Len(),
		Extra: p.ExtraKeys(),
	}
	for _, f := range p.Schema().Fields() {
		m.Fields = append(m.Fields, FieldInfo{Key: f.Key, Group: f.Group.String(), Kind: f.Kind.String()})
	}
	c := p.Contacts()
	for _, k := range c.Keys() {
		l, _ := c.Layer(k)
		m.Layers = append(m.Layers, LayerInfo{Key: k, Edges: l.Len()})
	}

	return m, nil
}

// Edges sums the per-layer edge counts.
func (m *Manifest) Edges() int {
	n := 0
	for _, l := range m.Layers {
		n += l.Edges
	}

	return n
}

// Encode writes m as YAML.
func (m *Manifest) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("Manifest.Encode: %w", err)
	}

	return enc.Close()
}

// DecodeManifest reads a manifest written by Encode.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("DecodeManifest: %w", err)
	}

	return &m, nil
}
