package synth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/builder"
	"github.com/katalvlaran/popnet/internal/config"
	"github.com/katalvlaran/popnet/internal/logging"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Size = 50
	cfg.Seed = 3
	cfg.Layers = []config.LayerConfig{
		{Key: "h", Kind: config.KindClusters, Mean: 3},
		{Key: "c", Kind: config.KindRandom, Mean: 4},
	}
	return cfg
}

func TestPopulation_Shape(t *testing.T) {
	p, err := Population(smallConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, 50, p.Len())
	assert.Equal(t, []string{"h", "c"}, p.LayerKeys())
	assert.Equal(t, []string{"h", "c"}, p.Contacts().Keys())

	c, _ := p.Contacts().Layer("c")
	assert.Equal(t, 100, c.Len())
	assert.Equal(t, []float32{1}, c.Beta[:1])
	for _, m := range c.Members() {
		assert.Less(t, m, 50)
	}

	n, err := p.Count("susceptible")
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	n, err = p.Count("exposed")
	require.NoError(t, err)
	assert.Zero(t, n)

	uid, _ := p.Ints("uid")
	assert.Equal(t, int64(49), uid[49])
	age, _ := p.Floats("age")
	for _, a := range age {
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, float64(MaxAge))
	}

	seed, ok := p.Extra("seed")
	require.True(t, ok)
	assert.Equal(t, int64(3), seed)
	require.NoError(t, p.Validate(true))
}

func TestPopulation_Deterministic(t *testing.T) {
	a, err := Population(smallConfig(), nil)
	require.NoError(t, err)
	b, err := Population(smallConfig(), nil)
	require.NoError(t, err)

	ageA, _ := a.Floats("age")
	ageB, _ := b.Floats("age")
	assert.Equal(t, ageA, ageB)
	assert.Equal(t, a.Contacts().String(), b.Contacts().String())

	other := smallConfig()
	other.Seed = 4
	c, err := Population(other, nil)
	require.NoError(t, err)
	ageC, _ := c.Floats("age")
	assert.NotEqual(t, ageA, ageC)
}

func TestPopulation_Beta(t *testing.T) {
	cfg := config.Default()
	cfg.Size = 30
	p, err := Population(cfg, nil)
	require.NoError(t, err)

	h, _ := p.Contacts().Layer("h")
	require.NotZero(t, h.Len())
	assert.Equal(t, float32(3), h.Beta[0])
	c, _ := p.Contacts().Layer("c")
	assert.Equal(t, float32(0.3), c.Beta[0])
}

func TestPopulation_Logs(t *testing.T) {
	var buf bytes.Buffer
	_, err := Population(smallConfig(), logging.NewLogger("debug", &buf))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "generated layer")
	assert.Contains(t, out, "key=c")
	assert.Contains(t, out, "synthesized population")
}

func TestPopulation_Errors(t *testing.T) {
	bad := smallConfig()
	bad.Layers[0].Kind = "ring"
	_, err := Population(bad, nil)
	assert.ErrorContains(t, err, "invalid kind")

	tiny := smallConfig()
	tiny.Size = 1
	_, err = Population(tiny, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewAgents)

	empty := smallConfig()
	empty.Size = 0
	empty.Layers = nil
	p, err := Population(empty, nil)
	require.NoError(t, err)
	assert.Zero(t, p.Len())
}
