// Package synth builds a synthetic population from CLI configuration:
// default schema, random demographics, everyone susceptible, and one
// generated contact layer per configured entry.
package synth

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/popnet/builder"
	"github.com/katalvlaran/popnet/contacts"
	"github.com/katalvlaran/popnet/internal/config"
	"github.com/katalvlaran/popnet/internal/logging"
	"github.com/katalvlaran/popnet/population"
)

// MaxAge bounds the uniform age draw.
const MaxAge = 90

// Population synthesizes cfg.Size agents. All random draws come from one
// stream seeded with cfg.Seed, so equal configs give equal populations.
// A nil logger discards.
func Population(cfg *config.Config, logger *slog.Logger) (*population.Population, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	schema, err := population.DefaultSchema(cfg.LayerKeys()...)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	p, err := population.New(schema, cfg.Size, population.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if err = demographics(p, rng); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	for _, lc := range cfg.Layers {
		l, err := layer(cfg.Size, lc, rng)
		if err != nil {
			return nil, fmt.Errorf("synth: layer %q: %w", lc.Key, err)
		}
		if err = p.AddContacts(l, population.WithLayerKey(lc.Key)); err != nil {
			return nil, fmt.Errorf("synth: layer %q: %w", lc.Key, err)
		}
		logger.Debug("generated layer",
			slog.String("key", lc.Key),
			slog.String("kind", lc.Kind),
			slog.Int("edges", l.Len()))
	}

	if err = p.Validate(true); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	if err = p.SetExtra("seed", cfg.Seed); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}
	logger.Info("synthesized population", slog.Int("size", p.Len()), slog.Int("edges", p.Contacts().Len()))

	return p, nil
}

// demographics fills uid, age, sex, the relative factors and the initial
// susceptible state.
func demographics(p *population.Population, rng *rand.Rand) error {
	n := p.Len()
	uid := make([]int, n)
	age := make([]float64, n)
	sex := make([]int, n)
	ones := make([]float64, n)
	all := make([]bool, n)
	for i := 0; i < n; i++ {
		uid[i] = i
		age[i] = rng.Float64() * MaxAge
		sex[i] = rng.Intn(2)
		ones[i] = 1
		all[i] = true
	}

	for key, values := range map[string]any{
		population.KeyUID: uid,
		"age":             age,
		"sex":             sex,
		"rel_trans":       ones,
		"rel_sus":         ones,
		"susceptible":     all,
		"naive":           all,
	} {
		if err := p.Set(key, values); err != nil {
			return err
		}
	}

	return nil
}

// layer runs the generator lc names over n agents.
func layer(n int, lc config.LayerConfig, rng *rand.Rand) (*contacts.Layer, error) {
	opts := []builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithBeta(lc.BetaOr(float64(contacts.DefaultBeta))),
	}

	switch lc.Kind {
	case config.KindRandom:
		return builder.BuildLayer(opts, builder.Random(n, lc.Mean))
	case config.KindClusters:
		return builder.BuildLayer(opts, builder.Clusters(n, lc.Mean))
	default:
		return nil, fmt.Errorf("unknown kind %q", lc.Kind)
	}
}
