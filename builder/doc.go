// Package builder provides reusable functional-options building blocks that
// generate contact layers for synthetic populations. It sits on top of the
// contacts package and keeps layer synthesis deterministic, testable and
// consistent across callers.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildLayer(bopts, cons...): resolve options once, run constructors in
//     order, return one validated *contacts.Layer.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG and the per-edge beta generator.
//   - Layer constructors (Constructor implementations):
//     – Random(n, mean):     uniform random partners, mean contacts per agent.
//     – Clusters(n, mean):   consecutive fully connected clusters with
//     Poisson-distributed sizes (households).
//     – Static(edges...):    a literal edge list.
//   - Beta distributions (BetaFn implementations):
//     – DefaultBetaFn, ConstantBetaFn, UniformBetaFn, NormalBetaFn.
//
// Guarantees:
//
//   - Determinism: the same constructors, options and seed always produce the
//     same rows in the same order.
//   - Fast-fail on meaningless option values via panics in option
//     constructors (WithRand(nil), WithBeta(<0), ...). Constructors never
//     panic; they return sentinel errors wrapped with the method name.
//   - Atomicity: a constructor builds its rows into a private batch and
//     appends it only on success.
//
// Complexity is documented per constructor.
package builder
