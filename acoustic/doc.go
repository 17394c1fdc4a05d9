// Package acoustic defines the provider interface and common types for
// low-level audio feature extraction backends.
//
// The analysis engine operates on text and timestamps only; true acoustic
// measurement (pitch tracking, energy, spectral clarity) is delegated to a
// backend implementing Provider. When no provider is supplied the engine
// substitutes documented placeholder values and flags them as non-measured.
//
// It follows the provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Usage
//
//	reg := acoustic.NewRegistry()
//	reg.RegisterFactory("praat", newPraatProvider)
//	p, err := reg.Create("praat", cfg)
//	features, err := p.Extract(ctx, req)
package acoustic
