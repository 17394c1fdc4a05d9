// Package provider defines the base interface and registry for pluggable
// capabilities consumed by the analysis engine.
//
// The engine itself performs no I/O; anything that could (acoustic feature
// extraction, cross-conversation voiceprint lookup) is injected through a
// provider implementing this package's contract. Backends register factories
// by name so callers can select an implementation at runtime.
//
// # Usage
//
//	reg := provider.NewRegistry[acoustic.Provider]()
//	reg.RegisterFactory("praat", newPraatProvider)
//	p, err := reg.Create("praat", cfg)
package provider
