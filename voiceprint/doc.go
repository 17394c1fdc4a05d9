// Package voiceprint defines the provider interface and common types for
// cross-conversation speaker identification backends.
//
// The analysis engine clusters speakers within a single conversation only.
// Recognizing that a cluster belongs to a speaker seen in previous
// conversations requires a persistent voiceprint store; that capability is
// injected per call through Provider rather than held as engine state, so
// identity policy can be swapped without touching clustering.
//
// # Usage
//
//	reg := voiceprint.NewRegistry()
//	reg.RegisterFactory("store", newStoreProvider)
//	p, err := reg.Create("store", cfg)
//	match, err := p.Identify(ctx, req)
package voiceprint
