// Package analysis turns a time-ordered conversation transcript into a
// structured account of who spoke and how the conversation unfolded.
//
// The Analyzer runs a fixed pipeline over an immutable segment list:
// speaker clustering, identity assignment, per-speaker characteristic
// extraction, participation metrics, turn-taking reconstruction, confidence
// scoring, and conversation-level insight synthesis. The computation is pure;
// two calls with the same input produce the same analysis (the run id is the
// only field that differs between runs).
//
// Capabilities the engine cannot compute from text and timestamps alone are
// injected: an acoustic.Provider supplies real pitch/energy measurements, and
// a voiceprint.Provider recognizes speakers across conversations. Both are
// optional; without them the engine uses documented placeholders and
// within-conversation identities only.
//
// # Usage
//
//	a := analysis.New(analysis.WithOptions(opts))
//	result, err := a.Analyze(ctx, segments, nil)
package analysis
