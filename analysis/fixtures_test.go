package analysis

import (
	"context"

	"github.com/skillsenselab/speakerkit/acoustic"
	"github.com/skillsenselab/speakerkit/voiceprint"
)

func seg(id string, start, end float64, text string) Segment {
	return Segment{ID: id, Start: start, End: end, Text: text}
}

func hintedSeg(id string, start, end float64, text, hint string) Segment {
	s := seg(id, start, end, text)
	s.SpeakerHint = hint
	return s
}

// fakeAcoustic is a scriptable acoustic provider.
type fakeAcoustic struct {
	available bool
	features  map[string]acoustic.Features
	err       error
	panicMsg  string
}

func (f *fakeAcoustic) Name() string                        { return "fake-acoustic" }
func (f *fakeAcoustic) IsAvailable(ctx context.Context) bool { return f.available }

func (f *fakeAcoustic) Extract(ctx context.Context, req acoustic.ExtractRequest) (*acoustic.ExtractResponse, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]acoustic.Features)
	for _, w := range req.Windows {
		if feats, ok := f.features[w.SegmentID]; ok {
			out[w.SegmentID] = feats
		}
	}
	return &acoustic.ExtractResponse{Features: out}, nil
}

// fakeVoiceprint is a scriptable voiceprint provider keyed by cluster id.
type fakeVoiceprint struct {
	available bool
	matches   map[string]*voiceprint.Match
	err       error
}

func (f *fakeVoiceprint) Name() string                        { return "fake-voiceprint" }
func (f *fakeVoiceprint) IsAvailable(ctx context.Context) bool { return f.available }

func (f *fakeVoiceprint) Identify(ctx context.Context, req voiceprint.IdentifyRequest) (*voiceprint.Match, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches[req.ClusterID], nil
}
