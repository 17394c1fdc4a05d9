package voiceprint

import (
	"context"

	"github.com/skillsenselab/speakerkit/provider"
)

// Provider is the interface that voiceprint lookup backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Identify attempts to match a cluster against known speakers.
	// A nil Match with nil error means no speaker was recognized.
	Identify(ctx context.Context, req IdentifyRequest) (*Match, error)
}
