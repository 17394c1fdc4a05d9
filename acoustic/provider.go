package acoustic

import (
	"context"

	"github.com/skillsenselab/speakerkit/provider"
)

// Provider is the interface that acoustic feature backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Extract measures acoustic features for the requested windows.
	Extract(ctx context.Context, req ExtractRequest) (*ExtractResponse, error)
}
