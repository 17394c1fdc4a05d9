package voiceprint

import "github.com/skillsenselab/speakerkit/provider"

// NewRegistry creates a new provider registry for voiceprint lookup providers.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}
