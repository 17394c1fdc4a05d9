package acoustic

import "github.com/skillsenselab/speakerkit/provider"

// NewRegistry creates a new provider registry for acoustic feature providers.
func NewRegistry() *provider.Registry[Provider] {
	return provider.NewRegistry[Provider]()
}
