package oauth

import (
	"log/slog"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the dependencies of the provider registry.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type registry struct {
	adapters map[entity.ProviderType]service.ProviderAdapter
	ordered  []service.ProviderAdapter
}

// NewRegistry builds every supported provider adapter.
func NewRegistry(params Params) (service.ProviderRegistry, error) {
	apple, err := NewAppleProvider(params.Config.OAuth.Apple, params.Logger)
	if err != nil {
		return nil, err
	}

	return NewRegistryFromAdapters(
		NewGoogleProvider(params.Config.OAuth.Google, params.Logger),
		apple,
	), nil
}

// NewRegistryFromAdapters builds a registry over a fixed adapter set.
func NewRegistryFromAdapters(adapters ...service.ProviderAdapter) service.ProviderRegistry {
	r := &registry{
		adapters: make(map[entity.ProviderType]service.ProviderAdapter, len(adapters)),
		ordered:  make([]service.ProviderAdapter, 0, len(adapters)),
	}
	for _, adapter := range adapters {
		r.adapters[adapter.Provider()] = adapter
		r.ordered = append(r.ordered, adapter)
	}

	return r
}

func (r *registry) Lookup(provider entity.ProviderType) (service.ProviderAdapter, bool) {
	adapter, ok := r.adapters[provider]

	return adapter, ok
}

func (r *registry) All() []service.ProviderAdapter {
	return append([]service.ProviderAdapter(nil), r.ordered...)
}
