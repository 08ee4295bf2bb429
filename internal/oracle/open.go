package oracle

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	ProviderGemini   = "gemini"
	ProviderFallback = "fallback"
	ProviderStatic   = "static"
)

// Settings selects and configures a Source.
type Settings struct {
	Provider string
	APIKey   string
	Model    string
}

// demoResponses back the static provider for offline runs.
var demoResponses = map[Kind]string{
	KindOracle: `{"phrase": "What were you looking for before you looked up?"}`,
	KindRitual: `{"title": "Cloud Cartography", "instructions": "Lie back side by side and name the shapes drifting overhead, one each, until the timer ends."}`,
}

// Open builds the configured source. A gemini provider without a usable client
// degrades to the fallback source; unknown providers are an error.
func Open(ctx context.Context, s Settings, log *zap.Logger) (Source, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch s.Provider {
	case ProviderGemini, "":
		src, err := NewGeminiSource(ctx, s.APIKey, s.Model)
		if err != nil {
			log.Warn("gemini unavailable, every artifact will be a fallback", zap.Error(err))
			return FallbackSource{}, nil
		}
		return src, nil
	case ProviderFallback:
		return FallbackSource{}, nil
	case ProviderStatic:
		return StaticSource{Responses: demoResponses}, nil
	default:
		return nil, fmt.Errorf("unknown generator provider: %s", s.Provider)
	}
}
