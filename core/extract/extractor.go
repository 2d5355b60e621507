// Package extract implements the Extractor interface for each provider.
// A detail page is reduced to a canonical record by:
//  1. Reading embedded JSON data blocks when the page carries them
//  2. Falling back to an ordered list of content containers (first match wins)
//  3. Reconciling page metadata with the values the feed already supplied
package extract

import (
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/updatesheet/core"
)

// ForProvider returns the extractor for provider.
func ForProvider(provider core.Provider, format string, logger *slog.Logger) (core.Extractor, error) {
	switch provider {
	case core.ProviderAWS:
		return NewAWS(format, logger), nil
	case core.ProviderAzure:
		return NewAzure(format, logger), nil
	default:
		return nil, fmt.Errorf("no extractor for provider %q", provider)
	}
}
