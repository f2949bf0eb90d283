package runner

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/dota-teaminfo/internal/providers"
)

type namedProvider interface {
	Name() string
}

// providerName returns a lower-cased provider name, deriving it from the
// instance when not explicitly configured. Logs and metrics share it.
func providerName(raw string, provider providers.TeamInfoProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := provider.(namedProvider); ok {
		return strings.ToLower(named.Name())
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
