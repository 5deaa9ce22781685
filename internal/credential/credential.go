// Package credential classifies the configured Gemini API key without
// talking to the provider. The classification is advisory: a key that
// looks plausible can still be rejected at call time.
package credential

import "strings"

// State is the classification of a configured API credential.
type State string

const (
	// StateAbsent means no credential was configured at all.
	StateAbsent State = "absent"
	// StatePlaceholder means the credential is an unfilled template default.
	StatePlaceholder State = "placeholder"
	// StateMalformed means the credential does not look like a real key.
	StateMalformed State = "malformed"
	// StatePlausible means the credential passes format checks. It may
	// still be expired, revoked, or over quota.
	StatePlausible State = "plausible"
)

const (
	// keyPrefix is the conventional prefix of Google API keys.
	keyPrefix = "AIza"
	// minKeyLength is the shortest length we accept as a real key.
	minKeyLength = 20
)

// placeholderKeys are the unfilled defaults shipped in configuration
// templates. Finding one of these means the operator never set a key.
var placeholderKeys = map[string]struct{}{
	"your_gemini_api_key_here": {},
	"your-api-key-here":        {},
	"change-me":                {},
}

// Classify inspects a raw credential string and reports its State.
// It is pure and total: no network access, no error path.
func Classify(raw string) State {
	key := strings.TrimSpace(raw)
	if key == "" {
		return StateAbsent
	}
	if _, ok := placeholderKeys[key]; ok {
		return StatePlaceholder
	}
	if !strings.HasPrefix(key, keyPrefix) || len(key) < minKeyLength {
		return StateMalformed
	}
	return StatePlausible
}
