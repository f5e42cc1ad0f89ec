package i

import (
	"time"
)

// Tokenizer signs session claims and reads them back.
type Tokenizer interface {
	// Generate creates a token carrying claims that expires after expTime.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode validates a token, returning its claims. Expired and foreign tokens
	// are rejected.
	Decode(token string) (map[string]interface{}, error)
}
