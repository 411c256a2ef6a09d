package logging

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// RequestIDGenerator generates unique request IDs.
type RequestIDGenerator struct {
	prefix string
}

// NewRequestIDGenerator creates a request ID generator with the given
// prefix ("req" when empty).
func NewRequestIDGenerator(prefix string) *RequestIDGenerator {
	if prefix == "" {
		prefix = "req"
	}
	return &RequestIDGenerator{prefix: prefix}
}

// Generate creates a new unique request ID.
// Format: {prefix}_{timestamp}_{random}
func (g *RequestIDGenerator) Generate() string {
	timestamp := time.Now().UnixMicro()

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		// Timestamp-only ID if the random source fails
		return fmt.Sprintf("%s_%d", g.prefix, timestamp)
	}

	return fmt.Sprintf("%s_%d_%s", g.prefix, timestamp, hex.EncodeToString(randomBytes))
}

var defaultGenerator = NewRequestIDGenerator("req")

// GenerateRequestID generates a request ID using the default generator.
func GenerateRequestID() string {
	return defaultGenerator.Generate()
}
