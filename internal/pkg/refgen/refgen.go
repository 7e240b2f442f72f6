package refgen

import (
	"crypto/rand"

	"github.com/rico33631/smart-park/internal/pkg/clock"
)

// Reference format: <prefix><second-resolution timestamp><random suffix>.
// The generator alone does not guarantee uniqueness; the store enforces a
// unique constraint on reference columns and callers regenerate on a
// duplicate-key violation.

const (
	suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLength   = 4
	timestampForm  = "20060102150405"

	BookingPrefix = "BK"
	PaymentPrefix = "PAY"
)

type Generator struct {
	clock clock.Clock
}

func NewGenerator(clk clock.Clock) *Generator {
	return &Generator{clock: clk}
}

func (g *Generator) Generate(prefix string) string {
	ts := g.clock.Now().Format(timestampForm)
	return prefix + ts + randomSuffix(suffixLength)
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	out := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand exhaustion is not recoverable here; emit a constant
		// suffix and let the store's unique constraint reject collisions.
		for i := range out {
			out[i] = suffixAlphabet[0]
		}
		return string(out)
	}
	for i := range out {
		out[i] = suffixAlphabet[int(buf[i])%len(suffixAlphabet)]
	}
	return string(out)
}
