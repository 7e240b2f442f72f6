//go:build unit

package refgen_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/rico33631/smart-park/internal/pkg/clock"
	"github.com/rico33631/smart-park/internal/pkg/refgen"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 15, 10, 30, 45, 0, time.UTC))
	gen := refgen.NewGenerator(clk)

	t.Run("booking reference format", func(t *testing.T) {
		ref := gen.Generate(refgen.BookingPrefix)
		assert.Regexp(t, regexp.MustCompile(`^BK20260315103045[A-Z0-9]{4}$`), ref)
	})

	t.Run("payment reference format", func(t *testing.T) {
		ref := gen.Generate(refgen.PaymentPrefix)
		assert.Regexp(t, regexp.MustCompile(`^PAY20260315103045[A-Z0-9]{4}$`), ref)
	})

	t.Run("timestamp follows the clock", func(t *testing.T) {
		clk.Set(time.Date(2027, 12, 1, 0, 0, 1, 0, time.UTC))
		ref := gen.Generate(refgen.BookingPrefix)
		assert.Equal(t, "BK20271201000001", ref[:16])
	})

	t.Run("suffix varies", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			seen[gen.Generate(refgen.BookingPrefix)] = true
		}
		// 50 draws over a 36^4 suffix space should essentially never
		// land on a single value.
		assert.Greater(t, len(seen), 1)
	})
}
