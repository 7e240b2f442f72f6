//go:build unit

package payment_test

import (
	"testing"
	"time"

	"github.com/rico33631/smart-park/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPayment(t *testing.T) *payment.Payment {
	t.Helper()
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	pm, err := payment.NewPayment("PAY202603150900ABCD", uuid.New(), 1500, "USD", "card", "demo", "dana@example.com", now)
	require.NoError(t, err)
	return pm
}

func TestNewPayment(t *testing.T) {
	pm := newPayment(t)

	assert.Equal(t, payment.StatusProcessing, pm.Status())
	assert.Nil(t, pm.GatewayTxnID())
	assert.Nil(t, pm.CompletedAt())
	assert.Equal(t, int64(1500), pm.AmountCents())

	t.Run("empty reference", func(t *testing.T) {
		_, err := payment.NewPayment("", uuid.New(), 1500, "USD", "card", "demo", "dana@example.com", time.Now())
		assert.ErrorIs(t, err, payment.ErrEmptyReference)
	})
}

func TestPaymentComplete(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 5, 0, 0, time.UTC)

	pm := newPayment(t)
	require.NoError(t, pm.Complete("demo_txn_123456", now))

	assert.Equal(t, payment.StatusCompleted, pm.Status())
	require.NotNil(t, pm.GatewayTxnID())
	assert.Equal(t, "demo_txn_123456", *pm.GatewayTxnID())
	require.NotNil(t, pm.CompletedAt())
	assert.Equal(t, now, *pm.CompletedAt())

	t.Run("completing twice is rejected", func(t *testing.T) {
		assert.ErrorIs(t, pm.Complete("demo_txn_999999", now), payment.ErrNotProcessing)
	})
}

func TestPaymentFail(t *testing.T) {
	pm := newPayment(t)
	require.NoError(t, pm.Fail())
	assert.Equal(t, payment.StatusFailed, pm.Status())

	assert.ErrorIs(t, pm.Fail(), payment.ErrNotProcessing)
	assert.ErrorIs(t, pm.Complete("demo_txn_1", time.Now()), payment.ErrNotProcessing)
}

func TestPaymentRefund(t *testing.T) {
	t.Run("completed payment refunds", func(t *testing.T) {
		pm := newPayment(t)
		require.NoError(t, pm.Complete("demo_txn_1", time.Now()))
		require.NoError(t, pm.Refund())
		assert.Equal(t, payment.StatusRefunded, pm.Status())
	})

	t.Run("processing payment cannot refund", func(t *testing.T) {
		pm := newPayment(t)
		assert.ErrorIs(t, pm.Refund(), payment.ErrNotCompleted)
	})

	t.Run("failed payment cannot refund", func(t *testing.T) {
		pm := newPayment(t)
		require.NoError(t, pm.Fail())
		assert.ErrorIs(t, pm.Refund(), payment.ErrNotCompleted)
	})
}
