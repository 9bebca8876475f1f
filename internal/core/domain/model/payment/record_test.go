package payment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
)

var settledAt = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func money(t *testing.T, value string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(value)
	require.NoError(t, err)
	return m
}

func newRecord(t *testing.T, method payment.Method, due string) *payment.Record {
	t.Helper()
	record, err := payment.NewRecord(kernel.NewUUID(), kernel.NewUUID(), method, money(t, due))
	require.NoError(t, err)
	return record
}

func TestNewRecord(t *testing.T) {
	t.Run("should start new with zero totals", func(t *testing.T) {
		record := newRecord(t, payment.MethodCard, "26.10")

		assert.Equal(t, payment.StatusNew, record.Status())
		assert.Equal(t, "26.10", record.Due().String())
		assert.True(t, record.Authorized().IsZero())
		assert.True(t, record.Captured().IsZero())
		assert.True(t, record.Refunded().IsZero())
		assert.Empty(t, record.History())
	})

	t.Run("should reject a negative amount due", func(t *testing.T) {
		_, err := payment.NewRecord(kernel.NewUUID(), kernel.NewUUID(), payment.MethodCash, money(t, "-1.00"))
		assert.ErrorIs(t, err, payment.ErrPaymentAmountMismatch)
	})

	t.Run("should reject an invalid method", func(t *testing.T) {
		_, err := payment.NewRecord(kernel.NewUUID(), kernel.NewUUID(), payment.MethodUnknown, money(t, "1.00"))
		assert.Error(t, err)
	})

	t.Run("should reject direct struct instantiation", func(t *testing.T) {
		var record payment.Record
		assert.ErrorIs(t, record.Validate(), payment.ErrRecordIsNotConstructed)
	})
}

func TestAuthorize(t *testing.T) {
	t.Run("should hold the amount due", func(t *testing.T) {
		record := newRecord(t, payment.MethodCard, "26.10")

		result, err := record.Authorize(settledAt)

		require.NoError(t, err)
		assert.Equal(t, payment.ResultAuthorized, result.Status)
		assert.Equal(t, "26.10", result.Amount.String())
		assert.Equal(t, payment.StatusAuthorized, record.Status())
		assert.Len(t, record.History(), 1)
	})

	t.Run("should be idempotent when already authorized", func(t *testing.T) {
		record := newRecord(t, payment.MethodOnline, "26.10")
		_, err := record.Authorize(settledAt)
		require.NoError(t, err)

		result, err := record.Authorize(settledAt.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, payment.ResultAlreadyAuthorized, result.Status)
		assert.Equal(t, payment.StatusAuthorized, record.Status())
		assert.Len(t, record.History(), 1, "idempotent re-authorize leaves no audit line")
	})
}

func TestCapture(t *testing.T) {
	t.Run("card capture requires authorization", func(t *testing.T) {
		record := newRecord(t, payment.MethodCard, "26.10")

		_, err := record.Capture(money(t, "26.10"), settledAt)

		assert.ErrorIs(t, err, payment.ErrPaymentNotAuthorized)
		assert.Equal(t, payment.StatusNew, record.Status())
	})

	t.Run("cash captures without authorization", func(t *testing.T) {
		record := newRecord(t, payment.MethodCash, "26.10")

		result, err := record.Capture(money(t, "26.10"), settledAt)

		require.NoError(t, err)
		assert.Equal(t, payment.ResultCaptured, result.Status)
		assert.Equal(t, payment.StatusCaptured, record.Status())
		assert.Equal(t, "26.10", record.Captured().String())
	})

	t.Run("authorized card captures up to the hold", func(t *testing.T) {
		record := newRecord(t, payment.MethodCard, "26.10")
		_, err := record.Authorize(settledAt)
		require.NoError(t, err)

		result, err := record.Capture(money(t, "26.10"), settledAt)

		require.NoError(t, err)
		assert.Equal(t, payment.ResultCaptured, result.Status)
		assert.Len(t, record.History(), 2)
	})

	t.Run("should reject capture above the amount due", func(t *testing.T) {
		record := newRecord(t, payment.MethodCash, "26.10")

		_, err := record.Capture(money(t, "30.00"), settledAt)

		assert.ErrorIs(t, err, payment.ErrPaymentAmountMismatch)
		assert.True(t, record.Captured().IsZero())
	})

	t.Run("should reject a second capture", func(t *testing.T) {
		record := newRecord(t, payment.MethodCash, "26.10")
		_, err := record.Capture(money(t, "26.10"), settledAt)
		require.NoError(t, err)

		_, err = record.Capture(money(t, "26.10"), settledAt)

		assert.ErrorIs(t, err, payment.ErrPaymentAlreadyCaptured)
	})
}

func TestRefund(t *testing.T) {
	captured := func(t *testing.T) *payment.Record {
		t.Helper()
		record := newRecord(t, payment.MethodCash, "26.10")
		_, err := record.Capture(money(t, "26.10"), settledAt)
		require.NoError(t, err)
		return record
	}

	t.Run("full refund reaches Refunded", func(t *testing.T) {
		record := captured(t)

		result, err := record.Refund(money(t, "26.10"), settledAt)

		require.NoError(t, err)
		assert.Equal(t, payment.ResultRefunded, result.Status)
		assert.Equal(t, payment.StatusRefunded, record.Status())
	})

	t.Run("partial refunds accumulate", func(t *testing.T) {
		record := captured(t)

		_, err := record.Refund(money(t, "10.00"), settledAt)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPartiallyRefunded, record.Status())

		_, err = record.Refund(money(t, "16.10"), settledAt)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusRefunded, record.Status())
		assert.Equal(t, "26.10", record.Refunded().String())
	})

	t.Run("should reject refund beyond what remains captured", func(t *testing.T) {
		record := captured(t)
		_, err := record.Refund(money(t, "20.00"), settledAt)
		require.NoError(t, err)

		_, err = record.Refund(money(t, "10.00"), settledAt)

		assert.ErrorIs(t, err, payment.ErrRefundExceedsCapture)
		assert.Equal(t, "20.00", record.Refunded().String())
	})

	t.Run("should reject refund before capture", func(t *testing.T) {
		record := newRecord(t, payment.MethodCard, "26.10")

		_, err := record.Refund(money(t, "1.00"), settledAt)

		assert.ErrorIs(t, err, payment.ErrRefundExceedsCapture)
	})

	t.Run("zero refund is a recorded no-op", func(t *testing.T) {
		record := captured(t)

		result, err := record.Refund(money(t, "0.00"), settledAt)

		require.NoError(t, err)
		assert.Equal(t, payment.ResultNoOp, result.Status)
		assert.Equal(t, payment.StatusCaptured, record.Status())
		assert.True(t, record.Refunded().IsZero())
	})
}

func TestRestoreRecord(t *testing.T) {
	t.Run("should rehydrate a captured record", func(t *testing.T) {
		original := newRecord(t, payment.MethodOnline, "26.10")
		_, err := original.Authorize(settledAt)
		require.NoError(t, err)
		_, err = original.Capture(money(t, "26.10"), settledAt)
		require.NoError(t, err)

		restored, err := payment.RestoreRecord(
			original.ID(),
			original.OrderID(),
			original.Method(),
			original.Due(),
			original.Authorized(),
			original.Captured(),
			original.Refunded(),
			original.Status(),
			original.History(),
		)

		require.NoError(t, err)
		assert.Equal(t, payment.StatusCaptured, restored.Status())
		assert.Len(t, restored.History(), 2)

		_, err = restored.Refund(money(t, "26.10"), settledAt)
		require.NoError(t, err)
		assert.Equal(t, payment.StatusRefunded, restored.Status())
	})
}

func TestMethod(t *testing.T) {
	t.Run("should round-trip through string tokens", func(t *testing.T) {
		for _, method := range []payment.Method{payment.MethodCash, payment.MethodCard, payment.MethodOnline} {
			parsed, err := payment.MethodFromString(method.String())

			require.NoError(t, err)
			assert.Equal(t, method, parsed)
		}
	})

	t.Run("only cash skips authorization", func(t *testing.T) {
		assert.False(t, payment.MethodCash.RequiresAuthorization())
		assert.True(t, payment.MethodCard.RequiresAuthorization())
		assert.True(t, payment.MethodOnline.RequiresAuthorization())
	})
}
