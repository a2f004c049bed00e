// file: internals/features/finance/payments/service/payment_recorder_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeModel "schoolhub_backend/internals/features/finance/fees/model"
)

func TestApplyCredit_PartialThenSettle(t *testing.T) {
	// fee of 50,000 naira, nothing paid yet
	paid, balance, status, err := ApplyCredit(50_000_00, 0, 50_000_00, 20_000_00, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(20_000_00), paid)
	assert.Equal(t, int64(30_000_00), balance)
	assert.Equal(t, feeModel.FeeStatusPartial, status)

	// second payment settles it
	paid, balance, status, err = ApplyCredit(50_000_00, paid, balance, 30_000_00, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_00), paid)
	assert.Equal(t, int64(0), balance)
	assert.Equal(t, feeModel.FeeStatusPaid, status)
}

func TestApplyCredit_DiscountCountsTowardPaid(t *testing.T) {
	// 10% coupon on a 50,000 balance, payer covers the rest in cash
	paid, balance, status, err := ApplyCredit(50_000_00, 0, 50_000_00, 45_000_00, 5_000_00)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_00), paid)
	assert.Equal(t, int64(0), balance)
	assert.Equal(t, feeModel.FeeStatusPaid, status)

	// amount = paid + balance holds after a discounted partial payment
	paid, balance, _, err = ApplyCredit(50_000_00, 0, 50_000_00, 10_000_00, 5_000_00)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_00), paid+balance)
}

func TestApplyCredit_FreeCouponZeroCash(t *testing.T) {
	paid, balance, status, err := ApplyCredit(50_000_00, 0, 50_000_00, 0, 50_000_00)
	require.NoError(t, err)
	assert.Equal(t, int64(50_000_00), paid)
	assert.Equal(t, int64(0), balance)
	assert.Equal(t, feeModel.FeeStatusPaid, status)
}

func TestApplyCredit_Rejections(t *testing.T) {
	// zero with no discount
	_, _, _, err := ApplyCredit(50_000_00, 0, 50_000_00, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// negative cash
	_, _, _, err = ApplyCredit(50_000_00, 0, 50_000_00, -100, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// over the outstanding balance
	_, _, _, err = ApplyCredit(50_000_00, 20_000_00, 30_000_00, 30_000_01, 0)
	assert.ErrorIs(t, err, ErrAmountExceedsBalance)

	// cash plus discount over the balance
	_, _, _, err = ApplyCredit(50_000_00, 0, 50_000_00, 48_000_00, 5_000_00)
	assert.ErrorIs(t, err, ErrAmountExceedsBalance)

	// nothing outstanding
	_, _, _, err = ApplyCredit(50_000_00, 50_000_00, 0, 1, 0)
	assert.ErrorIs(t, err, ErrAmountExceedsBalance)
}
