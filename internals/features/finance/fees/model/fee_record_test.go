// file: internals/features/finance/fees/model/fee_record_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFeeStatus(t *testing.T) {
	cases := []struct {
		name    string
		paid    int64
		balance int64
		want    FeeStatus
	}{
		{"nothing paid", 0, 50_000_00, FeeStatusUnpaid},
		{"part paid", 20_000_00, 30_000_00, FeeStatusPartial},
		{"settled", 50_000_00, 0, FeeStatusPaid},
		{"settled by discount only", 0, 0, FeeStatusPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveFeeStatus(tc.paid, tc.balance))
		})
	}
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	unpaidOverdue := FeeRecord{FeeRecordStatus: FeeStatusUnpaid, FeeRecordDueDate: &past}
	assert.Equal(t, FeeStatusOverdue, unpaidOverdue.EffectiveStatus(now))

	partialOverdue := FeeRecord{FeeRecordStatus: FeeStatusPartial, FeeRecordDueDate: &past}
	assert.Equal(t, FeeStatusOverdue, partialOverdue.EffectiveStatus(now))

	// paid fees never go overdue
	paid := FeeRecord{FeeRecordStatus: FeeStatusPaid, FeeRecordDueDate: &past}
	assert.Equal(t, FeeStatusPaid, paid.EffectiveStatus(now))

	notYetDue := FeeRecord{FeeRecordStatus: FeeStatusUnpaid, FeeRecordDueDate: &future}
	assert.Equal(t, FeeStatusUnpaid, notYetDue.EffectiveStatus(now))

	noDueDate := FeeRecord{FeeRecordStatus: FeeStatusPartial}
	assert.Equal(t, FeeStatusPartial, noDueDate.EffectiveStatus(now))
}
