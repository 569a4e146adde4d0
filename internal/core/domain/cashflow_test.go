package domain_test

import (
	"testing"

	"github.com/buffetjuniors/buffet_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCashFlowEntry_IsManual(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.CashFlowEntry
		want  bool
	}{
		{
			name: "manual entry carries no source ids",
			entry: domain.CashFlowEntry{
				PaymentID: nil,
				ExpenseID: nil,
			},
			want: true,
		},
		{
			name: "entry derived from a payment",
			entry: domain.CashFlowEntry{
				PaymentID: stringPtr("pay-123"),
				ExpenseID: nil,
			},
			want: false,
		},
		{
			name: "entry derived from an expense",
			entry: domain.CashFlowEntry{
				PaymentID: nil,
				ExpenseID: stringPtr("exp-123"),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.IsManual())
		})
	}
}

// Helper functions
func stringPtr(s string) *string {
	return &s
}
