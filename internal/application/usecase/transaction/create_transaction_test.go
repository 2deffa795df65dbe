package transaction

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/Felipaof/My-Fluxo-Finance/internal/domain/error"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
		wantErr  bool
	}{
		{name: "cents", amount: "7.90", expected: "7.90"},
		{name: "rounds to cents", amount: "10.005", expected: "10.01"},
		{name: "largest storable", amount: "9999999999.99", expected: "9999999999.99"},
		{name: "zero", amount: "0", wantErr: true},
		{name: "negative", amount: "-5", wantErr: true},
		{name: "rounds to zero", amount: "0.004", wantErr: true},
		{name: "above column limit", amount: "10000000000", wantErr: true},
		{name: "rounds above column limit", amount: "9999999999.995", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := validateAmount(decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				var txnErr *domainerror.TransactionError
				require.True(t, errors.As(err, &txnErr))
				assert.Equal(t, domainerror.ErrCodeInvalidTransactionAmount, txnErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.StringFixed(2))
		})
	}
}
