package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyIsEncodedAsNumber(t *testing.T) {
	body, err := json.Marshal(AppliedPaymentResponseDTO{
		PaymentResponseDTO: PaymentResponseDTO{ID: 7, AmountDue: decimal.RequireFromString("5000"), AmountPaid: decimal.RequireFromString("100.50")},
		AmountReceived:     decimal.RequireFromString("100.50"),
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, 100.5, raw["amount_received"])
	assert.Equal(t, 100.5, raw["amount_paid"])
	assert.Equal(t, float64(5000), raw["amount_due"])
}

func TestAmountDecodesFromNumberOrString(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "number", body: `{"amount":100.50}`},
		{name: "string", body: `{"amount":"100.50"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ApplyPaymentRequestDTO
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.True(t, decimal.RequireFromString("100.5").Equal(req.Amount))
		})
	}
}

func TestParseDate(t *testing.T) {
	s := "2024-03-10"
	d, err := ParseDate(&s)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *d)

	d, err = ParseDate(nil)
	assert.NoError(t, err)
	assert.Nil(t, d)

	bad := "10/03/2024"
	_, err = ParseDate(&bad)
	assert.Error(t, err)
}
