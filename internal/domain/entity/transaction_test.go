package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionSignedAmount(t *testing.T) {
	amount := decimal.RequireFromString("42.50")

	in := NewTransaction(uuid.New(), "Pix", amount, DirectionIn, nil, time.Now())
	out := NewTransaction(uuid.New(), "Feira", amount, DirectionOut, nil, time.Now())

	assert.True(t, in.SignedAmount().Equal(amount))
	assert.True(t, out.SignedAmount().Equal(amount.Neg()))
}

func TestNewTransactionStoresUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	occurredAt := time.Date(2026, time.March, 5, 22, 0, 0, 0, loc)

	tx := NewTransaction(uuid.New(), "Pix", decimal.NewFromInt(1), DirectionIn, nil, occurredAt)

	assert.Equal(t, time.UTC, tx.OccurredAt.Location())
	assert.Equal(t, 6, tx.OccurredAt.Day())
}

func TestDirection(t *testing.T) {
	assert.True(t, DirectionIn.IsValid())
	assert.True(t, DirectionOut.IsValid())
	assert.False(t, Direction("sideways").IsValid())

	assert.Equal(t, "Receita", DirectionIn.Label())
	assert.Equal(t, "Despesa", DirectionOut.Label())
}
