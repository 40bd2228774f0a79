package wallet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contavel-dev/contavel/internal/model"
)

func card(limit int64) model.Card {
	return model.Card{ID: uuid.New(), MaxLimit: decimal.NewFromInt(limit)}
}

func TestAddCard_Deduplicates(t *testing.T) {
	w := New()
	c := card(1500)

	w.AddCard(c)
	w.AddCard(c)

	assert.Len(t, w.Cards(), 1)
}

func TestDecreaseAvailableLimit_GrowsInvoice(t *testing.T) {
	w := New()
	w.DecreaseAvailableLimit(decimal.NewFromInt(200))
	assert.Equal(t, "200", w.Invoice().String())
}

func TestIncreaseAvailableLimit_ShrinksInvoice(t *testing.T) {
	w := New()
	w.DecreaseAvailableLimit(decimal.NewFromInt(200))
	w.IncreaseAvailableLimit(decimal.NewFromInt(50))
	assert.Equal(t, "150", w.Invoice().String())
}

func TestIncreaseAvailableLimit_FloorsAtZero(t *testing.T) {
	w := New()
	w.DecreaseAvailableLimit(decimal.NewFromInt(100))
	w.IncreaseAvailableLimit(decimal.NewFromInt(250))
	assert.True(t, w.Invoice().IsZero(), "invoice never goes negative")
}

func TestMaxLimit(t *testing.T) {
	w := New()

	_, err := w.MaxLimit()
	assert.ErrorIs(t, err, ErrNoCard)

	w.AddCard(card(1500))
	w.AddCard(card(30000))
	w.AddCard(card(15000))

	max, err := w.MaxLimit()
	require.NoError(t, err)
	assert.Equal(t, "30000", max.String())
}

func TestRemainingLimit(t *testing.T) {
	w := New()

	_, err := w.RemainingLimit()
	assert.ErrorIs(t, err, ErrNoCard)

	w.AddCard(card(1000))
	w.DecreaseAvailableLimit(decimal.NewFromInt(300))

	remaining, err := w.RemainingLimit()
	require.NoError(t, err)
	assert.Equal(t, "700", remaining.String())
}

func TestSetAutoDebit(t *testing.T) {
	w := New()

	w.SetAutoDebit(true, 10)
	enabled, day := w.AutoDebit()
	assert.True(t, enabled)
	assert.Equal(t, 10, day)

	// Day zero forces auto-debit off no matter the flag.
	w.SetAutoDebit(true, 0)
	enabled, day = w.AutoDebit()
	assert.False(t, enabled)
	assert.Equal(t, 0, day)

	w.SetAutoDebit(true, 5)
	w.SetAutoDebit(false, 5)
	enabled, _ = w.AutoDebit()
	assert.False(t, enabled)
}
