package statement

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contavel-dev/contavel/internal/dates"
	"github.com/contavel-dev/contavel/internal/model"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	scheduled := dates.New(2025, time.July, 1)
	txns := []*model.Transaction{
		{
			ID:            uuid.New(),
			Amount:        decimal.NewFromInt(150),
			IssueDate:     dates.New(2025, time.June, 15),
			ScheduledDate: &scheduled,
			Origin:        "00001-9",
			Destination:   "00002-7",
			Description:   "aluguel",
		},
		{
			ID:          uuid.New(),
			Amount:      decimal.RequireFromString("99.90"),
			IssueDate:   dates.New(2025, time.June, 10),
			Origin:      "00001-9",
			Destination: "00003-5",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, txns))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, txns[0].ID, got[0].ID)
	require.NotNil(t, got[0].ScheduledDate)
	assert.Equal(t, "01/07/2025", got[0].ScheduledDate.String())
	assert.Equal(t, "aluguel", got[0].Description)

	assert.Nil(t, got[1].ScheduledDate)
	assert.Equal(t, "99.9", got[1].Amount.String())
	assert.Equal(t, "10/06/2025", got[1].IssueDate.String())
}

func TestWrite_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, Header, strings.TrimSpace(buf.String()))
}

func TestRead_BadRow(t *testing.T) {
	in := Header + "\nnot-a-uuid,15/06/2025,,100,00001-9,00002-7,x\n"
	_, err := Read(strings.NewReader(in))
	assert.Error(t, err)
}
