package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contavel-dev/contavel/internal/store"
	"github.com/contavel-dev/contavel/internal/validate"
)

// initBranch sets up a data dir with one standard-tier account and returns
// its number.
func initBranch(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, runInit(io.Discard, dir, "Banco Exemplo", "0001"))
	require.NoError(t, runOpen(io.Discard, dir,
		"Ana Souza", "ana@example.com", "123.456.789-09", "(11) 91234-5678", ""))
	return dir, "00001-9"
}

func TestRunOpen(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(io.Discard, dir, "Banco Exemplo", "0001"))

	var out bytes.Buffer
	err := runOpen(&out, dir, "Ana Souza", "ana@example.com", "123.456.789-09", "(11) 91234-5678", "premium")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "premium account 00001-9")

	s, err := store.Load(dir)
	require.NoError(t, err)
	assert.Len(t, s.All(), 1)
}

func TestRunOpen_RejectsBadFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(io.Discard, dir, "Banco Exemplo", "0001"))

	err := runOpen(io.Discard, dir, "Ana", "not-an-email", "123.456.789-09", "(11) 91234-5678", "")
	assert.Error(t, err)

	err = runOpen(io.Discard, dir, "Ana", "ana@example.com", "123.456.789-09", "(11) 91234-5678", "gold")
	assert.Error(t, err, "unknown tier")
}

func TestRunDeposit(t *testing.T) {
	dir, number := initBranch(t)

	var out bytes.Buffer
	require.NoError(t, runDeposit(&out, dir, number, "500"))
	assert.Contains(t, out.String(), "balance: 500")

	// Persisted across process boundaries.
	s, err := store.Load(dir)
	require.NoError(t, err)
	a, err := s.Get(number)
	require.NoError(t, err)
	assert.Equal(t, "500", a.Balance().String())
	assert.Equal(t, "500", a.TotalDeposited().String())
}

func TestRunDeposit_TierCeiling(t *testing.T) {
	dir, number := initBranch(t)

	err := runDeposit(io.Discard, dir, number, "1001")

	var limitErr *validate.DepositLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, "1000", limitErr.Ceiling.String())
}

func TestRunTransfer(t *testing.T) {
	dir, from := initBranch(t)
	require.NoError(t, runOpen(io.Discard, dir,
		"Bruno Lima", "bruno@example.com", "987.654.321-00", "(21) 99876-5432", ""))
	to := "00002-7"
	require.NoError(t, runDeposit(io.Discard, dir, from, "500"))

	var out bytes.Buffer
	require.NoError(t, runTransfer(&out, dir, from, to, "150", ""))
	assert.Contains(t, out.String(), "Transferred 150")

	s, err := store.Load(dir)
	require.NoError(t, err)
	origin, _ := s.Get(from)
	dest, _ := s.Get(to)
	assert.Equal(t, "350", origin.Balance().String())
	assert.Equal(t, "150", dest.Balance().String())
	assert.Len(t, origin.History().Transactions(), 1)
	assert.Len(t, dest.History().Transactions(), 1)
}

func TestRunTransfer_InsufficientBalance(t *testing.T) {
	dir, from := initBranch(t)
	require.NoError(t, runOpen(io.Discard, dir,
		"Bruno Lima", "bruno@example.com", "987.654.321-00", "(21) 99876-5432", ""))

	err := runTransfer(io.Discard, dir, from, "00002-7", "100", "")

	var amountErr *validate.AmountError
	assert.ErrorAs(t, err, &amountErr)
}

func TestRunTransfer_Scheduled(t *testing.T) {
	dir, from := initBranch(t)
	require.NoError(t, runOpen(io.Discard, dir,
		"Bruno Lima", "bruno@example.com", "987.654.321-00", "(21) 99876-5432", ""))
	to := "00002-7"
	require.NoError(t, runDeposit(io.Discard, dir, from, "500"))

	require.NoError(t, runTransfer(io.Discard, dir, from, to, "100", "31/12/2099"))

	s, err := store.Load(dir)
	require.NoError(t, err)
	origin, _ := s.Get(from)
	assert.Equal(t, "500", origin.Balance().String(), "nothing settles before the date")
	assert.Len(t, origin.PendingTransactions(), 1)

	// An impossible calendar date is rejected.
	err = runTransfer(io.Discard, dir, from, to, "100", "32/12/2099")
	assert.Error(t, err)
}
