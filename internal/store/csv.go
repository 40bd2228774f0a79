package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/account"
	"github.com/contavel-dev/contavel/internal/clients"
	"github.com/contavel-dev/contavel/internal/tier"
)

// Header is the CSV header for accounts.csv.
const Header = "number,owner_name,owner_email,owner_cpf,owner_phone,tier,balance,loan,loan_installment,saved_funds,total_deposited"

const (
	numFields      = 11
	colNumber      = 0
	colOwnerName   = 1
	colOwnerEmail  = 2
	colOwnerCPF    = 3
	colOwnerPhone  = 4
	colTier        = 5
	colBalance     = 6
	colLoan        = 7
	colInstallment = 8
	colSaved       = 9
	colDeposited   = 10
)

// Row is one persisted account record.
type Row struct {
	Number      string
	Owner       clients.Client
	Tier        string
	Balance     string
	Loan        string
	Installment string
	Saved       string
	Deposited   string
}

// ReadRows reads all account rows from an accounts.csv reader.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []Row
	for i, rec := range records[1:] {
		row, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes account rows to an accounts.csv writer, header included.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(marshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colNumber] = row.Number
	rec[colOwnerName] = row.Owner.Name
	rec[colOwnerEmail] = row.Owner.Email
	rec[colOwnerCPF] = row.Owner.CPF
	rec[colOwnerPhone] = row.Owner.Phone
	rec[colTier] = row.Tier
	rec[colBalance] = row.Balance
	rec[colLoan] = row.Loan
	rec[colInstallment] = row.Installment
	rec[colSaved] = row.Saved
	rec[colDeposited] = row.Deposited
	return rec
}

func unmarshalRow(rec []string) (Row, error) {
	if len(rec) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(rec))
	}
	return Row{
		Number: rec[colNumber],
		Owner: clients.Client{
			Name:  rec[colOwnerName],
			Email: rec[colOwnerEmail],
			CPF:   rec[colOwnerCPF],
			Phone: rec[colOwnerPhone],
		},
		Tier:        rec[colTier],
		Balance:     rec[colBalance],
		Loan:        rec[colLoan],
		Installment: rec[colInstallment],
		Saved:       rec[colSaved],
		Deposited:   rec[colDeposited],
	}, nil
}

func marshalAccount(a *account.Account, owner *clients.Client) Row {
	row := Row{
		Number:      a.Number(),
		Tier:        a.Tier().String(),
		Balance:     a.Balance().String(),
		Loan:        a.Loan().String(),
		Installment: a.LoanInstallment().String(),
		Saved:       a.SavedFunds().String(),
		Deposited:   a.TotalDeposited().String(),
	}
	if owner != nil {
		row.Owner = *owner
	}
	return row
}

func restore(row Row) (*account.Account, *clients.Client, error) {
	t, ok := tier.Parse(row.Tier)
	if !ok {
		return nil, nil, fmt.Errorf("unknown tier %q", row.Tier)
	}

	amounts := make([]decimal.Decimal, 5)
	for i, raw := range []string{row.Balance, row.Loan, row.Installment, row.Saved, row.Deposited} {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing amount %q: %w", raw, err)
		}
		amounts[i] = d
	}

	a := account.Restore(row.Number, t, amounts[0], amounts[1], amounts[2], amounts[3], amounts[4])
	owner := row.Owner
	return a, &owner, nil
}
