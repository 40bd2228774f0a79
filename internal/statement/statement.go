// Package statement renders an account's transaction history as CSV
// statement rows and reads them back.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contavel-dev/contavel/internal/dates"
	"github.com/contavel-dev/contavel/internal/model"
)

// Header is the CSV header for statement.csv.
const Header = "transaction_id,issue_date,scheduled_date,amount,origin,destination,description"

const (
	numFields    = 7
	colID        = 0
	colIssued    = 1
	colScheduled = 2
	colAmount    = 3
	colOrigin    = 4
	colDest      = 5
	colDesc      = 6
)

// Write writes transactions as statement rows, header included. History
// order is preserved, so statements read most recent first.
func Write(w io.Writer, txns []*model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		if err := cw.Write(marshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Read reads all transactions from a statement reader.
func Read(r io.Reader) ([]*model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var txns []*model.Transaction
	for i, rec := range records[1:] {
		t, err := unmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func marshalTransaction(t *model.Transaction) []string {
	rec := make([]string, numFields)
	rec[colID] = t.ID.String()
	rec[colIssued] = t.IssueDate.String()
	if t.ScheduledDate != nil {
		rec[colScheduled] = t.ScheduledDate.String()
	}
	rec[colAmount] = t.Amount.String()
	rec[colOrigin] = t.Origin
	rec[colDest] = t.Destination
	rec[colDesc] = t.Description
	return rec
}

func unmarshalTransaction(rec []string) (*model.Transaction, error) {
	txnID, err := uuid.Parse(rec[colID])
	if err != nil {
		return nil, fmt.Errorf("parsing transaction id %q: %w", rec[colID], err)
	}

	issued, err := dates.Parse(rec[colIssued])
	if err != nil {
		return nil, err
	}

	var scheduled *dates.Date
	if rec[colScheduled] != "" {
		d, err := dates.Parse(rec[colScheduled])
		if err != nil {
			return nil, err
		}
		scheduled = &d
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	return &model.Transaction{
		ID:            txnID,
		Amount:        amount,
		IssueDate:     issued,
		ScheduledDate: scheduled,
		Origin:        rec[colOrigin],
		Destination:   rec[colDest],
		Description:   rec[colDesc],
	}, nil
}
