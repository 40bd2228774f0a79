// Package store keeps the open accounts of a branch in memory, indexed by
// account number, and persists them as CSV books. It only ever calls the
// account aggregate's public operations; durability guarantees stop at
// "what was saved last".
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/contavel-dev/contavel/internal/account"
	"github.com/contavel-dev/contavel/internal/clients"
	"github.com/contavel-dev/contavel/internal/id"
	"github.com/contavel-dev/contavel/internal/model"
	"github.com/contavel-dev/contavel/internal/statement"
	"github.com/contavel-dev/contavel/internal/tier"
)

// ErrNotFound is returned when an account number is not registered.
var ErrNotFound = errors.New("account not found")

const (
	booksFile     = "accounts.csv"
	scheduleFile  = "schedule.csv"
	statementsDir = "statements"
)

// Store is the account registry. The mutex serializes registry access;
// mutations on an individual account are still the caller's to serialize.
type Store struct {
	mu       sync.Mutex
	nextSeq  int
	accounts map[string]*account.Account
	owners   map[string]*clients.Client
	order    []string
}

// New returns an empty registry.
func New() *Store {
	return &Store{
		accounts: make(map[string]*account.Account),
		owners:   make(map[string]*clients.Client),
	}
}

// Open registers a new zero-balance account for owner at the given tier.
func (s *Store) Open(owner *clients.Client, t tier.Tier) *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	number := id.FormatAccountNumber(s.nextSeq)
	a := account.New(number, t)
	s.register(a, owner)
	return a
}

// Get returns the account registered under number.
func (s *Store) Get(number string) (*account.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, number)
	}
	return a, nil
}

// Owner returns the client who holds the account, if registered.
func (s *Store) Owner(number string) (*clients.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.owners[number]
	return c, ok
}

// All returns the registered accounts in opening order.
func (s *Store) All() []*account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*account.Account, 0, len(s.order))
	for _, number := range s.order {
		out = append(out, s.accounts[number])
	}
	return out
}

// Load reads the books from dir and returns the populated registry. A
// missing books file yields an empty registry, so a fresh data dir works.
func Load(dir string) (*Store, error) {
	s := New()

	f, err := os.Open(filepath.Join(dir, booksFile))
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening books: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading books: %w", err)
	}

	for _, row := range rows {
		seq, err := id.ParseAccountNumber(row.Number)
		if err != nil {
			return nil, fmt.Errorf("restoring account: %w", err)
		}
		a, owner, err := restore(row)
		if err != nil {
			return nil, fmt.Errorf("restoring account %s: %w", row.Number, err)
		}
		s.register(a, owner)
		if seq > s.nextSeq {
			s.nextSeq = seq
		}
	}

	if err := s.loadStatements(dir); err != nil {
		return nil, err
	}
	if err := s.loadSchedule(dir); err != nil {
		return nil, err
	}
	return s, nil
}

// loadStatements replays each account's persisted statement into its
// history. Both ends of a transfer carry the same transaction in their own
// statement files, so each history replays independently.
func (s *Store) loadStatements(dir string) error {
	for number, a := range s.accounts {
		path := filepath.Join(dir, statementsDir, number+".csv")
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("opening statement %s: %w", path, err)
		}

		txns, err := statement.Read(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reading statement %s: %w", path, err)
		}
		for _, t := range txns {
			if err := a.History().AddTransaction(t); err != nil {
				return fmt.Errorf("replaying statement %s: %w", path, err)
			}
		}
	}
	return nil
}

// loadSchedule re-registers pending scheduled transfers, resolving the
// destination account by number.
func (s *Store) loadSchedule(dir string) error {
	f, err := os.Open(filepath.Join(dir, scheduleFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening schedule: %w", err)
	}
	defer f.Close()

	txns, err := statement.Read(f)
	if err != nil {
		return fmt.Errorf("reading schedule: %w", err)
	}
	for _, t := range txns {
		origin, ok := s.accounts[t.Origin]
		if !ok {
			return fmt.Errorf("schedule references %w: %s", ErrNotFound, t.Origin)
		}
		dest, ok := s.accounts[t.Destination]
		if !ok {
			return fmt.Errorf("schedule references %w: %s", ErrNotFound, t.Destination)
		}
		origin.RestorePending(t, dest)
	}
	return nil
}

// Save writes the books to dir, creating it if needed.
func (s *Store) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, booksFile))
	if err != nil {
		return fmt.Errorf("creating books: %w", err)
	}
	defer f.Close()

	s.mu.Lock()
	rows := make([]Row, 0, len(s.order))
	for _, number := range s.order {
		rows = append(rows, marshalAccount(s.accounts[number], s.owners[number]))
	}
	s.mu.Unlock()

	if err := WriteRows(f, rows); err != nil {
		return fmt.Errorf("writing books: %w", err)
	}

	if err := s.saveStatements(dir); err != nil {
		return err
	}
	return s.saveSchedule(dir)
}

func (s *Store) saveStatements(dir string) error {
	if err := os.MkdirAll(filepath.Join(dir, statementsDir), 0o755); err != nil {
		return fmt.Errorf("creating statements dir: %w", err)
	}
	for _, a := range s.All() {
		path := filepath.Join(dir, statementsDir, a.Number()+".csv")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating statement %s: %w", path, err)
		}
		err = statement.Write(f, a.History().Transactions())
		f.Close()
		if err != nil {
			return fmt.Errorf("writing statement %s: %w", path, err)
		}
	}
	return nil
}

func (s *Store) saveSchedule(dir string) error {
	var pending []*model.Transaction
	for _, a := range s.All() {
		pending = append(pending, a.PendingTransactions()...)
	}

	f, err := os.Create(filepath.Join(dir, scheduleFile))
	if err != nil {
		return fmt.Errorf("creating schedule: %w", err)
	}
	defer f.Close()

	if err := statement.Write(f, pending); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}
	return nil
}

// register assumes s.mu is held or the store is not yet shared.
func (s *Store) register(a *account.Account, owner *clients.Client) {
	s.accounts[a.Number()] = a
	s.owners[a.Number()] = owner
	s.order = append(s.order, a.Number())
}
