package ecotrack

import (
	"context"
	"fmt"
	"strings"
)

// AddTransaction records a gain (positive amount) or a cost (negative amount)
// dated today, and applies it to the profile balance.
//
// An empty description is rejected with ErrInvalid and nothing changes.
func (s *Store) AddTransaction(ctx context.Context, description string, amount Money) (Transaction, error) {
	tx := Transaction{
		Date:        s.today(),
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	err := s.mutate(ctx, "add transaction", func(st *State) error {
		if err := check(tx); err != nil {
			return err
		}
		tx.ID = s.newID()
		st.record(tx)
		return nil
	})
	if err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// AddTransactions records a batch of transactions, typically read from a
// journal, and applies them to the balance. Either all of them are recorded
// or none.
//
// Transactions without a date are dated today. Ids are always fresh.
func (s *Store) AddTransactions(ctx context.Context, txs []Transaction) ([]Transaction, error) {
	added := make([]Transaction, 0, len(txs))
	err := s.mutate(ctx, "add transactions", func(st *State) error {
		for i, tx := range txs {
			tx.Description = strings.TrimSpace(tx.Description)
			if tx.Date.IsZero() {
				tx.Date = s.today()
			}
			if err := check(tx); err != nil {
				return fmt.Errorf("transaction #%d: %w", i+1, err)
			}
			tx.ID = s.newID()
			st.record(tx)
			added = append(added, tx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// record appends tx and applies it to the balance. It is the only place the
// balance follows the history.
func (st *State) record(tx Transaction) {
	st.Transactions = append(st.Transactions, tx)
	st.Profile.Balance = st.Profile.Balance.Add(tx.Amount)
}

// ClearHistory forgets every transaction. The balance is kept as is: it is
// not derived from the history.
func (s *Store) ClearHistory(ctx context.Context) error {
	return s.mutate(ctx, "clear history", func(st *State) error {
		st.Transactions = []Transaction{}
		return nil
	})
}
