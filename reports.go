package ecotrack

import (
	"slices"

	"github.com/etnz/ecotrack/date"
)

// InventoryValue returns what all the shop stocks are worth at listing price.
func (st State) InventoryValue() Money {
	var total Money
	for _, s := range st.Shops {
		total = total.Add(s.Value())
	}
	return total
}

// NetWorth returns the balance plus the inventory value.
func (st State) NetWorth() Money {
	return st.Profile.Balance.Add(st.InventoryValue())
}

// TotalProfit returns the sum of all recorded transactions.
func (st State) TotalProfit() Money {
	var total Money
	for _, tx := range st.Transactions {
		total = total.Add(tx.Amount)
	}
	return total
}

// RecentTransactions returns the last n transactions, newest first.
func (st State) RecentTransactions(n int) []Transaction {
	start := len(st.Transactions) - min(max(n, 0), len(st.Transactions))
	recent := slices.Clone(st.Transactions[start:])
	slices.Reverse(recent)
	return recent
}

// BalancePoint is the balance right after a transaction.
type BalancePoint struct {
	Date    date.Date `json:"date"`
	Balance Money     `json:"balance"`
}

// BalanceHistory reconstructs the balance after each transaction, in
// chronological order.
//
// Nothing records past balances, so they are inferred backwards: starting
// from the current balance, each transaction amount is subtracted to find the
// balance before it. The result is an approximation that ignores any change
// of the balance that was not recorded as a transaction.
func (st State) BalanceHistory() []BalancePoint {
	points := make([]BalancePoint, len(st.Transactions))
	running := st.Profile.Balance
	for i := len(st.Transactions) - 1; i >= 0; i-- {
		tx := st.Transactions[i]
		points[i] = BalancePoint{Date: tx.Date, Balance: running}
		running = running.Sub(tx.Amount)
	}
	return points
}

// OpeningBalance returns the balance inferred before the first transaction.
func (st State) OpeningBalance() Money {
	return st.Profile.Balance.Sub(st.TotalProfit())
}
