package ecotrack

import (
	"slices"

	"github.com/etnz/ecotrack/date"
)

// Profile identifies the player and holds the current balance.
type Profile struct {
	DisplayName string `json:"displayName" validate:"required"`
	Balance     Money  `json:"balance"`
}

// Transaction is a single movement of the balance.
//
// Amount is positive for a gain and negative for a cost.
type Transaction struct {
	ID          int64     `json:"id"`
	Date        date.Date `json:"date"`
	Description string    `json:"description" validate:"required"`
	Amount      Money     `json:"amount"`
}

// ShopListing is an item the player sells in an in-game shop.
type ShopListing struct {
	ID       int64  `json:"id"`
	ItemName string `json:"itemName" validate:"required"`
	Cost     Money  `json:"cost" validate:"gte=0"`
	Price    Money  `json:"price"`
	Stock    int    `json:"stock" validate:"gte=0"`
	Notes    string `json:"notes,omitempty"`
}

// Profit returns the gain made on a single unit sold.
func (s ShopListing) Profit() Money { return s.Price.Sub(s.Cost) }

// MarginPercent returns the profit as a whole percentage of the cost.
//
// A listing with no cost has a margin of 0.
func (s ShopListing) MarginPercent() Percent {
	r, ok := s.Profit().Ratio(s.Cost)
	if !ok {
		return 0
	}
	return Percent(r.Shift(2).Round(0).IntPart())
}

// Value returns what the remaining stock is worth at the listing price.
func (s ShopListing) Value() Money { return s.Price.MulInt(s.Stock) }

// IntelEntry tracks a competitor.
type IntelEntry struct {
	ID     int64  `json:"id"`
	Name   string `json:"name" validate:"required"`
	Coords string `json:"coords,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Note is a free-form wiki or journal entry.
type Note struct {
	ID    int64  `json:"id"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body,omitempty"`
}

// State is the whole application state, as persisted in a snapshot.
//
// Sequences are kept in creation order.
type State struct {
	Profile      Profile       `json:"profile"`
	Transactions []Transaction `json:"transactions"`
	Shops        []ShopListing `json:"shops"`
	Intel        []IntelEntry  `json:"intel"`
	Notes        []Note        `json:"notes"`
}

// DefaultState returns the state of a brand new tracker: no name, a zero
// balance and empty sequences.
func DefaultState() State {
	return State{}.normalized()
}

// Clone returns a deep copy of st.
func (st State) Clone() State {
	st.Transactions = slices.Clone(st.Transactions)
	st.Shops = slices.Clone(st.Shops)
	st.Intel = slices.Clone(st.Intel)
	st.Notes = slices.Clone(st.Notes)
	return st.normalized()
}

// normalized replaces nil sequences with empty ones so that a state always
// encodes its sequences as arrays.
func (st State) normalized() State {
	if st.Transactions == nil {
		st.Transactions = []Transaction{}
	}
	if st.Shops == nil {
		st.Shops = []ShopListing{}
	}
	if st.Intel == nil {
		st.Intel = []IntelEntry{}
	}
	if st.Notes == nil {
		st.Notes = []Note{}
	}
	return st
}

// Shop returns the listing with id.
func (st State) Shop(id int64) (ShopListing, bool) {
	i := slices.IndexFunc(st.Shops, func(s ShopListing) bool { return s.ID == id })
	if i < 0 {
		return ShopListing{}, false
	}
	return st.Shops[i], true
}

// maxID returns the largest id in use, across all sequences.
func (st State) maxID() int64 {
	var m int64
	for _, tx := range st.Transactions {
		m = max(m, tx.ID)
	}
	for _, s := range st.Shops {
		m = max(m, s.ID)
	}
	for _, c := range st.Intel {
		m = max(m, c.ID)
	}
	for _, n := range st.Notes {
		m = max(m, n.ID)
	}
	return m
}
