package ecotrack

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseShopForm builds a listing from raw form values.
//
// Numeric fields that do not parse, and negative stocks, count as zero. A
// fractional stock is truncated. The listing is validated by AddShop, not here.
func ParseShopForm(itemName, cost, price, stock, notes string) ShopListing {
	return ShopListing{
		ItemName: strings.TrimSpace(itemName),
		Cost:     parseMoneyOrZero(cost),
		Price:    parseMoneyOrZero(price),
		Stock:    parseStock(stock),
		Notes:    strings.TrimSpace(notes),
	}
}

var maxStock = decimal.NewFromInt(math.MaxInt32)

func parseStock(s string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() || d.GreaterThan(maxStock) {
		return 0
	}
	return int(d.IntPart())
}

// AddShop appends a new listing. Its ID is ignored and replaced by a fresh one.
//
// A listing without an item name, or with a negative cost or stock, is
// rejected with ErrInvalid.
func (s *Store) AddShop(ctx context.Context, listing ShopListing) (ShopListing, error) {
	listing.ItemName = strings.TrimSpace(listing.ItemName)
	err := s.mutate(ctx, "add shop", func(st *State) error {
		if err := check(listing); err != nil {
			return err
		}
		listing.ID = s.newID()
		st.Shops = append(st.Shops, listing)
		return nil
	})
	if err != nil {
		return ShopListing{}, err
	}
	return listing, nil
}

// EditShop overwrites the price and stock of a listing.
func (s *Store) EditShop(ctx context.Context, id int64, price Money, stock int) error {
	return s.mutate(ctx, "edit shop", func(st *State) error {
		i := slices.IndexFunc(st.Shops, func(l ShopListing) bool { return l.ID == id })
		if i < 0 {
			return fmt.Errorf("shop %d: %w", id, ErrNotFound)
		}
		edited := st.Shops[i]
		edited.Price, edited.Stock = price, stock
		if err := check(edited); err != nil {
			return err
		}
		st.Shops[i] = edited
		return nil
	})
}

// QuickSellOne sells a single unit of a listing: the stock is decremented and
// a sale transaction for the listing price is recorded.
//
// A listing with no stock left is not changed and ErrRestockNeeded is returned.
func (s *Store) QuickSellOne(ctx context.Context, id int64) (Transaction, error) {
	var sale Transaction
	err := s.mutate(ctx, "quick sell", func(st *State) error {
		i := slices.IndexFunc(st.Shops, func(l ShopListing) bool { return l.ID == id })
		if i < 0 {
			return fmt.Errorf("shop %d: %w", id, ErrNotFound)
		}
		listing := &st.Shops[i]
		if listing.Stock <= 0 {
			return fmt.Errorf("%q is out of stock: %w", listing.ItemName, ErrRestockNeeded)
		}
		listing.Stock--
		sale = Transaction{
			ID:          s.newID(),
			Date:        s.today(),
			Description: fmt.Sprintf("Sold 1x %s", listing.ItemName),
			Amount:      listing.Price,
		}
		st.record(sale)
		return nil
	})
	if err != nil {
		return Transaction{}, err
	}
	return sale, nil
}

// DeleteShop removes a listing. Deleting an unknown id does nothing.
func (s *Store) DeleteShop(ctx context.Context, id int64) error {
	if !slices.ContainsFunc(s.state.Shops, func(l ShopListing) bool { return l.ID == id }) {
		return nil
	}
	return s.mutate(ctx, "delete shop", func(st *State) error {
		st.Shops = slices.DeleteFunc(st.Shops, func(l ShopListing) bool { return l.ID == id })
		return nil
	})
}
