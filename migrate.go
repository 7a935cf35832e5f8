package ecotrack

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ecotrack/date"
)

// Earlier releases stored an unversioned snapshot:
//
//	{
//	  "profile": {"ign": "Steve", "balance": 50000},
//	  "transactions": [{"id": 1, "date": "2023-10-01", "desc": "Sold Diamond Stack", "amount": 5000}],
//	  "shops": [{"id": 1, "item": "Netherite Ingot", "cost": 1000, "price": 1500, "stock": 5, "notes": "..."}],
//	  "competitors": [{"id": 1, "name": "RichGuy123", "notes": "..."}],
//	  "wiki": [], "journal": [], "settings": {"firstSetup": true}
//	}
//
// The migration maps ign to displayName, desc to description, item to
// itemName, competitors to intel, and both wiki and journal entries to notes.
// settings has no counterpart and is dropped. Absent or null fields take their
// zero value; entities without an id get one when the store loads them.

// isLegacy reports whether doc is a snapshot without a numeric version.
func isLegacy(doc any) bool {
	v, err := jsonpath.Get("$.version", doc)
	if err != nil {
		return true
	}
	_, ok := v.(json.Number)
	return !ok
}

func migrateLegacy(doc any) (State, error) {
	st := DefaultState()

	st.Profile.DisplayName = firstString(doc, "$.profile.displayName", "$.profile.ign")
	if v, err := jsonpath.Get("$.profile.balance", doc); err == nil {
		b, err := legacyMoney(v)
		if err != nil {
			return State{}, fmt.Errorf("profile balance: %w", err)
		}
		st.Profile.Balance = b
	}

	for i, item := range objects(doc, "$.transactions") {
		amount, err := legacyMoney(item["amount"])
		if err != nil {
			return State{}, fmt.Errorf("transaction #%d: %w", i, err)
		}
		st.Transactions = append(st.Transactions, Transaction{
			ID:          legacyID(item["id"]),
			Date:        legacyDate(item["date"]),
			Description: field(item, "description", "desc"),
			Amount:      amount,
		})
	}

	for i, item := range objects(doc, "$.shops") {
		cost, err := legacyMoney(item["cost"])
		if err != nil {
			return State{}, fmt.Errorf("shop #%d cost: %w", i, err)
		}
		price, err := legacyMoney(item["price"])
		if err != nil {
			return State{}, fmt.Errorf("shop #%d price: %w", i, err)
		}
		st.Shops = append(st.Shops, ShopListing{
			ID:       legacyID(item["id"]),
			ItemName: field(item, "itemName", "item"),
			Cost:     cost,
			Price:    price,
			Stock:    int(legacyID(item["stock"])),
			Notes:    field(item, "notes"),
		})
	}

	for _, path := range []string{"$.intel", "$.competitors"} {
		for _, item := range objects(doc, path) {
			st.Intel = append(st.Intel, IntelEntry{
				ID:     legacyID(item["id"]),
				Name:   field(item, "name"),
				Coords: field(item, "coords"),
				Notes:  field(item, "notes"),
			})
		}
	}

	for _, path := range []string{"$.notes", "$.wiki", "$.journal"} {
		for _, item := range objects(doc, path) {
			st.Notes = append(st.Notes, Note{
				ID:    legacyID(item["id"]),
				Title: field(item, "title", "date"),
				Body:  field(item, "body", "content", "log", "text"),
			})
		}
	}
	return st, nil
}

// firstString returns the first path of doc holding a string.
func firstString(doc any, paths ...string) string {
	for _, p := range paths {
		if v, err := jsonpath.Get(p, doc); err == nil {
			if s, ok := v.(string); ok {
				return s
			}
		}
	}
	return ""
}

// objects returns the objects of the array at path. Anything else is ignored.
func objects(doc any, path string) []map[string]any {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	res := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			res = append(res, obj)
		}
	}
	return res
}

// field returns the first of keys holding a string in obj.
func field(obj map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok {
			return s
		}
	}
	return ""
}

// legacyMoney reads an amount. Browsers serialize NaN as null, so null is zero.
func legacyMoney(v any) (Money, error) {
	switch v := v.(type) {
	case nil:
		return Money{}, nil
	case json.Number:
		return ParseMoney(v.String())
	case float64:
		return M(v), nil
	case string:
		if strings.TrimSpace(v) == "" {
			return Money{}, nil
		}
		return ParseMoney(v)
	default:
		return Money{}, fmt.Errorf("%w: amount %v is not a number", ErrInvalid, v)
	}
}

// legacyID reads an integer, typically a timestamp id. It returns 0 when v is
// not a usable integer.
func legacyID(v any) int64 {
	var f float64
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return max(i, 0)
		}
		var err error
		if f, err = v.Float64(); err != nil {
			return 0
		}
	case float64:
		f = v
	default:
		return 0
	}
	if math.IsNaN(f) || f <= 0 || f > math.MaxInt64 {
		return 0
	}
	return int64(f)
}

func legacyDate(v any) date.Date {
	s, ok := v.(string)
	if !ok {
		return date.Date{}
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}
	}
	return d
}
