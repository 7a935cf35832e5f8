package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ecotrack"
)

// ShopRow is the view model of a shop listing.
type ShopRow struct {
	ID       int64            `json:"id"`
	ItemName string           `json:"itemName"`
	Stock    int              `json:"stock"`
	Cost     ecotrack.Money   `json:"cost"`
	Price    ecotrack.Money   `json:"price"`
	Profit   ecotrack.Money   `json:"profit"`
	Margin   ecotrack.Percent `json:"margin"`
	Notes    string           `json:"notes,omitempty"`
}

// InStock reports whether at least one unit is left.
func (r ShopRow) InStock() bool { return r.Stock > 0 }

// NewShopRows builds the rows of all listings of st.
func NewShopRows(st ecotrack.State) []ShopRow {
	rows := make([]ShopRow, 0, len(st.Shops))
	for _, s := range st.Shops {
		rows = append(rows, ShopRow{
			ID:       s.ID,
			ItemName: s.ItemName,
			Stock:    s.Stock,
			Cost:     s.Cost,
			Price:    s.Price,
			Profit:   s.Profit(),
			Margin:   s.MarginPercent(),
			Notes:    s.Notes,
		})
	}
	return rows
}

// Shops renders the shop listings.
func Shops(rows []ShopRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Shops\n\n")
	if len(rows) == 0 {
		fmt.Fprintln(&b, "No shop listings.")
		return b.String()
	}
	fmt.Fprintln(&b, "| ID | Item | Stock | Buy | Sell | Profit | Margin | Notes |")
	fmt.Fprintln(&b, "|---:|:---|:---|---:|---:|---:|---:|:---|")
	for _, r := range rows {
		stock := "OUT OF STOCK"
		if r.InStock() {
			stock = fmt.Sprintf("In Stock: %d", r.Stock)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			r.ID,
			Cell(r.ItemName),
			stock,
			r.Cost,
			r.Price,
			r.Profit.SignedString(),
			r.Margin.SignedString(),
			Cell(r.Notes),
		)
	}
	return b.String()
}
