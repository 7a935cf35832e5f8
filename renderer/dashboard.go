package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/ecotrack"
	"github.com/etnz/ecotrack/date"
)

// RecentCount is the number of transactions shown on the dashboard.
const RecentCount = 5

// Dashboard is the view model of the main screen.
type Dashboard struct {
	DisplayName string                  `json:"displayName"`
	Balance     ecotrack.Money          `json:"balance"`
	NetWorth    ecotrack.Money          `json:"netWorth"`
	Profit      ecotrack.Money          `json:"profit"`
	Recent      []TransactionRow        `json:"recent"`
	History     []ecotrack.BalancePoint `json:"history"`
}

// TransactionRow is a transaction as listed in tables.
type TransactionRow struct {
	ID          int64          `json:"id"`
	Date        date.Date      `json:"date"`
	Description string         `json:"description"`
	Amount      ecotrack.Money `json:"amount"`
}

func newTransactionRows(txs []ecotrack.Transaction) []TransactionRow {
	rows := make([]TransactionRow, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, TransactionRow{ID: tx.ID, Date: tx.Date, Description: tx.Description, Amount: tx.Amount})
	}
	return rows
}

// NewDashboard builds the dashboard of st.
func NewDashboard(st ecotrack.State) Dashboard {
	return Dashboard{
		DisplayName: st.Profile.DisplayName,
		Balance:     st.Profile.Balance,
		NetWorth:    st.NetWorth(),
		Profit:      st.TotalProfit(),
		Recent:      newTransactionRows(st.RecentTransactions(RecentCount)),
		History:     st.BalanceHistory(),
	}
}

// Markdown renders the dashboard.
func (d Dashboard) Markdown() string {
	var b strings.Builder
	if d.DisplayName != "" {
		fmt.Fprintf(&b, "# %s\n\n", Escape(d.DisplayName))
	} else {
		fmt.Fprintf(&b, "# Dashboard\n\n")
	}
	fmt.Fprintln(&b, "| Balance | Net Worth | Profit |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n", d.Balance, d.NetWorth, d.Profit.SignedString())

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Recent Transactions\n\n")
		writeTransactions(w, d.Recent)
		return len(d.Recent) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Balance History\n\n")
		fmt.Fprintln(w, "| Date | Balance |")
		fmt.Fprintln(w, "|:---|---:|")
		for _, p := range d.History {
			fmt.Fprintf(w, "| %s | %s |\n", p.Date, p.Balance)
		}
		return len(d.History) > 0
	})
	return b.String()
}

// Summary renders a one line reminder of the balance and net worth.
func Summary(st ecotrack.State) string {
	return fmt.Sprintf("**Balance** %s · **Net Worth** %s\n", st.Profile.Balance, st.NetWorth())
}
