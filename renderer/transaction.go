package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/ecotrack"
)

// Transactions renders transactions as a table, in the given order.
func Transactions(txs []ecotrack.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}
	writeTransactions(&b, newTransactionRows(txs))
	fmt.Fprintf(&b, "\nTotal: %s\n", sum(txs).SignedString())
	return b.String()
}

func writeTransactions(w io.Writer, rows []TransactionRow) {
	fmt.Fprintln(w, "| Date | Description | Amount |")
	fmt.Fprintln(w, "|:---|:---|---:|")
	for _, r := range rows {
		fmt.Fprintf(w, "| %s | %s | %s |\n", r.Date, Cell(r.Description), r.Amount.SignedString())
	}
}

func sum(txs []ecotrack.Transaction) ecotrack.Money {
	var total ecotrack.Money
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}
