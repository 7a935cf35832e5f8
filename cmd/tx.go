package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/etnz/ecotrack"
	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	last  int
	jsonl bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions" }
func (*txCmd) Usage() string {
	return `eco tx [-n <count>] [-jsonl]

  Lists the transactions, newest first. With -jsonl, prints them as a journal,
  one JSON object per line, oldest first, that eco add-tx -f reads back.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.last, "n", 0, "only list the last n transactions (0 lists them all)")
	f.BoolVar(&c.jsonl, "jsonl", false, "print the transactions as a JSONL journal")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	st := s.State()
	if c.jsonl {
		txs := st.Transactions
		if c.last > 0 {
			txs = txs[max(len(txs)-c.last, 0):]
		}
		if err := ecotrack.EncodeTransactions(output, txs); err != nil {
			return exitStatus("writing the journal", err)
		}
		return subcommands.ExitSuccess
	}

	var txs []ecotrack.Transaction
	if c.last > 0 {
		txs = st.RecentTransactions(c.last)
	} else {
		txs = slices.Clone(st.Transactions)
		slices.Reverse(txs)
	}
	printMarkdown(renderer.Transactions(txs))
	return subcommands.ExitSuccess
}

type addTxCmd struct {
	description string
	amount      string
	journal     string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "record a gain or a cost" }
func (*addTxCmd) Usage() string {
	return `eco add-tx -d <description> -a <amount>
eco add-tx -f <journal.jsonl>

  Records a transaction dated today and applies it to the balance. Use a
  negative amount for a cost.

  With -f, records every transaction of a JSONL journal, as printed by
  eco tx -jsonl, keeping their dates. Use - to read stdin.

  Example:
    eco add-tx -d "Sold Diamonds" -a 5000
    eco add-tx -d "Bought Gear" -a -2000
    eco add-tx -f trades.jsonl
`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "d", "", "description of the transaction")
	f.StringVar(&c.amount, "a", "", "amount, negative for a cost")
	f.StringVar(&c.journal, "f", "", "JSONL journal of transactions to record, - for stdin")
}

func (c *addTxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.journal != "" {
		return c.addJournal(ctx)
	}

	amount, err := ecotrack.ParseMoney(c.amount)
	if err != nil {
		return exitStatus("parsing the amount", err)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	tx, err := s.AddTransaction(ctx, c.description, amount)
	if err != nil {
		return exitStatus("adding the transaction", err)
	}
	fmt.Fprintf(os.Stderr, "Recorded %q for %s\n", tx.Description, tx.Amount.SignedString())
	return subcommands.ExitSuccess
}

type clearHistoryCmd struct {
	yes bool
}

func (*clearHistoryCmd) Name() string     { return "clear-history" }
func (*clearHistoryCmd) Synopsis() string { return "delete every transaction, keeping the balance" }
func (*clearHistoryCmd) Usage() string {
	return `eco clear-history -y

  Deletes all transactions. The balance is left as it is.
`
}

func (c *clearHistoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "confirm the deletion")
}

func (c *clearHistoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "Refusing to clear the history without -y")
		return subcommands.ExitUsageError
	}
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	if err := s.ClearHistory(ctx); err != nil {
		return exitStatus("clearing the history", err)
	}
	return subcommands.ExitSuccess
}

func (c *addTxCmd) addJournal(ctx context.Context) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.journal != "-" {
		file, err := os.Open(c.journal)
		if err != nil {
			return exitStatus("opening the journal", err)
		}
		defer file.Close()
		r = file
	}
	txs, err := ecotrack.DecodeTransactions(r)
	if err != nil {
		return exitStatus("reading the journal", err)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	added, err := s.AddTransactions(ctx, txs)
	if err != nil {
		return exitStatus("adding the transactions", err)
	}
	fmt.Fprintf(os.Stderr, "Recorded %d transactions\n", len(added))
	return subcommands.ExitSuccess
}
