package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/ecotrack"
	"github.com/etnz/ecotrack/renderer"
	"github.com/google/subcommands"
)

// parseID reads the id given as the single positional argument of f.
func parseID(f *flag.FlagSet) (int64, error) {
	if f.NArg() != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id, got %d arguments", ecotrack.ErrInvalid, f.NArg())
	}
	id, err := strconv.ParseInt(strings.TrimSpace(f.Arg(0)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", ecotrack.ErrInvalid, f.Arg(0))
	}
	return id, nil
}

type shopsCmd struct{}

func (*shopsCmd) Name() string     { return "shops" }
func (*shopsCmd) Synopsis() string { return "list shop listings with profit and margin" }
func (*shopsCmd) Usage() string {
	return `eco shops

  Lists the shop listings with their stock, profit per unit and margin.
`
}

func (*shopsCmd) SetFlags(f *flag.FlagSet) {}

func (*shopsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	printMarkdown(renderer.Shops(renderer.NewShopRows(s.State())))
	return subcommands.ExitSuccess
}

type addShopCmd struct {
	item  string
	cost  string
	price string
	stock string
	notes string
}

func (*addShopCmd) Name() string     { return "add-shop" }
func (*addShopCmd) Synopsis() string { return "add a shop listing" }
func (*addShopCmd) Usage() string {
	return `eco add-shop -i <item> [-c <cost>] [-p <price>] [-s <stock>] [-n <notes>]

  Adds a shop listing. Cost, price and stock default to 0 when missing or not
  a number.

  Example:
    eco add-shop -i "Netherite Ingot" -c 1000 -p 1500 -s 5 -n "Sell fast"
`
}

func (c *addShopCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "i", "", "name of the item")
	f.StringVar(&c.cost, "c", "", "cost of one unit")
	f.StringVar(&c.price, "p", "", "selling price of one unit")
	f.StringVar(&c.stock, "s", "", "number of units in stock")
	f.StringVar(&c.notes, "n", "", "free notes")
}

func (c *addShopCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	listing, err := s.AddShop(ctx, ecotrack.ParseShopForm(c.item, c.cost, c.price, c.stock, c.notes))
	if err != nil {
		return exitStatus("adding the shop", err)
	}
	fmt.Fprintf(os.Stderr, "Added %q with id %d\n", listing.ItemName, listing.ID)
	return subcommands.ExitSuccess
}

type editShopCmd struct {
	price string
	stock int
}

func (*editShopCmd) Name() string     { return "edit-shop" }
func (*editShopCmd) Synopsis() string { return "update the price and stock of a listing" }
func (*editShopCmd) Usage() string {
	return `eco edit-shop [-p <price>] [-s <stock>] <id>

  Updates the price, the stock, or both. A flag that is not given keeps the
  current value of the listing.
`
}

func (c *editShopCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.price, "p", "", "new selling price")
	f.IntVar(&c.stock, "s", 0, "new stock")
}

func (c *editShopCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID(f)
	if err != nil {
		return exitStatus("reading the shop id", err)
	}
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if !set["p"] && !set["s"] {
		return exitStatus("editing the shop", fmt.Errorf("%w: nothing to edit, give -p or -s", ecotrack.ErrInvalid))
	}
	var price ecotrack.Money
	if set["p"] {
		if price, err = ecotrack.ParseMoney(c.price); err != nil {
			return exitStatus("parsing the price", err)
		}
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	// An unknown id is reported by EditShop.
	listing, _ := s.State().Shop(id)
	if !set["p"] {
		price = listing.Price
	}
	stock := listing.Stock
	if set["s"] {
		stock = c.stock
	}
	if err := s.EditShop(ctx, id, price, stock); err != nil {
		return exitStatus("editing the shop", err)
	}
	return subcommands.ExitSuccess
}

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell one unit of a listing" }
func (*sellCmd) Usage() string {
	return `eco sell <id>

  Sells one unit: the stock is decremented and a sale transaction for the
  listing price is recorded.
`
}

func (*sellCmd) SetFlags(f *flag.FlagSet) {}

func (*sellCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID(f)
	if err != nil {
		return exitStatus("reading the shop id", err)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	sale, err := s.QuickSellOne(ctx, id)
	if errors.Is(err, ecotrack.ErrRestockNeeded) {
		fmt.Fprintf(os.Stderr, "Restock needed: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		return exitStatus("selling", err)
	}
	fmt.Fprintf(os.Stderr, "%s for %s\n", sale.Description, sale.Amount)
	return subcommands.ExitSuccess
}

type rmShopCmd struct{}

func (*rmShopCmd) Name() string     { return "rm-shop" }
func (*rmShopCmd) Synopsis() string { return "delete a shop listing" }
func (*rmShopCmd) Usage() string {
	return `eco rm-shop <id>

  Deletes the listing. Deleting an unknown id does nothing.
`
}

func (*rmShopCmd) SetFlags(f *flag.FlagSet) {}

func (*rmShopCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := parseID(f)
	if err != nil {
		return exitStatus("reading the shop id", err)
	}

	s, err := openStore(ctx)
	if err != nil {
		return exitStatus("opening the tracker", err)
	}
	defer s.Close()

	if err := s.DeleteShop(ctx, id); err != nil {
		return exitStatus("deleting the shop", err)
	}
	return subcommands.ExitSuccess
}
