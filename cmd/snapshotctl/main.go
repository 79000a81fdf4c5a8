// snapshotctl inspects and maintains the storefront snapshot file.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ecogoods/storefront/internal/adapter/snapshot"
	"github.com/ecogoods/storefront/internal/core/domain"
	"github.com/ecogoods/storefront/internal/core/service"
	"github.com/ecogoods/storefront/pkg/money"
	"github.com/spf13/pflag"
)

const snapshotFileFlag = "snapshot-file"

func main() {
	snapshotFile, listOrders, clearCart, lang := getFlagsValues()
	validateFlags(snapshotFile, listOrders, clearCart)

	store := snapshot.NewFileStore(snapshotFile)

	if listOrders {
		printOrders(store, lang)
	}
	if clearCart {
		doClearCart(store)
	}
}

func getFlagsValues() (snapshotFile string, listOrders, clearCart bool, lang string) {
	fileArg := pflag.StringP(snapshotFileFlag, "f", "", "path to the snapshot file")
	listArg := pflag.Bool("list-orders", false, "print the stored order history")
	clearArg := pflag.Bool("clear-cart", false, "drop the stored cart lines")
	langArg := pflag.String("lang", service.DefaultUILanguage, "display language for amounts")
	pflag.Parse()
	return *fileArg, *listArg, *clearArg, *langArg
}

func validateFlags(snapshotFile string, listOrders, clearCart bool) {
	if snapshotFile == "" {
		fmt.Fprintf(os.Stderr, "--%s flag: required\n", snapshotFileFlag)
		fallDown()
	}
	if !listOrders && !clearCart {
		fmt.Fprintln(os.Stderr, "nothing to do: pass --list-orders and/or --clear-cart")
		fallDown()
	}
}

func printOrders(store *snapshot.FileStore, lang string) {
	data, err := store.Get("ecoOrders")
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Println("no stored orders")
			return
		}
		fmt.Fprintf(os.Stderr, "failed to read orders: %v\n", err)
		fallDown()
	}

	var orders []struct {
		ID            string  `json:"id"`
		Total         float64 `json:"total"`
		TotalQuantity int     `json:"totalQuantity"`
		PlacedAt      string  `json:"placedAt"`
	}
	if err := json.Unmarshal(data, &orders); err != nil {
		fmt.Fprintf(os.Stderr, "malformed order history: %v\n", err)
		fallDown()
	}

	for _, o := range orders {
		fmt.Printf("%s\t%s\t%d items\t%s\n",
			o.ID, o.PlacedAt, o.TotalQuantity, money.Format(o.Total, lang))
	}
}

func doClearCart(store *snapshot.FileStore) {
	if err := store.Delete("cartItems"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to clear cart: %v\n", err)
		fallDown()
	}
	fmt.Println("cart cleared")
}

func fallDown() {
	os.Exit(2)
}
