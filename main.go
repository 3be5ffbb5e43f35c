// Stocktake - a local inventory tracker for the terminal.
package main

import (
	"os"

	"github.com/wyhuang/stocktake/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
