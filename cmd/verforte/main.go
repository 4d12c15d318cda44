// main is the entry point for the verforte CLI.
package main

import (
	"os"

	"github.com/panglars/VeRForTe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
