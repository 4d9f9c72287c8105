// unami-csv - Route List Compiler
//
// unami-csv converts a plain-text list of flight-route descriptions into a CSV
// file. Lines that do not describe a route are skipped and reported.
package main

import (
	"os"

	"github.com/captainFoxtrot/unami-csv/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
