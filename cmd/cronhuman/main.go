// Command cronhuman converts cron expressions to English and back, validates
// them and lists upcoming occurrences.
package main

import (
	"os"

	"github.com/jdziat/cronhuman/cmd/cronhuman/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
