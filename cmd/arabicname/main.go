// arabicname composes Arabic-style names from the command line and prints
// the results as JSON.
package main

import (
	"os"

	"github.com/kapu/arabic-name-bot-go/cmd/arabicname/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
