// Restup - break reminders for your terminal.

package main

import (
	"os"

	"github.com/restup/restup/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
