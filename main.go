// getdaysleft counts the days to or from a date in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/rishabh06704/getdaysleft/cmd"
)

// Set with -ldflags "-X main.version=..." by the release build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(fmt.Sprintf("%s (%s, %s)", version, commit, date))
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
