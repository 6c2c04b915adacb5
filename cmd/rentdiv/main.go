// Command rentdiv computes envy-free rent divisions from instance files.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/rentdiv/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rentdiv:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
