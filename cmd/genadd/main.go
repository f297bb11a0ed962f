// Command genadd adds two operands of the same Go numeric type.
//
// Run without arguments it prints the int sum 20+30 and the float32 sum
// 20.20+30.30. See "genadd --help" for the other commands.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/genadd/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
