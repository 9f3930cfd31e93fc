// Command argand prints, combines and draws complex numbers.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/argand/cmd/argand/cmd"
)

func main() {
	root := cmd.NewRootCmd()
	root.AddCommand(newWindowCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "argand: %v\n", err)
		os.Exit(1)
	}
}
