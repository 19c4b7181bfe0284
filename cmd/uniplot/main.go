// Command uniplot draws line plots, scatter plots and images in the
// terminal with Unicode characters.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "uniplot:", err)
		os.Exit(1)
	}
}
