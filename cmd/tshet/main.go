// Command tshet is the command-line interface to the tshetuinh library.
package main

import "github.com/mesh-intelligence/tshetuinh/internal/cli"

func main() {
	cli.Execute()
}
