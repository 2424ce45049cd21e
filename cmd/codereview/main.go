// Code review analysis - CLI entry point.
package main

import "github.com/code-mentor/analysis/internal/cli"

func main() {
	cli.Run()
}
