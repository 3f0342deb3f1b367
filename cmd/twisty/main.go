// twisty - virtual 3x3x3 twisty puzzle with an interactive terminal view.
package main

import (
	"github.com/twistylab/twisty/internal/cli"
)

func main() {
	cli.Execute()
}
