package main

import (
	"github.com/pmorrell/blockfall/internal/cli"
)

func main() {
	cli.Execute()
}
