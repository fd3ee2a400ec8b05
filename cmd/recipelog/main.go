package main

import (
	"github.com/modpack-tools/recipelog/pkg/cli"
)

func main() {
	cli.Execute()
}
