package main

import (
	"github.com/consensys/go-lazysets/pkg/cmd"
)

func main() {
	cmd.Execute()
}
