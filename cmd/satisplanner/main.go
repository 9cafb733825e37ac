package main

import (
	"github.com/andrescamacho/satisplanner-go/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
