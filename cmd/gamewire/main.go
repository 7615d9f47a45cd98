package main

import (
	"github.com/mhollis/gamewire/internal/cli"
)

func main() {
	cli.Execute()
}
