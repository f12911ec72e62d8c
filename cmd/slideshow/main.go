package main

import (
	"github.com/matjam/slideshow/internal/cli"
)

func main() {
	cli.Execute()
}
