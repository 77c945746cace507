package main

import (
	"github.com/sunfmin/mcp-go-calculator/pkg/cli"
)

// Version is set during build
var Version = "dev"

func main() {
	cli.Execute(Version)
}
