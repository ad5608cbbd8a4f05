package main

import "github.com/weihanlim/cupcake-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
