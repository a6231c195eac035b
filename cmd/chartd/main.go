package main

import "github.com/rustyeddy/chartlab/cli"

func main() {
	cli.Execute()
}
