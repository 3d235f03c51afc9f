package main

import "github.com/aalvaropc/hostexpand/internal/cli"

func main() {
	cli.Execute()
}
