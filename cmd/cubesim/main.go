package main

import "github.com/cubesim/cubesim/internal/cli"

func main() {
	cli.Execute()
}
