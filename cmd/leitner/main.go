package main

import "github.com/sky-flux/leitner/internal/cli"

func main() {
	cli.Execute()
}
