package main

import "legalqa/internal/cli"

func main() {
	cli.Execute()
}
