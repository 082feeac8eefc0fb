package main

import "vidpress/internal/cli"

func main() {
	cli.Main()
}
