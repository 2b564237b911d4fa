package main

import "github.com/aalvaropc/petspeak/internal/cli"

func main() {
	cli.Execute()
}
