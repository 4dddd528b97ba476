package main

import "go_4_vocab_scan/internal/cli"

func main() {
	cli.Execute()
}
