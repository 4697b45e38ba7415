package main

import "github.com/mcoot/wheelgame-go/internal/cli"

func main() {
	cli.Execute()
}
