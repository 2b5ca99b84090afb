package main

import "github.com/playhub/portal/internal/cli"

func main() {
	cli.Execute()
}
