package main

import "hpkgmeta/internal/cli"

func main() {
	cli.Execute()
}
