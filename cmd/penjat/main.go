package main

import "github.com/mribera/penjat3d/internal/cli"

func main() {
	cli.Execute()
}
