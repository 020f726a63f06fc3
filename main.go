package main

import "cloudsweep/internal/cli"

func main() {
	cli.Execute()
}
