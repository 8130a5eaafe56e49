package main

import "github.com/ingagustinmarcel/prop-flow/internal/cli"

func main() {
	cli.Execute()
}
