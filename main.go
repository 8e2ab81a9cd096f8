package main

import "github.com/alexiusacademia/gopt/cmd"

func main() {
	cmd.Execute()
}
