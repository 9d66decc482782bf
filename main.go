package main

import "github.com/alexiusacademia/gopile/cmd"

func main() {
	cmd.Execute()
}
