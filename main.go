package main

import "github.com/alexiusacademia/gocbeam/cmd"

func main() {
	cmd.Execute()
}
