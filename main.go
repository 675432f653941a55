package main

import "github.com/ddeemerpurdue/fastaprocessing/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
