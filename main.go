package main

import "github.com/gaurav-prasanna/updatesheet/cmd"

func main() {
	cmd.Execute()
}
