package main

import "eraisubs/cmd/eraisubs/cmd"

func main() {
	cmd.Execute()
}
