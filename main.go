package main

import "github.com/they4kman/sweepfive/cmd"

func main() {
	cmd.Execute()
}
