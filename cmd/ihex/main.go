package main

import "github.com/moffa90/go-ihex/cmd/ihex/cmd"

func main() {
	cmd.Execute()
}
