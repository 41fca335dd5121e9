package main

import "scrabble-devserver/cmd"

func main() {
	cmd.Execute()
}
