package main

import "obsidion/cmd"

func main() {
	cmd.Execute()
}
