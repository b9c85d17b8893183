package main

import "spellsheet/cmd/spellsheet-cli/cmd"

func main() {
	cmd.Execute()
}
