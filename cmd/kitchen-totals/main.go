package main

import "github.com/mmdatafocus/kitchen_totals/cmd/kitchen-totals/commands"

func main() {
	commands.Execute()
}
