package main

import "github.com/robbyt/go-bfscript/cmd/bfrun/commands"

func main() {
	commands.Execute()
}
