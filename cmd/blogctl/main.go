package main

import "github.com/daniilsolovey/blogicum/cmd/blogctl/commands"

func main() {
	commands.Execute()
}
