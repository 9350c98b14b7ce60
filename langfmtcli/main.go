package main

import "github.com/golangee/langfmt/cmd"

func main() {
	cmd.Execute()
}
