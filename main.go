package main

import "github.com/prevostc/graph-tooling/cmd"

func main() {
	cmd.Execute()
}
