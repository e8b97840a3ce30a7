package main

import "github.com/notargets/gosh/cmd"

func main() {
	cmd.Execute()
}
