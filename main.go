package main

import "github.com/wmkit/i3keep/cmd"

func main() {
	cmd.Execute()
}
