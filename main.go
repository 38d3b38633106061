package main

import "github.com/VoxDroid/opn/cmd"

func main() {
	cmd.Execute()
}
