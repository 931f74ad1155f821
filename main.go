package main

import "graphpad/cmd"

func main() {
	cmd.Execute()
}
