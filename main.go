package main

import "restodash/cmd"

func main() {
	cmd.Execute()
}
