package main

import "github.com/user/hours-cli/cmd"

func main() {
	cmd.Execute()
}
