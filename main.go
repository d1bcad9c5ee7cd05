package main

import "landlord-cli/cmd"

func main() {
	cmd.Execute()
}
