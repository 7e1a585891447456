package main

import "github.com/friendlyzoo/zoo/cmd"

func main() {
	cmd.Execute()
}
