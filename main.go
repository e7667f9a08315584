package main

import "github.com/amsf/project-tracker/cmd"

func main() {
	cmd.Execute()
}
