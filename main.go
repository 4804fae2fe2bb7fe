package main

import "github.com/icesim/glenflow/cmd"

func main() {
	cmd.Execute()
}
