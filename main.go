package main

import "github.com/Tiliavir/foretab/cmd"

func main() {
	cmd.Execute()
}
