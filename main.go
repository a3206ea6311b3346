package main

import "github.com/iksnae/braindrain/cmd"

func main() {
	cmd.Execute()
}
