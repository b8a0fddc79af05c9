package main

import "github.com/sharkinsspatial/stactools/cmd/stac/cmd"

func main() {
	cmd.Execute()
}
