package main

import "github.com/oshokin/ptdocs/cmd/ptdocs/cmd"

func main() {
	cmd.Execute()
}
