package main

import "github.com/nfrund/foodgram/cmd/foodgram-cli/cmd"

func main() {
	cmd.Execute()
}
