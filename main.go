package main

import "github.com/ondrolexa/sg2/cmd"

func main() {
	cmd.Execute()
}
