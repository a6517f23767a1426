package main

import "github.com/atikulmunna/logan/internal/cmd"

func main() {
	cmd.Execute()
}
