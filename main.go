// Package main is the entry point for the ctestfmt CLI.
package main

import "github.com/Wattsy2020/cpp-learning/cmd"

func main() {
	cmd.Execute()
}
