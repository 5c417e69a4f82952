// Package main is the entry point for the fastgen CLI.
package main

import "fastgen.dev/pkg/fastgen/cmd"

func main() {
	cmd.Execute()
}
