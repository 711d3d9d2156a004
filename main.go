// Package main is the entry point for the jgrade CLI.
package main

import "jgrade.dev/pkg/jgrade/cmd"

func main() {
	cmd.Execute()
}
