// Package main is the entry point for the mutsol CLI.
package main

import "mutsol.dev/pkg/mutsol/cmd"

func main() {
	cmd.Execute()
}
