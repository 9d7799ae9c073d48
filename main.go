// Package main is the entry point for the nric CLI.
package main

import "nric.dev/pkg/nric/cmd"

func main() {
	cmd.Execute()
}
