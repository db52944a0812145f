// Package main is the entry point of the loccy command.
package main

import "github.com/mouse-blink/loccy/cmd"

func main() {
	cmd.Execute()
}
