// cmd/medcheck/main.go
package main

import (
	cmd "github.com/mwiater/medcheck/internal/commands"
)

// main starts the medcheck CLI application by delegating to the
// cobra root command defined in the commands package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
