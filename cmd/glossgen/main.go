// cmd/glossgen/main.go
package main

import (
	cmd "glossgen/internal/cli"
)

// main starts the glossgen CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
