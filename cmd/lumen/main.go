// Command lumen is the lumen CLI and HTTP server.
package main

import "github.com/mesh-intelligence/lumen/internal/cli"

func main() {
	cli.Execute()
}
