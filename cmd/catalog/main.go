// Command catalog loads a magazine catalog from a YAML seed file into memory
// and prints reports derived from the author, magazine and article relations.
package main

import (
	"context"
	"os"
)

func main() {
	if err := execute(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
