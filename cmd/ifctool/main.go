// Command ifctool inspects, reformats and archives IFC models.
package main

import (
	"os"

	"github.com/andreyvit/ifc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
