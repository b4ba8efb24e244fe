package main

import (
	"os"

	gomcnpcmder "github.com/rmera/gomcnp/cmd/gomcnp"
)

func main() {
	cmd := gomcnpcmder.NewGomcnpCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
