package main

import (
	"fmt"
	"os"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	_, err := fmt.Fprintf(os.Stdout, "warsim %s\n", version)
	return err
}
