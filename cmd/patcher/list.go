package main

import (
	"flag"
	"fmt"

	"github.com/dudk/patcher/object"

	// registered object types
	_ "github.com/dudk/patcher/route"
	_ "github.com/dudk/patcher/store"
)

type listCommand struct{}

//Implement patcher.command interface
func (cmd *listCommand) Name() string {
	return "list"
}

func (cmd *listCommand) Help() string {
	return "Show the list of available object types"
}

func (cmd *listCommand) Register(fs *flag.FlagSet) {}

func (cmd *listCommand) Run() error {
	fmt.Println("Available object types:")
	for _, t := range object.Types() {
		fmt.Printf("\t%s\n", t)
	}
	return nil
}
