package main

import (
	"flag"
	"fmt"
	"os"

	cfg "github.com/dudk/patcher/config"
	"github.com/dudk/patcher/graph"
)

type runCommand struct {
	config string
	patch  string
	bang   string
	to     string
	intVal int
	list   string
}

//Implement patcher.command interface
func (cmd *runCommand) Name() string {
	return "run"
}

func (cmd *runCommand) Help() string {
	return "Load a patch, optionally inject a message and dump the graph"
}

func (cmd *runCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&cmd.config, "config", "", "path to yaml config file")
	fs.StringVar(&cmd.patch, "patch", "", "path to patch json file (required unless set in config)")
	fs.StringVar(&cmd.bang, "bang", "", "inject a bang into the labeled object")
	fs.StringVar(&cmd.to, "to", "", "label to inject -int or -list into")
	fs.IntVar(&cmd.intVal, "int", 0, "integer to inject into the -to object")
	fs.StringVar(&cmd.list, "list", "", "list payload to inject into the -to object")
}

func (cmd *runCommand) Run() error {
	c := cfg.Default()
	if cmd.config != "" {
		loaded, err := cfg.LoadFile(cmd.config)
		if err != nil {
			return err
		}
		c = loaded
	}
	if cmd.patch != "" {
		c.Patch = cmd.patch
	}
	if c.Patch == "" {
		return fmt.Errorf("missing -patch required flag")
	}

	content, err := os.ReadFile(c.Patch)
	if err != nil {
		return fmt.Errorf("read patch: %w", err)
	}
	g := graph.New(graph.WithMaxDepth(c.MaxDepth))
	if err := g.ParseJSON(string(content)); err != nil {
		return fmt.Errorf("load patch: %w", err)
	}
	fmt.Printf("Loaded %d objects\n", g.Objects())

	switch {
	case cmd.bang != "":
		fmt.Printf("bang %q delivered: %v\n", cmd.bang, g.PassBang(cmd.bang))
	case cmd.to != "" && cmd.list != "":
		fmt.Printf("list %q delivered: %v\n", cmd.to, g.PassList(cmd.list, cmd.to))
	case cmd.to != "":
		fmt.Printf("int %q delivered: %v\n", cmd.to, g.PassInt(cmd.intVal, cmd.to))
	}

	dump, err := g.DumpJSON()
	if err != nil {
		return err
	}
	fmt.Println(dump)
	return nil
}
