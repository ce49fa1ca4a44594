package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/conceptlab/walkthrough/demos"
	"github.com/conceptlab/walkthrough/managed"
)

func main() {
	var (
		demoName    = flag.String("demo", "", "Run a single demonstration by name")
		list        = flag.Bool("list", false, "List demonstrations and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
		noColor     = flag.Bool("no-color", false, "Disable styled output")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		managed.SetLogger(logger.Named("managed"))
		demos.SetLogger(logger.Named("demos"))
	}

	reg := demos.Default()
	styled := !*noColor && term.IsTerminal(int(os.Stdout.Fd()))

	if *list {
		listDemos(reg, styled)
		return
	}

	if *interactive {
		if err := runInteractive(reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(reg, *demoName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(reg *demos.Registry, name string) error {
	ctx := context.Background()
	if name != "" {
		return reg.RunOne(ctx, os.Stdout, name)
	}
	return reg.RunAll(ctx, os.Stdout)
}

var (
	listNameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	listDescStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87CEEB"))
)

func listDemos(reg *demos.Registry, styled bool) {
	fmt.Println("Demonstrations:")
	for _, d := range reg.All() {
		name := fmt.Sprintf("%-16s", d.Name())
		desc := d.Summary()
		if styled {
			name = listNameStyle.Render(name)
			desc = listDescStyle.Render(desc)
		}
		fmt.Printf("  %s %s\n", name, desc)
	}
}
