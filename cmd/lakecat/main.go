// lakecat is a CLI for inspecting a lakecat catalog's metastore records.
//
// # Commands
//
//	lakecat dbs     List databases
//	lakecat ls      List tables in a database
//	lakecat show    Show a table entity
//
// All commands read the catalog config (default lakecat.yaml) to locate
// the embedded metastore store.
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	// Remove the subcommand from args so flag parsing works
	os.Args = append([]string{os.Args[0]}, os.Args[2:]...)

	var err error
	switch cmd {
	case "dbs", "databases":
		err = runDBs()
	case "ls", "tables":
		err = runLs()
	case "show", "table":
		err = runShow()
	case "help", "-h", "--help":
		printUsage()
		return
	case "version", "-v", "--version":
		fmt.Printf("lakecat version %s\n", version)
		return
	default:
		fmt.Fprintf(os.Stderr, "lakecat: unknown command %q\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "lakecat %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`lakecat - metadata catalog tools

Usage:
  lakecat <command> [flags] [args]

Commands:
  dbs     List databases in the metastore store
  ls      List tables in a database
  show    Show a table entity with its columns

Examples:
  lakecat dbs
  lakecat ls analytics
  lakecat show analytics.events
  lakecat show --config ./prod.yaml analytics.events

Run 'lakecat <command> --help' for more information on a command.`)
}
