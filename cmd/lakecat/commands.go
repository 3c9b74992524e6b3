package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lakecat/lakecat/hive"
	"github.com/lakecat/lakecat/hive/hmsstore"
	"github.com/lakecat/lakecat/meta"
)

func openCatalog(configPath string) (*hive.Catalog, *hmsstore.Store, error) {
	cfg, err := hive.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	store, err := hmsstore.Open(hmsstore.Options{
		Path:     cfg.Store.Path,
		InMemory: cfg.Store.InMemory,
	})
	if err != nil {
		return nil, nil, err
	}
	return hive.NewCatalog(store, *cfg), store, nil
}

func configFlag(fs *flag.FlagSet) *string {
	return fs.String("config", "lakecat.yaml", "path to the catalog config file")
}

func runDBs() error {
	fs := flag.NewFlagSet("dbs", flag.ExitOnError)
	configPath := configFlag(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	_, store, err := openCatalog(*configPath)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.ListDatabases(context.Background())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runLs() error {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	configPath := configFlag(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: lakecat ls <database>")
	}

	_, store, err := openCatalog(*configPath)
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.ListTables(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runShow() error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	configPath := configFlag(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	if fs.NArg() != 1 || !strings.Contains(fs.Arg(0), ".") {
		return fmt.Errorf("usage: lakecat show <database>.<table>")
	}

	ident, err := meta.IdentifierOf(strings.Split(fs.Arg(0), ".")...)
	if err != nil {
		return err
	}

	catalog, store, err := openCatalog(*configPath)
	if err != nil {
		return err
	}
	defer store.Close()

	tbl, err := catalog.LoadTable(context.Background(), ident)
	if err != nil {
		return err
	}
	printTable(tbl)
	return nil
}

func printTable(t *hive.Table) {
	fmt.Printf("Table:        %s\n", t.NameIdentifier())
	fmt.Printf("Type:         %s\n", t.TableType)
	if t.Comment != "" {
		fmt.Printf("Comment:      %s\n", t.Comment)
	}
	fmt.Printf("Owner:        %s\n", t.Audit.Creator)
	fmt.Printf("Created:      %s\n", time.Unix(int64(t.CreateTime), 0).UTC().Format(time.RFC3339))
	fmt.Printf("Location:     %s\n", t.Location)
	fmt.Printf("InputFormat:  %s\n", t.InputFormat)
	fmt.Printf("OutputFormat: %s\n", t.OutputFormat)
	fmt.Printf("SerLib:       %s\n", t.SerLib)
	fmt.Println("Columns:")
	for _, c := range t.Columns {
		line := fmt.Sprintf("  %-20s %s", c.Name, c.Type)
		if c.Comment != "" {
			line += "  # " + c.Comment
		}
		fmt.Println(line)
	}
}
