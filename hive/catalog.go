package hive

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/lakecat/lakecat/hive/hmsstore"
	"github.com/lakecat/lakecat/meta"
	"github.com/lakecat/lakecat/meta/rel"
)

// Catalog drives table operations against the metastore record store,
// converting between Table entities and hms records at the boundary.
type Catalog struct {
	store *hmsstore.Store
	cfg   Config
}

func NewCatalog(store *hmsstore.Store, cfg Config) *Catalog {
	return &Catalog{store: store, cfg: cfg}
}

// CreateTable finalizes b, applying catalog defaults first, and stores the
// resulting table's metastore record. Unset storage fields default to the
// configured format classes; an unset location is allocated under the
// warehouse root as <warehouse>/<db>.db/<table>; an unset create time is
// now. Returns the built entity.
func (c *Catalog) CreateTable(ctx context.Context, b *TableBuilder) (*Table, error) {
	if b.Namespace.IsRoot() {
		return nil, fmt.Errorf("create table %q: namespace must name a database", b.Name)
	}
	if b.Properties == nil {
		b.Properties = make(map[string]string)
	}
	if b.InputFormat == "" {
		b.InputFormat = c.cfg.Formats.inputFormat()
	}
	if b.OutputFormat == "" {
		b.OutputFormat = c.cfg.Formats.outputFormat()
	}
	if b.SerLib == "" {
		b.SerLib = c.cfg.Formats.serLib()
	}
	if b.Location == "" {
		b.Location = path.Join(c.cfg.Warehouse, b.Namespace.Last()+".db", b.Name)
	}
	if b.CreateTime == 0 {
		b.CreateTime = int32(time.Now().Unix())
	}

	t, err := b.Build()
	if err != nil {
		return nil, err
	}
	ht, err := t.ToHMSTable()
	if err != nil {
		return nil, err
	}
	if err := c.store.CreateTable(ctx, ht); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTable reads a table's metastore record and translates it into an
// entity. Identity comes from ident; audit info is reconstructed from the
// record's owner and create time.
func (c *Catalog) LoadTable(ctx context.Context, ident meta.NameIdentifier) (*Table, error) {
	db := ident.Namespace().Last()
	if db == "" {
		return nil, fmt.Errorf("load table %q: namespace must name a database", ident.Name())
	}
	ht, err := c.store.GetTable(ctx, db, ident.Name())
	if err != nil {
		return nil, err
	}

	b := &TableBuilder{
		TableCommon: rel.TableCommon{
			Namespace: ident.Namespace(),
			Name:      ht.TableName,
			Audit: meta.AuditInfo{
				Creator:    ht.Owner,
				CreateTime: time.Unix(int64(ht.CreateTime), 0),
			},
		},
	}
	return FromHMSTable(ht, b)
}

// ListTables returns the identifiers of all tables under a database
// namespace.
func (c *Catalog) ListTables(ctx context.Context, ns meta.Namespace) ([]meta.NameIdentifier, error) {
	db := ns.Last()
	if db == "" {
		return nil, fmt.Errorf("list tables: namespace must name a database")
	}
	names, err := c.store.ListTables(ctx, db)
	if err != nil {
		return nil, err
	}
	idents := make([]meta.NameIdentifier, len(names))
	for i, name := range names {
		idents[i] = meta.NewIdentifier(ns, name)
	}
	return idents, nil
}

// DropTable removes a table's metastore record.
func (c *Catalog) DropTable(ctx context.Context, ident meta.NameIdentifier) error {
	db := ident.Namespace().Last()
	if db == "" {
		return fmt.Errorf("drop table %q: namespace must name a database", ident.Name())
	}
	return c.store.DropTable(ctx, db, ident.Name())
}
