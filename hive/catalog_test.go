package hive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakecat/lakecat/hive/hms"
	"github.com/lakecat/lakecat/hive/hmsstore"
	"github.com/lakecat/lakecat/meta"
	"github.com/lakecat/lakecat/meta/rel"
	"github.com/lakecat/lakecat/types"
)

func newTestCatalog(t *testing.T) (*Catalog, *hmsstore.Store) {
	t.Helper()
	store, err := hmsstore.Open(hmsstore.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	cfg := Config{Name: "test", Warehouse: "/warehouse"}
	return NewCatalog(store, cfg), store
}

func dbNamespace() meta.Namespace {
	return meta.NewNamespace("metalake", "catalog", "db1")
}

func createTestDatabase(t *testing.T, store *hmsstore.Store) {
	t.Helper()
	err := store.CreateDatabase(context.Background(), &hms.Database{
		Name:        "db1",
		LocationURI: "/warehouse/db1.db",
	})
	require.NoError(t, err)
}

func TestCatalog_CreateTable(t *testing.T) {
	ctx := context.Background()

	t.Run("applies storage defaults", func(t *testing.T) {
		catalog, store := newTestCatalog(t)
		createTestDatabase(t, store)

		tbl, err := catalog.CreateTable(ctx, &TableBuilder{
			TableCommon: rel.TableCommon{
				Namespace: dbNamespace(),
				Name:      "events",
				Comment:   "event log",
				Audit:     meta.AuditInfo{Creator: "alice"},
				Columns: []rel.Column{
					{Name: "id", Type: types.I64()},
					{Name: "payload", Type: types.String()},
				},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, DefaultInputFormat, tbl.InputFormat)
		assert.Equal(t, DefaultOutputFormat, tbl.OutputFormat)
		assert.Equal(t, DefaultSerLib, tbl.SerLib)
		assert.Equal(t, "/warehouse/db1.db/events", tbl.Location)
		assert.Equal(t, ManagedTable, tbl.TableType)
		assert.NotZero(t, tbl.CreateTime)

		stored, err := store.GetTable(ctx, "db1", "events")
		require.NoError(t, err)
		assert.Equal(t, "events", stored.TableName)
		assert.Equal(t, "alice", stored.Owner)
		assert.Equal(t, "event log", stored.Parameters[TableCommentKey])
		assert.Empty(t, stored.PartitionKeys)
	})

	t.Run("keeps explicit storage settings", func(t *testing.T) {
		catalog, store := newTestCatalog(t)
		createTestDatabase(t, store)

		tbl, err := catalog.CreateTable(ctx, &TableBuilder{
			TableCommon: rel.TableCommon{
				Namespace: dbNamespace(),
				Name:      "ext",
				Columns:   []rel.Column{{Name: "id", Type: types.I32()}},
			},
			TableType:    ExternalTable,
			Location:     "s3://bucket/data/ext",
			InputFormat:  "org.apache.hadoop.hive.ql.io.orc.OrcInputFormat",
			OutputFormat: "org.apache.hadoop.hive.ql.io.orc.OrcOutputFormat",
			SerLib:       "org.apache.hadoop.hive.ql.io.orc.OrcSerde",
			CreateTime:   777,
		})
		require.NoError(t, err)
		assert.Equal(t, ExternalTable, tbl.TableType)
		assert.Equal(t, "s3://bucket/data/ext", tbl.Location)
		assert.Equal(t, int32(777), tbl.CreateTime)

		stored, err := store.GetTable(ctx, "db1", "ext")
		require.NoError(t, err)
		assert.Equal(t, "EXTERNAL_TABLE", stored.TableType)
		assert.Equal(t, "org.apache.hadoop.hive.ql.io.orc.OrcSerde", stored.Sd.SerdeInfo.SerializationLib)
	})

	t.Run("root namespace fails", func(t *testing.T) {
		catalog, _ := newTestCatalog(t)
		_, err := catalog.CreateTable(ctx, &TableBuilder{
			TableCommon: rel.TableCommon{Name: "orphan"},
		})
		require.Error(t, err)
	})

	t.Run("missing database fails", func(t *testing.T) {
		catalog, _ := newTestCatalog(t)
		_, err := catalog.CreateTable(ctx, &TableBuilder{
			TableCommon: rel.TableCommon{Namespace: dbNamespace(), Name: "events"},
		})
		require.ErrorIs(t, err, hmsstore.ErrDatabaseNotFound)
	})

	t.Run("duplicate table fails", func(t *testing.T) {
		catalog, store := newTestCatalog(t)
		createTestDatabase(t, store)

		build := func() *TableBuilder {
			return &TableBuilder{TableCommon: rel.TableCommon{Namespace: dbNamespace(), Name: "events"}}
		}
		_, err := catalog.CreateTable(ctx, build())
		require.NoError(t, err)
		_, err = catalog.CreateTable(ctx, build())
		require.ErrorIs(t, err, hmsstore.ErrTableAlreadyExists)
	})
}

func TestCatalog_LoadTable(t *testing.T) {
	ctx := context.Background()
	catalog, store := newTestCatalog(t)
	createTestDatabase(t, store)

	created, err := catalog.CreateTable(ctx, &TableBuilder{
		TableCommon: rel.TableCommon{
			Namespace: dbNamespace(),
			Name:      "events",
			Comment:   "event log",
			Audit:     meta.AuditInfo{Creator: "alice"},
			Columns: []rel.Column{
				{Name: "id", Type: types.I64()},
				{Name: "tags", Type: types.List(types.String()), Comment: "free-form tags"},
			},
		},
	})
	require.NoError(t, err)

	loaded, err := catalog.LoadTable(ctx, meta.NewIdentifier(dbNamespace(), "events"))
	require.NoError(t, err)

	assert.Equal(t, created.Name, loaded.Name)
	assert.Equal(t, created.Comment, loaded.Comment)
	assert.Equal(t, created.Location, loaded.Location)
	assert.Equal(t, created.TableType, loaded.TableType)
	assert.Equal(t, created.CreateTime, loaded.CreateTime)
	assert.Equal(t, "alice", loaded.Audit.Creator)
	require.Len(t, loaded.Columns, 2)
	assert.Equal(t, "tags", loaded.Columns[1].Name)
	assert.True(t, loaded.Columns[1].Type.Equal(types.List(types.String())))
	assert.Equal(t, "free-form tags", loaded.Columns[1].Comment)

	t.Run("missing table fails", func(t *testing.T) {
		_, err := catalog.LoadTable(ctx, meta.NewIdentifier(dbNamespace(), "nope"))
		require.ErrorIs(t, err, hmsstore.ErrTableNotFound)
	})

	t.Run("root namespace fails", func(t *testing.T) {
		_, err := catalog.LoadTable(ctx, meta.NewIdentifier(meta.NewNamespace(), "events"))
		require.Error(t, err)
	})
}

func TestCatalog_ListAndDrop(t *testing.T) {
	ctx := context.Background()
	catalog, store := newTestCatalog(t)
	createTestDatabase(t, store)

	for _, name := range []string{"b", "a", "c"} {
		_, err := catalog.CreateTable(ctx, &TableBuilder{
			TableCommon: rel.TableCommon{Namespace: dbNamespace(), Name: name},
		})
		require.NoError(t, err)
	}

	idents, err := catalog.ListTables(ctx, dbNamespace())
	require.NoError(t, err)
	names := make([]string, len(idents))
	for i, ident := range idents {
		names[i] = ident.Name()
		assert.Equal(t, dbNamespace().String(), ident.Namespace().String())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)

	require.NoError(t, catalog.DropTable(ctx, meta.NewIdentifier(dbNamespace(), "b")))
	idents, err = catalog.ListTables(ctx, dbNamespace())
	require.NoError(t, err)
	assert.Len(t, idents, 2)

	err = catalog.DropTable(ctx, meta.NewIdentifier(dbNamespace(), "b"))
	require.ErrorIs(t, err, hmsstore.ErrTableNotFound)
}
