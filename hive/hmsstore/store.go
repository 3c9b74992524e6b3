// Package hmsstore is an embedded store for Hive metastore records, backed
// by BadgerDB. It stands in for a remote metastore service: records are
// stored exactly in their hms wire shape, so everything written here could
// be replayed against a real metastore.
package hmsstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/lakecat/lakecat/hive/hms"
)

var (
	ErrDatabaseNotFound      = errors.New("database not found")
	ErrDatabaseAlreadyExists = errors.New("database already exists")
	ErrDatabaseNotEmpty      = errors.New("database not empty")
	ErrTableNotFound         = errors.New("table not found")
	ErrTableAlreadyExists    = errors.New("table already exists")
)

// Options configures the BadgerDB store.
type Options struct {
	// Path to the database directory. If empty, uses in-memory mode.
	Path string
	// InMemory forces in-memory mode even if Path is set.
	InMemory bool
	// Logger for BadgerDB. If nil, logging is disabled.
	Logger badger.Logger
}

// Store holds metastore database and table records.
type Store struct {
	db *badger.DB
}

// Open opens or creates the store.
func Open(opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path)

	if opts.Path == "" || opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	badgerOpts = badgerOpts.WithLogger(opts.Logger)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying BadgerDB database.
func (s *Store) Close() error {
	return s.db.Close()
}

func databaseKey(name string) []byte {
	return []byte("db/" + name)
}

func tableKey(db, name string) []byte {
	return []byte("tbl/" + db + "/" + name)
}

func tablePrefix(db string) []byte {
	return []byte("tbl/" + db + "/")
}

// CreateDatabase stores a new database record. Fails with
// ErrDatabaseAlreadyExists if the name is taken.
func (s *Store) CreateDatabase(ctx context.Context, d *hms.Database) error {
	if d.Name == "" {
		return fmt.Errorf("database name is required")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		key := databaseKey(d.Name)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("database %q: %w", d.Name, ErrDatabaseAlreadyExists)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return putJSON(txn, key, d)
	})
}

// GetDatabase loads a database record by name.
func (s *Store) GetDatabase(ctx context.Context, name string) (*hms.Database, error) {
	var d hms.Database
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, databaseKey(name), &d, fmt.Errorf("database %q: %w", name, ErrDatabaseNotFound))
	})
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDatabases returns all database names in lexical order.
func (s *Store) ListDatabases(ctx context.Context) ([]string, error) {
	prefix := []byte("db/")
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// DropDatabase removes an empty database. Fails with ErrDatabaseNotEmpty
// when tables still exist under it.
func (s *Store) DropDatabase(ctx context.Context, name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := databaseKey(name)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("database %q: %w", name, ErrDatabaseNotFound)
		} else if err != nil {
			return err
		}
		it := txn.NewIterator(badger.IteratorOptions{Prefix: tablePrefix(name)})
		defer it.Close()
		it.Rewind()
		if it.Valid() {
			return fmt.Errorf("database %q: %w", name, ErrDatabaseNotEmpty)
		}
		return txn.Delete(key)
	})
}

// CreateTable stores a new table record under its DbName. The database
// must exist and the table name must be free.
func (s *Store) CreateTable(ctx context.Context, t *hms.Table) error {
	if t.DbName == "" || t.TableName == "" {
		return fmt.Errorf("table and database names are required")
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(databaseKey(t.DbName)); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("database %q: %w", t.DbName, ErrDatabaseNotFound)
		} else if err != nil {
			return err
		}
		key := tableKey(t.DbName, t.TableName)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("table %q.%q: %w", t.DbName, t.TableName, ErrTableAlreadyExists)
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return putJSON(txn, key, t)
	})
}

// GetTable loads a table record.
func (s *Store) GetTable(ctx context.Context, db, name string) (*hms.Table, error) {
	var t hms.Table
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, tableKey(db, name), &t, fmt.Errorf("table %q.%q: %w", db, name, ErrTableNotFound))
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AlterTable replaces the record stored under db/name with t. A different
// t.TableName renames the table; the new name must be free.
func (s *Store) AlterTable(ctx context.Context, db, name string, t *hms.Table) error {
	return s.db.Update(func(txn *badger.Txn) error {
		oldKey := tableKey(db, name)
		if _, err := txn.Get(oldKey); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("table %q.%q: %w", db, name, ErrTableNotFound)
		} else if err != nil {
			return err
		}
		newKey := tableKey(t.DbName, t.TableName)
		if string(newKey) != string(oldKey) {
			if _, err := txn.Get(newKey); err == nil {
				return fmt.Errorf("table %q.%q: %w", t.DbName, t.TableName, ErrTableAlreadyExists)
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}
			if err := txn.Delete(oldKey); err != nil {
				return err
			}
		}
		return putJSON(txn, newKey, t)
	})
}

// DropTable removes a table record.
func (s *Store) DropTable(ctx context.Context, db, name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := tableKey(db, name)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("table %q.%q: %w", db, name, ErrTableNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(key)
	})
}

// ListTables returns the names of all tables in a database, in lexical
// order. The database must exist.
func (s *Store) ListTables(ctx context.Context, db string) ([]string, error) {
	prefix := tablePrefix(db)
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		if _, err := txn.Get(databaseKey(db)); errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("database %q: %w", db, ErrDatabaseNotFound)
		} else if err != nil {
			return err
		}
		it := txn.NewIterator(badger.IteratorOptions{Prefix: prefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func putJSON(txn *badger.Txn, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize record: %w", err)
	}
	return txn.Set(key, data)
}

func getJSON(txn *badger.Txn, key []byte, v any, notFound error) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return notFound
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, v); err != nil {
			return fmt.Errorf("deserialize record: %w", err)
		}
		return nil
	})
}
