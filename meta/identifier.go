// Package meta holds the catalog's entity metadata primitives: namespaces,
// name identifiers and audit info. Entities in higher layers compose these.
package meta

import (
	"fmt"
	"strings"
)

// Namespace is an ordered path of name levels, e.g. ["metalake", "catalog",
// "db"]. The zero value is the root namespace.
type Namespace struct {
	levels []string
}

func NewNamespace(levels ...string) Namespace {
	return Namespace{levels: levels}
}

// Levels returns a copy of the namespace path.
func (n Namespace) Levels() []string {
	out := make([]string, len(n.levels))
	copy(out, n.levels)
	return out
}

// Last returns the final level, or "" for the root namespace.
func (n Namespace) Last() string {
	if len(n.levels) == 0 {
		return ""
	}
	return n.levels[len(n.levels)-1]
}

func (n Namespace) IsRoot() bool { return len(n.levels) == 0 }

func (n Namespace) String() string {
	return strings.Join(n.levels, ".")
}

// NameIdentifier uniquely names an entity: a namespace plus the entity's
// local name.
type NameIdentifier struct {
	namespace Namespace
	name      string
}

func NewIdentifier(ns Namespace, name string) NameIdentifier {
	return NameIdentifier{namespace: ns, name: name}
}

// IdentifierOf builds an identifier from full path segments; the last
// segment is the local name and the rest form the namespace.
func IdentifierOf(names ...string) (NameIdentifier, error) {
	if len(names) == 0 {
		return NameIdentifier{}, fmt.Errorf("identifier requires at least one name segment")
	}
	return NameIdentifier{
		namespace: NewNamespace(names[:len(names)-1]...),
		name:      names[len(names)-1],
	}, nil
}

func (i NameIdentifier) Namespace() Namespace { return i.namespace }

func (i NameIdentifier) Name() string { return i.name }

// Parent derives the identifier of the entity owning this one by dropping
// the local name: the namespace's last level becomes the parent's name.
func (i NameIdentifier) Parent() (NameIdentifier, error) {
	return IdentifierOf(i.namespace.Levels()...)
}

func (i NameIdentifier) String() string {
	if i.namespace.IsRoot() {
		return i.name
	}
	return i.namespace.String() + "." + i.name
}
