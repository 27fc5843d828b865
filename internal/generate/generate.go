// Package generate renders the enumerations of the module as Go source.
package generate

import (
	"fmt"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// Header is the comment that opens every generated file.
const Header = "Code generated by internal/cmd/generate. DO NOT EDIT."

// Enum describes an integer enumeration with a String method.
type Enum struct {
	// Type is the Go type name, which also prefixes every member identifier.
	Type string
	// Doc is the doc comment of the type.
	Doc     string
	Members []Member
}

// Member is a single value of an Enum.
type Member struct {
	// Name is returned by String. The identifier is Type followed by Name
	// in camel case, so "lesser-than" of Operator is OperatorLesserThan.
	Name string
	// Symbol is returned by the Symbol method if any member of the Enum has one.
	Symbol string
}

// Ident returns the Go identifier of m in e.
func (e Enum) Ident(m Member) string {
	return e.Type + strcase.ToCamel(m.Name)
}

func (e Enum) receiver() string {
	return strings.ToLower(e.Type[:1])
}

func (e Enum) hasSymbols() bool {
	for _, m := range e.Members {
		if m.Symbol != "" {
			return true
		}
	}
	return false
}

// Generator adds the declarations of one concern for an Enum to a file.
type Generator interface {
	// GenerateType adds declarations for e and reports whether it added any.
	GenerateType(f *File, e Enum) bool
}

// Generate renders e with the given generators into a file of package pkgName.
func Generate(pkgName string, e Enum, generators ...Generator) (*File, error) {
	if len(e.Members) == 0 {
		return nil, fmt.Errorf("enum %s has no members", e.Type)
	}
	f := NewFile(pkgName)
	f.HeaderComment(Header)
	generated := false
	for _, g := range generators {
		if g.GenerateType(f, e) {
			generated = true
		}
	}
	if !generated {
		return nil, fmt.Errorf("no generator produced declarations for %s", e.Type)
	}
	return f, nil
}

// DefaultGenerators are the generators run for every Enum.
var DefaultGenerators = []Generator{
	TypeGenerator{},
	StringerGenerator{},
	SymbolGenerator{},
}
