package generate

import (
	"fmt"

	. "github.com/dave/jennifer/jen"
)

type TypeGenerator struct{}

func (g TypeGenerator) GenerateType(f *File, e Enum) bool {
	if e.Doc != "" {
		f.Comment(e.Doc)
	}
	f.Type().Id(e.Type).Uint8()

	defs := make([]Code, 0, len(e.Members))
	for i, m := range e.Members {
		if i == 0 {
			defs = append(defs, Id(e.Ident(m)).Id(e.Type).Op("=").Iota())
		} else {
			defs = append(defs, Id(e.Ident(m)))
		}
	}
	f.Const().Defs(defs...)
	return true
}

type StringerGenerator struct{}

func (g StringerGenerator) GenerateType(f *File, e Enum) bool {
	r := e.receiver()
	cases := make([]Code, 0, len(e.Members))
	for _, m := range e.Members {
		cases = append(cases, Case(Id(e.Ident(m))).Block(Return(Lit(m.Name))))
	}

	if e.hasSymbols() {
		f.Comment(fmt.Sprintf("String returns the name of the %s, e.g. %q.", lowerFirst(e.Type), e.Members[len(e.Members)/2].Name))
	}
	f.Func().Params(Id(r).Id(e.Type)).Id("String").Params().String().Block(
		Switch(Id(r)).Block(cases...),
		Return(
			Lit(e.Type+"(").
				Op("+").Qual("strconv", "Itoa").Call(Int().Call(Id(r))).
				Op("+").Lit(")"),
		),
	)
	return true
}

type SymbolGenerator struct{}

func (g SymbolGenerator) GenerateType(f *File, e Enum) bool {
	if !e.hasSymbols() {
		return false
	}
	r := e.receiver()
	cases := make([]Code, 0, len(e.Members))
	for _, m := range e.Members {
		cases = append(cases, Case(Id(e.Ident(m))).Block(Return(Lit(m.Symbol))))
	}

	f.Comment(fmt.Sprintf("Symbol returns the source text of the %s, e.g. %q.", lowerFirst(e.Type), e.Members[len(e.Members)/2].Symbol))
	f.Func().Params(Id(r).Id(e.Type)).Id("Symbol").Params().String().Block(
		Switch(Id(r)).Block(cases...),
		Return(Lit("")),
	)
	return true
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}
