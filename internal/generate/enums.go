package generate

// Kinds is the enumeration of datetime value variants.
var Kinds = Enum{
	Type: "Kind",
	Doc:  "Kind identifies the variant of a Value.",
	Members: []Member{
		{Name: "Duration"},
		{Name: "Date"},
		{Name: "Time"},
		{Name: "DateTime"},
		{Name: "Number"},
		{Name: "Boolean"},
	},
}

// Operators is the enumeration of dtexpr operators. Names are those reported
// by execution errors and tracers.
var Operators = Enum{
	Type: "Operator",
	Doc:  "Operator identifies the operation of an expression node.",
	Members: []Member{
		{Name: "negation", Symbol: "-"},
		{Name: "addition", Symbol: "+"},
		{Name: "subtraction", Symbol: "-"},
		{Name: "lesser-than", Symbol: "<"},
		{Name: "lesser-or-equal", Symbol: "<="},
		{Name: "equal", Symbol: "=="},
		{Name: "not-equal", Symbol: "!="},
		{Name: "greater-than", Symbol: ">"},
		{Name: "greater-or-equal", Symbol: ">="},
	},
}
