// Package dtexpr evaluates small arithmetic and comparison expressions over
// values of package datetime.
//
// An expression is a token stream of Text fragments interleaved with operands.
// Operands are opaque: they are never rendered to text and re-parsed. The
// grammar, in order of increasing precedence:
//
//	expr     := poly ( ( "<=" | "<" | "==" | "!=" | ">=" | ">" ) expr )?
//	poly     := term ( ( "+" | "-" ) poly )?
//	term     := negterm
//	negterm  := "-" realexpr | realexpr
//	realexpr := "(" poly ")" | operand
//
// Binary operators associate to the right: "a - b - c" is "a - (b - c)".
//
// Most callers go through Eval, which binds values to the "?" markers of a
// template and caches the parsed expression per template:
//
//	ok, err := dtexpr.Eval(ctx, "? - ? <= ?", deadline, now, grace)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(ok) // Output: true
package dtexpr
