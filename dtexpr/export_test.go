package dtexpr

func (e *Evaluator) Expression(tokens Tokens) (Expression, error) {
	return e.expression(tokens)
}
