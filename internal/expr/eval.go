package expr

// Values are float64, string, bool or nil: the kinds produced by literals
// and by ParseValue. Equality is only defined within a kind, except that
// null compares unequal to everything but null.

// environment resolves identifiers.
type environment map[string]any

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	default:
		return ""
	}
}

func (n literalNode) eval(environment) (any, error) {
	return n.value, nil
}

func (n identifierNode) eval(env environment) (any, error) {
	value, ok := env[n.name]
	if !ok {
		return nil, expressionError("unknown variable %q", n.name)
	}
	if kindOf(value) == "" {
		return nil, expressionError("variable %q has unsupported type %T", n.name, value)
	}
	return value, nil
}

func (n unaryNode) eval(env environment) (any, error) {
	operand, err := evalBool(n.right, env)
	if err != nil {
		return nil, err
	}
	return !operand, nil
}

func (n binaryNode) eval(env environment) (any, error) {
	if n.op == tokenAnd || n.op == tokenOr {
		left, err := evalBool(n.left, env)
		if err != nil {
			return nil, err
		}
		// && stops on false, || stops on true.
		if left == (n.op == tokenOr) {
			return left, nil
		}
		return evalBool(n.right, env)
	}

	left, err := n.left.eval(env)
	if err != nil {
		return nil, err
	}
	right, err := n.right.eval(env)
	if err != nil {
		return nil, err
	}

	equal, err := equalValues(left, right)
	if err != nil {
		return nil, err
	}
	return equal == (n.op == tokenEqual), nil
}

func evalBool(n node, env environment) (bool, error) {
	value, err := n.eval(env)
	if err != nil {
		return false, err
	}

	b, ok := value.(bool)
	if !ok {
		return false, expressionError("expected boolean, got %s", kindOf(value))
	}
	return b, nil
}

func equalValues(left, right any) (bool, error) {
	if left == nil || right == nil {
		return left == right, nil
	}
	if kindOf(left) != kindOf(right) {
		return false, expressionError("cannot compare %s and %s", kindOf(left), kindOf(right))
	}
	return left == right, nil
}

// Eval parses input and evaluates it against variables, which must hold
// float64, string, bool or nil values. The expression must produce a boolean.
func Eval(input string, variables map[string]any) (bool, error) {
	root, err := parse(input)
	if err != nil {
		return false, err
	}

	return evalBool(root, environment(variables))
}

func Validate(input string) error {
	_, err := parse(input)
	return err
}

// ValidateBoolean rejects expressions whose root can never be boolean.
func ValidateBoolean(input string) error {
	root, err := parse(input)
	if err != nil {
		return err
	}

	return checkBoolean(root)
}

// checkBoolean walks the positions that must hold a boolean. Identifiers and
// comparisons always pass; only literals can be rejected without variables.
func checkBoolean(root node) error {
	switch n := root.(type) {
	case literalNode:
		if _, ok := n.value.(bool); !ok {
			return expressionError("expression must evaluate to boolean, got %s", kindOf(n.value))
		}
	case unaryNode:
		return checkBoolean(n.right)
	case binaryNode:
		if n.op == tokenAnd || n.op == tokenOr {
			if err := checkBoolean(n.left); err != nil {
				return err
			}
			return checkBoolean(n.right)
		}
	}
	return nil
}
