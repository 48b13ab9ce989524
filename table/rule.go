package table

import (
	"log/slog"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/commander/parse"
	"github.com/ardnew/commander/pkg"
)

// Rule is a constraint on a parse result, written in expr syntax. The
// expression must evaluate to a boolean; false means the rule is violated.
//
// Expressions can use:
//
//	seen(name) bool       whether an option was given
//	times(name) int       how many times an option was given
//	value(name) string    the last value of an option, or ""
//	positionals []string  the positional arguments
//	errors int            the number of invalid tokens
//
// Names are spelled as for [parse.Output.Value].
type Rule struct {
	Name    string `json:"name"              yaml:"name"`
	Expr    string `json:"expr"              yaml:"expr"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Violation is a rule that did not hold.
type Violation struct {
	Rule Rule
}

func (v Violation) Error() string {
	if v.Rule.Message != "" {
		return v.Rule.Message
	}

	return "rule " + v.Rule.Name + " violated"
}

// LogValue implements slog.LogValuer.
func (v Violation) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("rule", v.Rule.Name),
		slog.String("expr", v.Rule.Expr),
	)
}

// ruleEnv is the environment rules are compiled and run against.
// Compilation only needs its shape, so an empty Output serves.
func ruleEnv(out *parse.Output) map[string]any {
	positionals := append([]string{}, out.Positionals()...)

	return map[string]any{
		"seen":  out.Seen,
		"times": out.Count,
		"value": func(name string) string {
			v, _ := out.Value(name)

			return v
		},
		"positionals": positionals,
		"errors":      len(out.Errors()),
	}
}

// programs stores compiled rules keyed by expression text. Every rule is
// compiled against the same environment shape, so a program depends on
// nothing but its expression.
var programs sync.Map

func compileRule(r Rule) (*vm.Program, error) {
	if p, ok := programs.Load(r.Expr); ok {
		return p.(*vm.Program), nil
	}

	program, err := expr.Compile(r.Expr, expr.Env(ruleEnv(new(parse.Output))), expr.AsBool())
	if err != nil {
		return nil, pkg.ErrRuleCompile.Wrapf("%s", r.Name).Wrap(err)
	}

	p, _ := programs.LoadOrStore(r.Expr, program)

	return p.(*vm.Program), nil
}

// Compile compiles every rule of t. Each distinct expression is compiled
// once per process.
func (t *Table) Compile() ([]*vm.Program, error) {
	compiled := make([]*vm.Program, len(t.Rules))

	for i, r := range t.Rules {
		program, err := compileRule(r)
		if err != nil {
			return nil, err
		}

		compiled[i] = program
	}

	return compiled, nil
}

// Check evaluates every rule of t against out and returns the violated
// ones, in table order. The error is non-nil only if a rule fails to
// compile or run.
func (t *Table) Check(out *parse.Output) ([]Violation, error) {
	if len(t.Rules) == 0 {
		return nil, nil
	}

	compiled, err := t.Compile()
	if err != nil {
		return nil, err
	}

	env := ruleEnv(out)

	var violations []Violation

	for i, program := range compiled {
		result, err := expr.Run(program, env)
		if err != nil {
			return nil, pkg.ErrRuleEvaluate.Wrapf("%s", t.Rules[i].Name).Wrap(err)
		}

		if ok, _ := result.(bool); !ok {
			violations = append(violations, Violation{Rule: t.Rules[i]})
		}
	}

	return violations, nil
}
