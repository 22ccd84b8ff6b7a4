package main

import (
	"fmt"
	"strings"

	"github.com/piranha-cas/pyranha/core"
	"github.com/piranha-cas/pyranha/types"
)

// resolve evaluates a generator expression against reg. An expression is a
// published name, optionally followed by bracketed arguments that are
// expressions themselves, e.g. "poisson_series[polynomial[rational,kronecker_monomial]]".
func resolve(reg *types.Registry, expr string) (*core.Generator, error) {

	expr = strings.TrimSpace(expr)

	open := strings.IndexByte(expr, '[')
	if open < 0 {
		g, ok := reg.Lookup(expr)
		if !ok {
			return nil, fmt.Errorf("generator %q is not published", expr)
		}
		return g, nil
	}

	if !strings.HasSuffix(expr, "]") {
		return nil, fmt.Errorf("malformed expression %q: missing closing bracket", expr)
	}

	tmpl, err := resolve(reg, expr[:open])
	if err != nil {
		return nil, err
	}

	parts, err := splitArgs(expr[open+1 : len(expr)-1])
	if err != nil {
		return nil, fmt.Errorf("malformed expression %q: %w", expr, err)
	}

	args := make([]*core.Generator, len(parts))
	for i, p := range parts {
		if args[i], err = resolve(reg, p); err != nil {
			return nil, err
		}
	}

	return tmpl.Instantiate(args...)
}

// splitArgs splits s on the commas that are not nested in brackets.
func splitArgs(s string) (parts []string, err error) {
	var depth, start int
	for i, c := range s {
		switch c {
		case '[':
			depth++
		case ']':
			if depth--; depth < 0 {
				return nil, fmt.Errorf("unbalanced brackets")
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced brackets")
	}
	parts = append(parts, s[start:])
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("empty argument")
		}
	}
	return
}
