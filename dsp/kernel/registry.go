package kernel

import (
	"fmt"
	"sort"
	"strings"
)

// Params carries hyperparameters for kernels resolved by name.
// Zero values select the documented defaults.
type Params struct {
	LengthScale float64 // rbf, default 1
	Gamma       float64 // laplacian, polynomial; default 1
	Coef0       float64 // polynomial
	Degree      int     // polynomial, default 2
}

type entry struct {
	summary string
	build   func(p Params) (Kernel, error)
}

var registry = map[string]entry{
	"rbf": {
		summary: "exp(-|a-b|^2 / (2 l^2))",
		build: func(p Params) (Kernel, error) {
			return RBF(orDefault(p.LengthScale, 1))
		},
	},
	"laplacian": {
		summary: "exp(-gamma |a-b|_1)",
		build: func(p Params) (Kernel, error) {
			return Laplacian(orDefault(p.Gamma, 1))
		},
	},
	"linear": {
		summary: "a.b",
		build:   func(Params) (Kernel, error) { return Linear(), nil },
	},
	"polynomial": {
		summary: "(gamma a.b + coef0)^degree",
		build: func(p Params) (Kernel, error) {
			degree := p.Degree
			if degree == 0 {
				degree = 2
			}
			return Polynomial(orDefault(p.Gamma, 1), p.Coef0, degree)
		},
	},
	"cosine": {
		summary: "a.b / (|a| |b|)",
		build:   func(Params) (Kernel, error) { return Cosine(), nil },
	},
	"tanimoto": {
		summary: "a.b / (|a|^2 + |b|^2 - a.b)",
		build:   func(Params) (Kernel, error) { return Tanimoto(), nil },
	},
	"euclidean": {
		summary: "|a-b| (distance)",
		build:   func(Params) (Kernel, error) { return Euclidean(), nil },
	},
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// Lookup builds the kernel registered under name (case-insensitive).
func Lookup(name string, p Params) (Kernel, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return e.build(p)
}

// Names returns the registered kernel names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Summary returns the one-line formula for a registered kernel, or "".
func Summary(name string) string {
	return registry[strings.ToLower(strings.TrimSpace(name))].summary
}
