// Package cases loads addition expectation files and checks them.
//
// A case file lists named cases, each an addition at a given kind with the
// sum it must produce. YAML, TOML and CUE files share one layout:
//
//	cases:
//	  - name: int
//	    type: int
//	    a: 20
//	    b: 30
//	    expect: 50
//	  - name: float64-tolerance
//	    type: float64
//	    a: 0.1
//	    b: 0.2
//	    expect: 0.3
//	    tolerance: 1e-9
//
// Operands may be numeric literals or quoted strings. Quote them to use
// base prefixes such as "0xFF" or to keep digits a float would round.
package cases
