// Package stdlib embeds the Lispy standard library bootstrap for this
// package's own test suite, so stdlib_test.go can exercise it regardless
// of the test binary's working directory. cmd/lispy's runtime bootstrap
// instead looks for a stdlib.lispy file in the process's working
// directory, of which this file (stdlib/stdlib.lispy) is the shipped
// copy; embedding it here is a testing convenience, not the load path a
// running lispy binary takes.
package stdlib

import _ "embed"

//go:embed stdlib.lispy
var Source string
