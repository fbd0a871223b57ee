// Package assert provides fatal, panic-based checks for conditions that a
// caller can never trigger through normal use — broken invariants, not
// input validation. Call sites that can be reached by a misbehaving caller
// should return an error instead.
package assert

import "fmt"

// Invariant panics with the formatted message if cond is false. Use it at
// the points a data structure's own correctness is being asserted, not for
// checking arguments supplied by a caller.
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
