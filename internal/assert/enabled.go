//go:build identassert

package assert

// Enabled reports whether assertion traps are compiled in.
const Enabled = true
