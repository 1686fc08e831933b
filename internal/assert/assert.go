// Package assert provides assertion traps that compile to no-ops unless the
// "identassert" build tag is set. Production builds log and continue in
// degraded mode where debug builds trap.
package assert

// That panics with msg when cond is false and assertions are compiled in.
func That(cond bool, msg string) {
	if Enabled && !cond {
		panic("assert: " + msg)
	}
}
