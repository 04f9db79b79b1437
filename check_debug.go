//go:build llrb_check

package llrb

// checkAfterMutation validates the tree after every mutating operation and
// panics on the first violated invariant.
func checkAfterMutation[K, V any](m *Map[K, V], op string) {
	if err := m.Check(); err != nil {
		T().Errorf("llrb %s: %v", op, err)
		panic(err)
	}
}
