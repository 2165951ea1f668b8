package session

// ActiveLocks exposes the lock map size to the external tests.
func (m *Manager[T]) ActiveLocks() int {
	return m.activeLocks()
}
