package calendar

// nextID returns the id the next created task will receive.
func (s *Store) nextID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.next
}
