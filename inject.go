package dragon

// InjectKey queues a synthetic key press. Injected presses are handled at the
// start of the next Update, one per frame, before any real input.
func (s *Scene) InjectKey(k Key) {
	s.injectQueue = append(s.injectQueue, k)
}

// InjectKeys queues several presses, consumed over consecutive frames.
func (s *Scene) InjectKeys(keys ...Key) {
	s.injectQueue = append(s.injectQueue, keys...)
}

// popInjectedKey removes the oldest injected press. ok is false when the
// queue is empty.
func (s *Scene) popInjectedKey() (k Key, ok bool) {
	if len(s.injectQueue) == 0 {
		return 0, false
	}
	k = s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	return k, true
}
