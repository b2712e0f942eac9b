package engine

// history keeps the fingerprints of the most recent generations so the engine
// can tell when the board has settled into a still life or a short cycle
type history struct {
	limit  int
	hashes []string
}

func newHistory(limit int) *history {
	if limit < 0 {
		limit = 0
	}
	return &history{limit: limit}
}

// push records a fingerprint, dropping the oldest beyond the limit
func (h *history) push(hash string) {
	if h.limit == 0 {
		return
	}
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.limit {
		h.hashes = h.hashes[1:]
	}
}

// seen reports whether hash matches one of the recorded generations
func (h *history) seen(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

func (h *history) reset() {
	h.hashes = nil
}
