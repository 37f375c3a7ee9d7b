package controller

// SetPicker swaps the random index source so tests can pin /random.
func (h *CafeController) SetPicker(pick func(n int) int) {
	h.pick = pick
}
