// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import "sync/atomic"

// Holder publishes the serving snapshot. Readers call Current once per
// request; a rebuild installs a complete new Engine with Swap, so no reader
// ever observes a partially built snapshot.
type Holder struct {
	current atomic.Pointer[Engine]
}

// NewHolder creates a holder serving e. e may be nil.
func NewHolder(e *Engine) *Holder {
	h := &Holder{}
	if e != nil {
		h.current.Store(e)
	}
	return h
}

// Current returns the serving snapshot, or nil before the first build.
func (h *Holder) Current() *Engine {
	return h.current.Load()
}

// Ready reports whether a snapshot is being served.
func (h *Holder) Ready() bool {
	return h.current.Load() != nil
}

// Swap installs e and returns the previous snapshot. A nil e is ignored.
func (h *Holder) Swap(e *Engine) *Engine {
	if e == nil {
		return h.current.Load()
	}
	return h.current.Swap(e)
}
