package selection

// Debouncer provides last-write-wins debouncing for incremental search
// without depending on any particular scheduler. Every keystroke arms a new
// pending query and gets a generation stamp; when a timer fires it hands
// its stamp back, and only the most recent one resolves. A stale timer that
// outlives a newer keystroke is superseded, never applied.
type Debouncer struct {
	gen     int
	pending string
	armed   bool
}

// Arm registers query as the pending value, superseding any earlier pending
// query, and returns the generation stamp the timer must carry.
func (d *Debouncer) Arm(query string) int {
	d.gen++
	d.pending = query
	d.armed = true
	return d.gen
}

// Fire resolves a generation stamp. It returns the pending query and true
// only for the stamp of the most recent Arm, and only once.
func (d *Debouncer) Fire(gen int) (string, bool) {
	if !d.armed || gen != d.gen {
		return "", false
	}
	d.armed = false
	return d.pending, true
}

// Cancel drops any pending query, invalidating outstanding stamps.
func (d *Debouncer) Cancel() {
	d.armed = false
}
