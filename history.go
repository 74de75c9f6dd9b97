package calcpad

// undoLog is a bounded stack of equation snapshots. Every structural
// mutation records its post-state; identical consecutive snapshots collapse
// into one entry.
type undoLog struct {
	snaps []equation
	limit int
}

const (
	defaultUndoLimit = 300

	// Once the limit is exceeded the oldest third is dropped in one trim,
	// so the log shrinks in steps rather than on every record.
	undoTrimFraction = 3
)

func (log *undoLog) record(eq equation) {
	if n := len(log.snaps); n > 0 && log.snaps[n-1].equal(eq) {
		return
	}
	log.snaps = append(log.snaps, eq.snapshot())

	limit := log.limit
	if limit == 0 {
		limit = defaultUndoLimit
	}
	if len(log.snaps) > limit {
		drop := limit / undoTrimFraction
		log.snaps = append(log.snaps[:0], log.snaps[drop:]...)
	}
}

// undo pops the most recent snapshot and returns it as the equation to
// install. Since every mutation records its own post-state, the top of the
// stack usually mirrors the live equation; in that case one more pop (when
// available) reaches the actual prior state.
func (log *undoLog) undo(current equation) (equation, bool) {
	n := len(log.snaps)
	if n == 0 {
		return nil, false
	}
	top := log.snaps[n-1]
	log.snaps = log.snaps[:n-1]
	if top.equal(current) && len(log.snaps) > 0 {
		n = len(log.snaps)
		top = log.snaps[n-1]
		log.snaps = log.snaps[:n-1]
	}
	return top.snapshot(), true
}

func (log *undoLog) depth() int { return len(log.snaps) }
