package calcpad

// Option configures an Editor at construction.
type Option interface{ apply(ed *Editor) }

// New builds an empty editor. The empty equation is recorded so undo can
// step back across the first keypress.
func New(opts ...Option) *Editor {
	var ed Editor
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&ed)
		}
	}
	ed.eq = equation{}
	ed.log.record(ed.eq)
	return &ed
}

// WithLogf injects a trace logging function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithUndoLimit overrides the snapshot cap.
func WithUndoLimit(limit int) Option { return undoLimitOption(limit) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(ed *Editor) { ed.logfn = logfn }

type undoLimitOption int

func (lim undoLimitOption) apply(ed *Editor) { ed.log.limit = int(lim) }
