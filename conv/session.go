package conv

// session represents immutable conversion state of a single nesting level
type session struct {
	depth   int
	options *Options
}

func newSession(options *Options) session {
	return session{depth: options.MaxDepth, options: options}
}

// descend returns nested object session
func (s session) descend() session {
	return session{depth: s.depth - 1, options: s.options}
}

func (s session) exceeded() bool {
	return s.depth <= 0
}

// withTimeLayout returns session formatting time values with supplied layout
func (s session) withTimeLayout(layout string) session {
	if layout == "" || layout == s.options.TimeLayout {
		return s
	}
	options := *s.options
	options.TimeLayout = layout
	return session{depth: s.depth, options: &options}
}
