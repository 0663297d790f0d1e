package playlog

// Option applies a configuration option to the Reader.
type Option func(*Reader)

// WithComma sets the field delimiter. Invalid delimiters are ignored.
func WithComma(r rune) Option {
	return func(rd *Reader) {
		if r != 0 && r != '"' && r != '\r' && r != '\n' {
			rd.comma = r
		}
	}
}

// WithHeader controls whether the first record is skipped as a header.
func WithHeader(skip bool) Option {
	return func(rd *Reader) {
		rd.skipHeader = skip
	}
}
