package segment

// Match resolves p to a digit by translating it through m and looking the
// resulting canonical set up in the catalog. Comparison is set-based, so
// symbol order in the original input never matters.
//
// Match fails with *UnknownPatternError (errors.Is ErrUnknownPattern) when a
// wire of p is unmapped or the normalized set is not a digit.
func Match(p Pattern, m Map) (int, error) {
	s, err := m.Apply(p)
	if err != nil {
		return 0, &UnknownPatternError{Pattern: p, Err: err}
	}
	d, ok := Digit(s)
	if !ok {
		return 0, &UnknownPatternError{Pattern: p, Normalized: s}
	}
	return d, nil
}
