package docmodel

// Stylesheet maps a unique style-name to a partial style. Names are
// case-sensitive; the only lookup failure is an unknown name.
type Stylesheet map[string]PartialStyle

// Lookup resolves a single style name, returning UnknownStyle if absent.
func (s Stylesheet) Lookup(name string) (PartialStyle, error) {
	p, ok := s[name]
	if !ok {
		return PartialStyle{}, &UnknownStyleError{Name: name}
	}
	return p, nil
}

// Fold applies Merge across every name in refs, in order, starting from
// base.
func (s Stylesheet) Fold(base PartialStyle, refs []string) (PartialStyle, error) {
	acc := base
	for _, name := range refs {
		entry, err := s.Lookup(name)
		if err != nil {
			return PartialStyle{}, err
		}
		acc = acc.Merge(entry)
	}
	return acc, nil
}
