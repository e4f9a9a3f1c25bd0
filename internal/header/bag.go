package header

// Bag is the header's keyed property map. Fields absent from an older
// format version are simply absent from the map.
type Bag map[string]Value

// Has reports whether name is present in the bag.
func (b Bag) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// GetI32 returns the named field as an int32, or 0 and an error if
// missing or of the wrong kind.
func (b Bag) GetI32(name string) (int32, error) {
	v, ok := b[name]
	if !ok {
		return 0, &MissingFieldError{Name: name}
	}
	i, err := v.AsI32()
	if err != nil {
		return 0, named(name, err)
	}
	return i, nil
}

// GetString returns the named field as a string.
func (b Bag) GetString(name string) (string, error) {
	v, ok := b[name]
	if !ok {
		return "", &MissingFieldError{Name: name}
	}
	s, err := v.AsString()
	if err != nil {
		return "", named(name, err)
	}
	return s, nil
}

// GetBytes returns the named field as a raw byte slice (used for guid).
func (b Bag) GetBytes(name string) ([]byte, error) {
	v, ok := b[name]
	if !ok {
		return nil, &MissingFieldError{Name: name}
	}
	bs, err := v.AsBytes()
	if err != nil {
		return nil, named(name, err)
	}
	return bs, nil
}

func named(name string, err error) error {
	if mm, ok := err.(*KindMismatchError); ok {
		mm.Name = name
		return mm
	}
	return err
}

// MissingFieldError is returned by typed accessors when a required
// field is absent from the bag.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return "header field " + e.Name + " is not present"
}
