package model

// Numbers is an ordered sequence of generated identity numbers that can be
// read more than once without holding it all in memory.
type Numbers interface {
	Len() uint64
	Range(fn func(index uint64, number string) error) error
}

// NumberList is an in-memory Numbers.
type NumberList []string

// Len returns the number of entries.
func (l NumberList) Len() uint64 {
	return uint64(len(l))
}

// Range calls fn for each entry in order and stops at the first error.
func (l NumberList) Range(fn func(index uint64, number string) error) error {
	for i, n := range l {
		if err := fn(uint64(i), n); err != nil {
			return err
		}
	}

	return nil
}
