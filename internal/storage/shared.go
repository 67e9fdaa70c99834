package storage

// Cloner is implemented by containers that can deep-copy themselves.
type Cloner[S any] interface {
	Clone() S
}

// Shared holds a container that may be shared with sibling holders. Share
// marks both holders copy-on-write; the first Writable call on a marked
// holder deep-copies the data and clears the mark on that holder only, so
// each holder copies at most once per share.
type Shared[S Cloner[S]] struct {
	data        S
	copyOnWrite bool
}

// NewShared wraps data, which the holder then owns.
func NewShared[S Cloner[S]](data S) *Shared[S] {
	return &Shared[S]{data: data}
}

// Share marks s copy-on-write and returns a sibling holder of the same data.
func (s *Shared[S]) Share() *Shared[S] {
	s.copyOnWrite = true
	return &Shared[S]{data: s.data, copyOnWrite: true}
}

// Read returns the data for reading. Callers must not modify it.
func (s *Shared[S]) Read() S { return s.data }

// Writable returns data that s owns exclusively, copying it first if it is
// still shared.
func (s *Shared[S]) Writable() S {
	if s.copyOnWrite {
		s.data = s.data.Clone()
		s.copyOnWrite = false
	}
	return s.data
}

// CopyOnWrite reports whether the next Writable call copies.
func (s *Shared[S]) CopyOnWrite() bool { return s.copyOnWrite }
