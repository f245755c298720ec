// This module implements a null-safe, non-owning view over C-style
// NUL-terminated character sequences, so code calling foreign APIs can treat
// "returned a null pointer" and "returned an empty string" uniformly instead
// of guarding every dereference.
//
// A String never owns what it views: it does not allocate, copy or free the
// foreign buffer (only Copy and String produce owned data), and the caller
// must guarantee the buffer outlives every use of the view. IsNull is
// available for callers that do need to distinguish a null result from an
// empty one; every other operation treats the two identically.
package cstring

import (
	"iter"
	"unsafe"
)

// String is a read-only view of a NUL-terminated sequence of C code units.
// The zero value is a null view. Views are cheap pointer-sized values and
// may be copied freely.
type String[C CodeUnit] struct {
	ptr *C
}

// New wraps a foreign character pointer. A nil pointer is valid and yields
// a null view.
func New[C CodeUnit](ptr *C) String[C] {
	return String[C]{ptr: ptr}
}

// Null returns the null view for the domain.
func Null[C CodeUnit]() String[C] {
	return String[C]{}
}

// FromPointer wraps an untyped foreign pointer, as produced by syscalls and
// cgo code that has erased the character type.
func FromPointer[C CodeUnit](p unsafe.Pointer) String[C] {
	return String[C]{ptr: (*C)(p)}
}

// IsNull reports whether the view was constructed from a nil pointer. This
// is the only operation that distinguishes a null view from a view of an
// empty sequence.
func (s String[C]) IsNull() bool {
	return s.ptr == nil
}

// CStr returns the viewed pointer, suitable for passing back into foreign
// code. It never returns nil: a null view yields a pointer to a statically
// allocated empty terminated sequence, so callers may dereference the
// result unconditionally.
func (s String[C]) CStr() *C {
	if s.ptr == nil {
		return emptyString[C]()
	}
	return s.ptr
}

// View returns a borrowed span of the code units up to, and excluding, the
// terminator. The span aliases the foreign buffer and is valid only as long
// as that buffer is. Note that locating the terminator is a linear scan,
// not a cached length.
func (s String[C]) View() []C {
	return unsafe.Slice(s.CStr(), s.length())
}

// Copy returns an owned copy of the code units, independent of the foreign
// buffer. A null view copies to an empty slice.
func (s String[C]) Copy() []C {
	view := s.View()
	out := make([]C, len(view))
	copy(out, view)
	return out
}

// String converts the viewed sequence to an owned Go string, decoding
// according to the domain's code unit width. A null view converts to "".
func (s String[C]) String() string {
	return decode(s.View())
}

// Units iterates the code units up to, and excluding, the terminator. The
// sequence is lazy and restartable; a null view yields nothing.
func (s String[C]) Units() iter.Seq[C] {
	return func(yield func(C) bool) {
		for p := s.CStr(); *p != 0; p = next(p) {
			if !yield(*p) {
				return
			}
		}
	}
}

// Compare lexicographically compares the contents of two views by code unit
// value, terminator excluded. The result is -1, 0 or +1. Null views compare
// equal to empty ones.
func (s String[C]) Compare(other String[C]) int {
	a, b := s.CStr(), other.CStr()
	for {
		ua, ub := *a, *b
		switch {
		case ua < ub:
			return -1
		case ua > ub:
			return 1
		case ua == 0:
			return 0
		}
		a, b = next(a), next(b)
	}
}

// Equal reports whether two views have identical contents.
func (s String[C]) Equal(other String[C]) bool {
	return s.Compare(other) == 0
}

// Min returns the lexicographically smaller of two views.
func Min[C CodeUnit](a, b String[C]) String[C] {
	if a.Compare(b) < 0 {
		return a
	}
	return b
}

// Max returns the lexicographically larger of two views.
func Max[C CodeUnit](a, b String[C]) String[C] {
	if a.Compare(b) > 0 {
		return a
	}
	return b
}

// length scans for the terminator. Linear in the sequence length, which is
// why no exported Len exists: callers should not assume length is cheap.
func (s String[C]) length() int {
	n := 0
	for p := s.CStr(); *p != 0; p = next(p) {
		n++
	}
	return n
}
