package cstring

import (
	"unicode/utf16"
	"unsafe"
)

// CodeUnit enumerates the character domains a String may view. It covers
// every code unit type cgo produces for C character data: C.char / C.schar
// (int8), C.uchar and UTF-8 code units (uint8), C.char16_t and Windows
// wchar_t (uint16), C.char32_t and Unix wchar_t (int32), and their unsigned
// 32-bit variants. Instantiating String with any other type does not
// compile; there is no runtime fallback for an unsupported domain.
type CodeUnit interface {
	~int8 | ~uint8 | ~uint16 | ~int32 | ~uint32
}

// emptyTerminator backs CStr for null views: a statically allocated,
// zero-length, NUL-terminated sequence valid in every domain, since the
// terminator is the zero value of each. uint32 gives it the size and
// alignment required by the widest supported code unit.
var emptyTerminator uint32

func emptyString[C CodeUnit]() *C {
	return (*C)(unsafe.Pointer(&emptyTerminator))
}

// next advances a pointer by one code unit.
func next[C CodeUnit](p *C) *C {
	return (*C)(unsafe.Add(unsafe.Pointer(p), unsafe.Sizeof(*p)))
}

// decode converts a sequence of code units to a Go string. Dispatch is on
// the unit width, fixed per instantiation: 1-byte units are copied verbatim,
// 2-byte units are decoded as UTF-16, 4-byte units are treated as whole
// code points (UTF-32). No validation is performed; invalid sequences
// decode the way Go's standard conversions decode them.
func decode[C CodeUnit](units []C) string {
	if len(units) == 0 {
		return ""
	}
	p := unsafe.Pointer(&units[0])
	switch unsafe.Sizeof(units[0]) {
	case 1:
		return string(unsafe.Slice((*byte)(p), len(units)))
	case 2:
		return string(utf16.Decode(unsafe.Slice((*uint16)(p), len(units))))
	default:
		return string(unsafe.Slice((*rune)(p), len(units)))
	}
}
