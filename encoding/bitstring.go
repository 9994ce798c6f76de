package encoding

// AppendBits appends the width-bit binary rendering of code to dst, most
// significant bit first, and returns the extended slice.
//
// Lookup-table decoding uses this to emit the literal bit substring of each
// flag for human audit.
func AppendBits(dst []byte, code uint64, width int) []byte {
	for i := width - 1; i >= 0; i-- {
		if code>>i&1 == 1 {
			dst = append(dst, '1')
		} else {
			dst = append(dst, '0')
		}
	}

	return dst
}
