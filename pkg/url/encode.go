package url

import "io"

// Encoder writes URLs to an output stream, one per line. A single Encoder
// is not safe for concurrent use; create one per goroutine or serialize
// access externally.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes u's serialization followed by a newline.
func (enc *Encoder) Encode(u *URL) error {
	_, err := enc.w.Write([]byte(u.String() + "\n"))
	return err
}
