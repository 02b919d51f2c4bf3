package url

// Marshal returns the serialization of u per spec.md section 6, as bytes.
func Marshal(u *URL) ([]byte, error) {
	return []byte(u.String()), nil
}

// Unmarshal parses data as a single absolute URL and stores the result
// in u, which must be non-nil.
func Unmarshal(data []byte, u *URL) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
