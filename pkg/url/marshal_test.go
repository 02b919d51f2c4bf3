package url

import "testing"

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	original, err := Parse("https://example.com/a?b=1#c")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got URL
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.String() != original.String() {
		t.Errorf("Unmarshal round trip = %q, want %q", got.String(), original.String())
	}
}

func TestUnmarshal_InvalidInput(t *testing.T) {
	var u URL
	if err := Unmarshal([]byte("not a url"), &u); err == nil {
		t.Error("expected error for invalid input")
	}
}
