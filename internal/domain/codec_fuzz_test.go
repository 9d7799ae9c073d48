package domain

import "testing"

// FuzzIsValid checks that validation never panics and that Inspect, IsValid
// and Parse agree on arbitrary input.
func FuzzIsValid(f *testing.F) {
	f.Add("S1234567D")
	f.Add("S1234567A")
	f.Add("X1234567A")
	f.Add("S123A567A")
	f.Add("")
	f.Add("G\x00\x01\x02\x03\x04\x05\x06K")
	f.Add("T12345678")

	f.Fuzz(func(t *testing.T, input string) {
		valid := IsValid(input)

		if Inspect(input).Valid != valid {
			t.Fatalf("Inspect and IsValid disagree on %q", input)
		}

		n, err := Parse(input)
		if valid != (err == nil) {
			t.Fatalf("Parse and IsValid disagree on %q: %v", input, err)
		}

		if valid && n.String() != input {
			t.Fatalf("Parse changed %q to %q", input, n.String())
		}

		if valid && len(input) != Length {
			t.Fatalf("accepted %q with length %d", input, len(input))
		}
	})
}
