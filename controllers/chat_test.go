package controllers

import "testing"

func TestExtractContact(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "mi correo es juan@gimnasio.ec", want: "juan@gimnasio.ec", ok: true},
		{in: "llámame al +593 99 123 4567 porfa", want: "+593 99 123 4567", ok: true},
		{in: "0991234567", want: "0991234567", ok: true},
		// email gana quando vêm os dois
		{in: "soy ana@gym.com, cel 0991234567", want: "ana@gym.com", ok: true},
		{in: "¿cuánto cuesta el plan Pro?", ok: false},
		{in: "", ok: false},
	}

	for _, tc := range cases {
		got, ok := ExtractContact(tc.in)
		if ok != tc.ok {
			t.Fatalf("%q: expected ok=%v, got %v (%q)", tc.in, tc.ok, ok, got)
		}
		if ok && got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
