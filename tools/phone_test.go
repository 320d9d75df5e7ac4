package tools

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "+593 99 123 4567", want: "593991234567"},
		{in: "0991234567", want: "593991234567"},   // nacional com zero
		{in: "99-123-4567", want: "593991234567"},  // só o celular
		{in: "593991234567", want: "593991234567"}, // já normalizado
		{in: "(099) 123-4567", want: "593991234567"},
		{in: "", wantErr: true},
		{in: "12345", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tc := range cases {
		got, err := NormalizePhone(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
