package role

import (
	"net/url"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  Role
	}{
		{"absent parameter", "", Chooser},
		{"staff", "mode=staff", Staff},
		{"display", "mode=display", Display},
		{"unknown value", "mode=admin", Chooser},
		{"legacy select value", "mode=select", Chooser},
		{"empty value", "mode=", Chooser},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.query, err)
			}
			if got := Parse(values); got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{Chooser, Staff, Display} {
		r := r
		t.Run(string(r), func(t *testing.T) {
			t.Parallel()
			encoded := Encode(r, url.Values{})
			if got := Parse(encoded); got != r {
				t.Fatalf("Parse(Encode(%q)) = %q, want round trip", r, got)
			}
		})
	}
}

func TestEncodeChooserClearsParameter(t *testing.T) {
	t.Parallel()

	values := url.Values{QueryParam: []string{"display"}}
	encoded := Encode(Chooser, values)
	if encoded.Has(QueryParam) {
		t.Fatalf("expected chooser to clear %q, got %q", QueryParam, encoded.Encode())
	}
}

func TestEncodePreservesUnrelatedParameters(t *testing.T) {
	t.Parallel()

	values := url.Values{"room": []string{"lobby"}}
	encoded := Encode(Display, values)
	if encoded.Get("room") != "lobby" {
		t.Fatalf("expected unrelated parameter preserved, got %q", encoded.Encode())
	}
	if encoded.Get(QueryParam) != "display" {
		t.Fatalf("expected mode=display, got %q", encoded.Encode())
	}
	if values.Has(QueryParam) {
		t.Fatal("expected Encode to leave the input values untouched")
	}
}
