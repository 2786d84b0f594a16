package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"h": HexonFormat, "hexon": HexonFormat,
		"j": JSONFormat, "json": JSONFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}

func TestMarshalTextBadFormat(t *testing.T) {
	if _, err := Format(99).MarshalText(); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
	// String falls back to the error text for unknown values
	if got := Format(99).String(); got != "bad format: 99" {
		t.Errorf("String() = %q", got)
	}
}
