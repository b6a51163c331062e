package encode

import (
	"bytes"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	file, source, packed = "", "", false
	EncodeCmd.Flags().Lookup("source").Changed = false
	var out bytes.Buffer
	EncodeCmd.SetOut(&out)
	EncodeCmd.SetErr(&out)
	EncodeCmd.SetArgs(append([]string{}, args...))
	err := EncodeCmd.Execute()
	return out.String(), err
}

func TestEncode(t *testing.T) {
	out, err := run(t, "abab", "--source", "aab")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "1010\n" {
		t.Fatalf("output %q", out)
	}
}

func TestEncodePacked(t *testing.T) {
	out, err := run(t, "-p", "-s", "aab", "abab")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "4 a0\n" {
		t.Fatalf("output %q", out)
	}
}

func TestEncodeSelf(t *testing.T) {
	out, err := run(t, "aaaa")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "0000\n" {
		t.Fatalf("output %q", out)
	}
}

func TestEncodeUnknownSymbol(t *testing.T) {
	if _, err := run(t, "-s", "aab", "abc"); err == nil {
		t.Fatal("expected error for symbol missing from source")
	}
}
