package input

import (
	"os"
	"strings"
)

// Text returns the contents of file when it is set, otherwise args joined
// by single spaces. Trailing line breaks are stripped from file contents.
func Text(args []string, file string) (string, error) {
	if file == "" {
		return strings.Join(args, " "), nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}
