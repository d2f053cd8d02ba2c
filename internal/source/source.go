// Package source reads the profile and job posting texts handed to the CLI,
// either inline from a flag, from a file, or from stdin when the path is "-".
package source

import (
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Stdin is the path that reads the text from standard input.
const Stdin = "-"

// Text is one input text of an evaluation.
type Text struct {
	// Label names the text in errors, usually "profile" or "job".
	Label string
	// Inline is text passed directly on the command line.
	Inline string
	// Path is a file with the text. It overrides Inline.
	Path string
}

// IsSet reports whether the text was given in any form.
func (t Text) IsSet() bool {
	return strings.TrimSpace(t.Inline) != "" || strings.TrimSpace(t.Path) != ""
}

// Read resolves the text. Postings and resumes saved from browsers or word
// processors often carry a byte order mark and CRLF line endings; both are
// dropped. Paragraph breaks are kept and only the ends are trimmed.
func Read(t Text, stdin io.Reader) (string, error) {
	label := strings.TrimSpace(t.Label)
	if label == "" {
		label = "text"
	}

	raw := t.Inline
	path := strings.TrimSpace(t.Path)

	switch {
	case path == Stdin:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", eris.Wrapf(err, "reading %s from stdin", label)
		}
		raw = string(data)
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", eris.Wrapf(err, "reading %s from file %q", label, path)
		}
		raw = string(data)
	}

	text := strings.TrimSpace(cleanup.Replace(strings.TrimPrefix(raw, "\ufeff")))
	if text != "" {
		return text, nil
	}

	switch path {
	case "":
		return "", eris.Errorf("%s is not provided", label)
	case Stdin:
		return "", eris.Errorf("%s on stdin is empty", label)
	default:
		return "", eris.Errorf("%s file %q is empty", label, path)
	}
}

var cleanup = strings.NewReplacer("\r\n", "\n", "\r", "\n")
