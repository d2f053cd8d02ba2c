// Package request loads evaluation requests from JSON or YAML documents and
// checks the preconditions the engine relies on.
package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/spigell/jobfit/internal/engine"
)

// ErrInvalid is returned when a request misses required text.
var ErrInvalid = eris.New("invalid request")

// Extensions lists the file types Load understands.
var Extensions = []string{".json", ".yaml", ".yml"}

// Supported reports whether path has one of the request Extensions.
func Supported(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// Load reads a request file. The format is picked by extension; unknown
// extensions are tried as JSON first and YAML second.
func Load(path string) (engine.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Request{}, eris.Wrapf(err, "reading request %q", path)
	}

	req, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return engine.Request{}, eris.Wrapf(err, "parsing request %q", path)
	}

	return req, nil
}

// Parse decodes a request document.
func Parse(data []byte, ext string) (engine.Request, error) {
	var req engine.Request

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return engine.Request{}, eris.Wrap(err, "decode yaml")
		}
	case ".json":
		if err := decodeJSON(data, &req); err != nil {
			return engine.Request{}, eris.Wrap(err, "decode json")
		}
	default:
		if err := decodeJSON(data, &req); err != nil {
			if yerr := yaml.Unmarshal(data, &req); yerr != nil {
				return engine.Request{}, eris.Wrap(yerr, "decode request as json or yaml")
			}
		}
	}

	return req, nil
}

func decodeJSON(data []byte, req *engine.Request) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(req)
}

// ParseHints decodes an inline JSON object of profile hints.
func ParseHints(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var hints map[string]any
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&hints); err != nil {
		return nil, eris.Wrap(err, "decode hints")
	}
	return hints, nil
}

// Validate checks that both texts are present. Whitespace-only text counts as missing.
func Validate(req engine.Request) error {
	trimmed := req
	trimmed.ProfileText = strings.TrimSpace(req.ProfileText)
	trimmed.JobText = strings.TrimSpace(req.JobText)

	if err := validator.New().Struct(trimmed); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		}
		if len(fields) == 0 {
			return eris.Wrap(err, ErrInvalid.Error())
		}
		return eris.Wrapf(ErrInvalid, "missing %s", strings.Join(fields, ", "))
	}

	return nil
}
