// Package export turns a plan snapshot into the dated JSON document users
// keep as their copy of the work plan.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workplan"
)

const (
	filePrefix = "workplan-"
	fileExt    = ".json"
	dateLayout = "2006-01-02"

	// maxCollisions bounds the -N suffix search in WriteFile.
	maxCollisions = 1000
)

// Marshal renders the plan as a two-space indented JSON array. HTML
// characters and the U+2028/U+2029 separators are left unescaped and no
// trailing newline is added.
func Marshal(p workplan.Plan) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	phases := p.Phases()
	if phases == nil {
		phases = []*domain.Phase{}
	}
	if err := enc.Encode(phases); err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	return unescapeSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// unescapeSeparators turns the \u2028 and \u2029 escapes encoding/json always
// writes back into raw characters. Escapes are walked pairwise so an escaped
// backslash followed by "u2028" stays untouched.
func unescapeSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if esc := b[i+1:]; len(esc) >= 5 && esc[0] == 'u' {
			switch string(esc[1:5]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

// Unmarshal parses an exported document back into a plan.
func Unmarshal(data []byte) (workplan.Plan, error) {
	var p workplan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return workplan.Plan{}, fmt.Errorf("decoding plan: %w", err)
	}
	return p, nil
}

// FileName returns workplan-<YYYY-MM-DD>.json for the UTC calendar date of t.
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(dateLayout) + fileExt
}

// WriteFile writes data into dir under name, creating dir if needed. An
// existing file is never overwritten: the name gains a -1, -2, ... suffix
// before the extension instead. It returns the path actually written.
func WriteFile(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	base := strings.TrimSuffix(name, fileExt)
	candidate := name
	for n := 1; n <= maxCollisions; n++ {
		path := filepath.Join(dir, candidate)
		err := writeExclusive(path, data)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("writing %s: %w", path, err)
		}
		candidate = fmt.Sprintf("%s-%d%s", base, n, fileExt)
	}
	return "", fmt.Errorf("writing %s: too many existing exports", name)
}

func writeExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
