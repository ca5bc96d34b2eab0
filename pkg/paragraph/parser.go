package paragraph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedLine is returned for a line that is neither a field, a
// continuation, a comment nor a paragraph separator.
var ErrMalformedLine = errors.New("malformed line")

// ErrMissingField is returned by Required when a field is absent or empty.
var ErrMissingField = errors.New("missing required field")

// Paragraph is one block of "Field: value" lines.
type Paragraph struct {
	fields map[string]string
	order  []string
}

// New builds a paragraph from field/value pairs, mostly for tests.
func New(kv ...string) Paragraph {
	p := Paragraph{fields: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		p.set(kv[i], kv[i+1])
	}
	return p
}

func (p *Paragraph) set(field, value string) {
	if _, ok := p.fields[field]; !ok {
		p.order = append(p.order, field)
	}
	p.fields[field] = value
}

// Get returns the value of field, or "" if absent.
func (p Paragraph) Get(field string) string {
	return p.fields[field]
}

// Has reports whether the field is present.
func (p Paragraph) Has(field string) bool {
	_, ok := p.fields[field]
	return ok
}

// Required returns the value of field, failing if it is absent or empty.
func (p Paragraph) Required(field string) (string, error) {
	v := p.fields[field]
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return v, nil
}

// Fields returns the field names in the order they first appeared.
func (p Paragraph) Fields() []string {
	return append([]string(nil), p.order...)
}

// Parse reads every paragraph from r.
func Parse(r io.Reader) ([]Paragraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		paragraphs []Paragraph
		current    *Paragraph
		lastField  string
		lineNo     int
	)
	flush := func() {
		if current != nil {
			paragraphs = append(paragraphs, *current)
			current = nil
			lastField = ""
		}
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		// Continuation of the previous field
		if line[0] == ' ' || line[0] == '\t' {
			if current == nil || lastField == "" {
				return nil, fmt.Errorf("line %d: %w: continuation without field", lineNo, ErrMalformedLine)
			}
			cont := strings.TrimSpace(line)
			if prev := current.fields[lastField]; prev != "" {
				cont = prev + "\n" + cont
			}
			current.fields[lastField] = cont
			continue
		}

		field, value, found := strings.Cut(line, ":")
		field = strings.TrimSpace(field)
		if !found || field == "" {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
		}
		if current == nil {
			current = &Paragraph{fields: make(map[string]string)}
		}
		current.set(field, strings.TrimSpace(value))
		lastField = field
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan paragraphs: %w", err)
	}
	return paragraphs, nil
}

// ParseFile reads every paragraph from the file at path.
func ParseFile(path string) ([]Paragraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	paragraphs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return paragraphs, nil
}
