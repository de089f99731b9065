package launch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	keyVersion        = "version"
	keyConfigurations = "configurations"
)

// ErrMalformed marks a launch file whose content cannot be used as a launch document.
var ErrMalformed = errors.New("malformed launch document")

type member struct {
	key   string
	value json.RawMessage
}

// Document is a launch file's root object. Top-level keys keep their file order;
// configurations are held raw so entries written by other tools survive untouched.
type Document struct {
	members        []member
	configurations []json.RawMessage
}

// New returns an empty document with the given version.
func New(version string) *Document {
	d := &Document{}
	d.ensure(version)
	return d
}

// Load reads and parses the launch file at path.
// Returns nil, nil if the file does not exist.
func Load(path string, defaultVersion string) (*Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	d.ensure(defaultVersion)
	return d, nil
}

// Parse decodes a launch document, keeping top-level keys in order.
// Missing version/configurations are not added; Load does that.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: root is not an object", ErrMalformed)
	}

	d := &Document{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		d.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after root object", ErrMalformed)
	}

	if raw, ok := d.get(keyConfigurations); ok {
		if err := json.Unmarshal(raw, &d.configurations); err != nil || d.configurations == nil {
			return nil, fmt.Errorf("%w: %q is not an array", ErrMalformed, keyConfigurations)
		}
	}
	return d, nil
}

func (d *Document) get(key string) (json.RawMessage, bool) {
	for _, m := range d.members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

// set replaces key in place, or appends it. A repeated key keeps its first
// position and its last value.
func (d *Document) set(key string, value json.RawMessage) {
	for i := range d.members {
		if d.members[i].key == key {
			d.members[i].value = value
			return
		}
	}
	d.members = append(d.members, member{key: key, value: value})
}

func (d *Document) ensure(version string) {
	if _, ok := d.get(keyVersion); !ok {
		v, _ := marshal(version)
		d.set(keyVersion, v)
	}
	if _, ok := d.get(keyConfigurations); !ok {
		d.set(keyConfigurations, json.RawMessage("[]"))
		d.configurations = []json.RawMessage{}
	}
}

// Version returns the document's version string, or "" if it is not a string.
func (d *Document) Version() string {
	raw, ok := d.get(keyVersion)
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

func entryName(raw json.RawMessage) (string, bool) {
	var e struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(raw, &e); err != nil || e.Name == nil {
		return "", false
	}
	return *e.Name, true
}

// Names lists configuration names in document order. Entries without a string
// name are skipped.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.configurations))
	for _, raw := range d.configurations {
		if name, ok := entryName(raw); ok {
			names = append(names, name)
		}
	}
	return names
}

// Upsert replaces the first configuration named like entry, keeping its index,
// or appends entry when no configuration has that name.
func (d *Document) Upsert(name string, entry any) error {
	raw, err := marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding configuration %q: %w", name, err)
	}
	for i, existing := range d.configurations {
		if n, ok := entryName(existing); ok && n == name {
			d.configurations[i] = raw
			return nil
		}
	}
	d.configurations = append(d.configurations, raw)
	return nil
}

// Remove deletes the first configuration with the given name.
// Reports whether one was found.
func (d *Document) Remove(name string) bool {
	for i, existing := range d.configurations {
		if n, ok := entryName(existing); ok && n == name {
			d.configurations = append(d.configurations[:i], d.configurations[i+1:]...)
			return true
		}
	}
	return false
}

// Encode renders the document with 4-space indentation and a trailing newline.
func (d *Document) Encode() ([]byte, error) {
	if _, ok := d.get(keyConfigurations); ok || len(d.configurations) > 0 {
		var configs bytes.Buffer
		configs.WriteByte('[')
		for i, raw := range d.configurations {
			if i > 0 {
				configs.WriteByte(',')
			}
			configs.Write(raw)
		}
		configs.WriteByte(']')
		d.set(keyConfigurations, configs.Bytes())
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range d.members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshal(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.value)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
