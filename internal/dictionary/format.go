package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ivan-cunha/colsynth/internal/storage"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unsupported mapping format %q (expected json or yaml)", s)
	}
}

func Write(w io.Writer, t *Table, format Format) error {
	switch format {
	case JSON:
		return WriteJSON(w, t)
	case YAML:
		return WriteYAML(w, t)
	default:
		return fmt.Errorf("unsupported mapping format %q", format)
	}
}

func Read(r io.Reader, format Format) (*Table, error) {
	switch format {
	case JSON:
		return ReadJSON(r)
	case YAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("unsupported mapping format %q", format)
	}
}

// WriteJSON writes {"0": "label", ...} with two-space indentation and keys in
// numeric order. encoding/json sorts map keys as strings ("10" < "2"), so the
// object is assembled by hand.
func WriteJSON(w io.Writer, t *Table) error {
	var buf bytes.Buffer
	if t.Len() == 0 {
		buf.WriteString("{}")
	} else {
		buf.WriteString("{\n")
		for code, label := range t.labels {
			value, err := marshalString(label)
			if err != nil {
				return err
			}
			fmt.Fprintf(&buf, "  \"%d\": %s", code, value)
			if code < t.Len()-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString("}")
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	return nil
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode label %q: %w", s, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func ReadJSON(r io.Reader) (*Table, error) {
	var m map[string]string
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode JSON mapping: %w", err)
	}
	return FromMap(m)
}

// WriteYAML writes the same mapping as a YAML document. Keys and values are
// double-quoted so labels such as "yes" or "1" stay strings.
func WriteYAML(w io.Writer, t *Table) error {
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for code, label := range t.labels {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: strconv.Itoa(code)},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: yaml.DoubleQuotedStyle, Value: label},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write mapping: %w", err)
	}
	return enc.Close()
}

func ReadYAML(r io.Reader) (*Table, error) {
	m := make(map[string]string)
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode YAML mapping: %w", err)
	}
	return FromMap(m)
}

func WriteFile(path string, t *Table, format Format) error {
	f, err := storage.CreateFile(path)
	if err != nil {
		return err
	}
	if err := Write(f, t, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func ReadFile(path string, format Format) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening mapping file: %w", err)
	}
	defer f.Close()

	return Read(f, format)
}
