package codec

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/tally/pkg/core"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned when no serializer is registered for a format.
var ErrUnknownFormat = errors.New("unknown format")

// Serializer defines how to read and write a list of exported records in a specific format.
type Serializer interface {
	// Decode reads entries from r. Decoded entries are shape-validated.
	Decode(r io.Reader) ([]core.Entry, error)
	// Encode converts entries to bytes, preserving their order.
	Encode(entries []core.Entry) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers keyed by file extension.
func DefaultSerializers(strict bool) map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(strict),
		".yaml": NewYAMLSerializer(strict),
		".yml":  NewYAMLSerializer(strict),
		".csv":  NewCSVSerializer(),
	}
}

// ForFormat returns the serializer for a format name ("json", "yaml", "csv") or extension.
func ForFormat(format string, strict bool) (Serializer, error) {
	ext := strings.ToLower(format)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	s, ok := DefaultSerializers(strict)[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return s, nil
}

// ForPath picks a serializer from the extension of path.
func ForPath(path string, strict bool) (Serializer, error) {
	return ForFormat(filepath.Ext(path), strict)
}

// --- JSON Serializer ---

// JSONSerializer reads and writes a JSON array of entries.
type JSONSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Decode(r io.Reader) ([]core.Entry, error) {
	decoder := json.NewDecoder(r)
	if s.Strict {
		decoder.DisallowUnknownFields()
	}

	var entries []core.Entry
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *JSONSerializer) Encode(entries []core.Entry) ([]byte, error) {
	if entries == nil {
		entries = []core.Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// --- YAML Serializer ---

// YAMLSerializer reads and writes a YAML sequence of entries.
type YAMLSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

func (s *YAMLSerializer) Decode(r io.Reader) ([]core.Entry, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(s.Strict)

	var entries []core.Entry
	if err := decoder.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *YAMLSerializer) Encode(entries []core.Entry) ([]byte, error) {
	return yaml.Marshal(lo.Map(entries, func(e core.Entry, _ int) yamlEntry {
		return yamlEntry{
			ID:        e.ID,
			Title:     e.Title,
			Amount:    yamlAmount(e.Amount),
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
		}
	}))
}

// yamlEntry mirrors core.Entry for encoding so the amount can carry a numeric tag.
type yamlEntry struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Amount    yamlAmount `yaml:"amount"`
	CreatedAt string     `yaml:"created_at"`
	UpdatedAt string     `yaml:"updated_at"`
}

// yamlAmount emits the decimal text as a plain YAML number, without a float64 step.
type yamlAmount json.Number

func (a yamlAmount) MarshalYAML() (interface{}, error) {
	tag := "!!int"
	if strings.ContainsAny(string(a), ".eE") {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(a)}, nil
}

// --- CSV Serializer ---

var csvHeader = []string{"id", "title", "amount", "created_at", "updated_at"}

// CSVSerializer reads and writes one entry per row under a fixed header.
// Columns may appear in any order when decoding.
type CSVSerializer struct{}

func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

func (s *CSVSerializer) Decode(r io.Reader) ([]core.Entry, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvHeader {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("csv header missing column %q", col)
		}
	}

	var entries []core.Entry
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		entries = append(entries, core.Entry{
			ID:        row[index["id"]],
			Title:     row[index["title"]],
			Amount:    json.Number(strings.TrimSpace(row[index["amount"]])),
			CreatedAt: row[index["created_at"]],
			UpdatedAt: row[index["updated_at"]],
		})
	}
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *CSVSerializer) Encode(entries []core.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		row := []string{e.ID, e.Title, e.Amount.String(), e.CreatedAt, e.UpdatedAt}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
