// SPDX-License-Identifier: MIT

package candidates

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// Format names a candidate file encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
	FormatCSV     Format = "csv"
)

var csvHeader = []string{"id1", "id2", "score"}

// Header carries the scenario and dataset sizes. Structured formats store
// it in the document; for CSV the caller supplies it (zero sizes are
// inferred from the ids).
type Header struct {
	CleanClean   bool `json:"clean_clean" yaml:"clean_clean" msgpack:"clean_clean"`
	Dataset1Size int  `json:"dataset1_size" yaml:"dataset1_size" msgpack:"dataset1_size"`
	Dataset2Size int  `json:"dataset2_size,omitempty" yaml:"dataset2_size,omitempty" msgpack:"dataset2_size,omitempty"`
}

// Document is the on-disk shape of a candidate set.
type Document struct {
	Header     `yaml:",inline" msgpack:",inline"`
	Candidates []Candidate `json:"candidates" yaml:"candidates" msgpack:"candidates"`
}

// DocumentOf captures p as a Document.
func DocumentOf(p *Pairs) Document {
	return Document{
		Header: Header{
			CleanClean:   p.cleanClean,
			Dataset1Size: p.n1,
			Dataset2Size: p.n2,
		},
		Candidates: p.Candidates(),
	}
}

// Pairs validates the document and builds the set.
func (d Document) Pairs() (*Pairs, error) {
	return FromSlice(d.CleanClean, d.Dataset1Size, d.Dataset2Size, d.Candidates)
}

// ParseFormat maps a name ("json", "yml", "mp", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatOf picks the Format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes p to w in format f.
func Encode(w io.Writer, f Format, p *Pairs) error {
	doc := DocumentOf(p)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(doc)
	case FormatYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(data)

		return err
	case FormatMsgpack:
		return msgpack.NewEncoder(w).Encode(doc)
	case FormatCSV:
		return encodeCSV(w, doc.Candidates)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// Decode reads a candidate set in format f from r. hint is used only for
// CSV, which carries no header of its own.
func Decode(r io.Reader, f Format, hint Header) (*Pairs, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err = yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse msgpack: %w", err)
		}
	case FormatCSV:
		cands, err := decodeCSV(r)
		if err != nil {
			return nil, err
		}
		doc = Document{Header: hint, Candidates: cands}
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}

	return doc.Pairs()
}

// ReadFile loads a candidate file, choosing the codec by extension.
func ReadFile(path string, hint Header) (*Pairs, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	return Decode(bytes.NewReader(data), f, hint)
}

// WriteFile stores p at path, choosing the codec by extension.
func WriteFile(path string, p *Pairs) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = Encode(&buf, f, p); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func encodeCSV(w io.Writer, cands []Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, c := range cands {
		rec := []string{
			strconv.Itoa(c.ID1),
			strconv.Itoa(c.ID2),
			strconv.FormatFloat(c.Score, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func decodeCSV(r io.Reader) ([]Candidate, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}

	out := make([]Candidate, 0, len(rows))
	for line, rec := range rows {
		if line == 0 && strings.EqualFold(rec[0], csvHeader[0]) {
			continue
		}
		c, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", line+1, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func parseRecord(rec []string) (Candidate, error) {
	id1, err1 := strconv.Atoi(strings.TrimSpace(rec[0]))
	id2, err2 := strconv.Atoi(strings.TrimSpace(rec[1]))
	score, err3 := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Candidate{}, fmt.Errorf("%v: %w", rec, ErrMalformed)
	}

	return Candidate{ID1: id1, ID2: id2, Score: score}, nil
}
