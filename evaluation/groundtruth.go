// SPDX-License-Identifier: MIT

package evaluation

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/entres/candidates"
)

// Sentinel errors for ground-truth handling.
var (
	// ErrNilGroundTruth indicates a missing ground truth.
	ErrNilGroundTruth = errors.New("evaluation: ground truth is nil")

	// ErrScenarioMismatch indicates clean-clean data evaluated against a
	// dirty ground truth or vice versa.
	ErrScenarioMismatch = errors.New("evaluation: scenario mismatch between input and ground truth")

	// ErrMalformed indicates an undecodable ground-truth record.
	ErrMalformed = errors.New("evaluation: malformed ground truth")
)

// GroundTruth is the set of known duplicate pairs. Ids follow the candidate
// convention: ID2 is local to dataset 2 in clean-clean ground truths.
type GroundTruth struct {
	cleanClean bool
	pairs      map[candidates.Pair]struct{}
}

// NewGroundTruth builds a ground truth from pairs; repeated pairs collapse.
// Dirty pairs are stored with ID1 <= ID2. Negative ids are rejected.
func NewGroundTruth(cleanClean bool, pairs []candidates.Pair) (*GroundTruth, error) {
	gt := &GroundTruth{cleanClean: cleanClean, pairs: make(map[candidates.Pair]struct{}, len(pairs))}
	for i, p := range pairs {
		if p.ID1 < 0 || p.ID2 < 0 {
			return nil, fmt.Errorf("pair %d (%d,%d): %w", i, p.ID1, p.ID2, candidates.ErrIDOutOfRange)
		}
		gt.pairs[gt.key(p.ID1, p.ID2)] = struct{}{}
	}

	return gt, nil
}

func (gt *GroundTruth) key(id1, id2 int) candidates.Pair {
	if !gt.cleanClean && id2 < id1 {
		id1, id2 = id2, id1
	}

	return candidates.Pair{ID1: id1, ID2: id2}
}

// CleanClean reports the scenario of the ground truth.
func (gt *GroundTruth) CleanClean() bool { return gt.cleanClean }

// Len is the number of distinct duplicate pairs.
func (gt *GroundTruth) Len() int { return len(gt.pairs) }

// Contains reports whether (id1,id2) is a known duplicate.
func (gt *GroundTruth) Contains(id1, id2 int) bool {
	_, ok := gt.pairs[gt.key(id1, id2)]

	return ok
}

// Pairs returns the duplicates sorted by (ID1, ID2).
func (gt *GroundTruth) Pairs() []candidates.Pair {
	out := make([]candidates.Pair, 0, len(gt.pairs))
	for p := range gt.pairs {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b candidates.Pair) int {
		if c := cmp.Compare(a.ID1, b.ID1); c != 0 {
			return c
		}

		return cmp.Compare(a.ID2, b.ID2)
	})

	return out
}

// truthDocument is the structured on-disk shape; a bare pair list is
// accepted as well.
type truthDocument struct {
	CleanClean bool              `json:"clean_clean" yaml:"clean_clean" msgpack:"clean_clean"`
	Pairs      []candidates.Pair `json:"pairs" yaml:"pairs" msgpack:"pairs"`
}

// ReadGroundTruth loads a ground truth, choosing the codec by extension:
// CSV rows "id1,id2" (optional header), or JSON/YAML/msgpack holding either
// a list [{id1,id2}] or a document {clean_clean, pairs}. cleanClean applies
// to CSV and bare lists.
func ReadGroundTruth(path string, cleanClean bool) (*GroundTruth, error) {
	f, err := candidates.FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ground truth %s: %w", path, err)
	}

	return DecodeGroundTruth(bytes.NewReader(data), f, cleanClean)
}

// DecodeGroundTruth reads a ground truth in format f from r.
func DecodeGroundTruth(r io.Reader, f candidates.Format, cleanClean bool) (*GroundTruth, error) {
	if f == candidates.FormatCSV {
		pairs, err := decodePairsCSV(r)
		if err != nil {
			return nil, err
		}

		return NewGroundTruth(cleanClean, pairs)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(data)

	var (
		list   []candidates.Pair
		doc    truthDocument
		isList bool
	)
	switch f {
	case candidates.FormatJSON:
		isList = len(trimmed) > 0 && trimmed[0] == '['
		if isList {
			err = json.Unmarshal(trimmed, &list)
		} else {
			err = json.Unmarshal(trimmed, &doc)
		}
	case candidates.FormatYAML:
		if isList = yaml.Unmarshal(trimmed, &list) == nil; !isList {
			err = yaml.Unmarshal(trimmed, &doc)
		}
	case candidates.FormatMsgpack:
		if isList = msgpack.Unmarshal(data, &list) == nil; !isList {
			err = msgpack.Unmarshal(data, &doc)
		}
	default:
		return nil, fmt.Errorf("%q: %w", f, candidates.ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s ground truth: %v: %w", f, err, ErrMalformed)
	}
	if isList {
		return NewGroundTruth(cleanClean, list)
	}

	return NewGroundTruth(doc.CleanClean, doc.Pairs)
}

// WriteGroundTruth stores gt at path as a structured document, or as CSV
// rows for a .csv path.
func WriteGroundTruth(path string, gt *GroundTruth) error {
	f, err := candidates.FormatOf(path)
	if err != nil {
		return err
	}
	doc := truthDocument{CleanClean: gt.cleanClean, Pairs: gt.Pairs()}

	var data []byte
	switch f {
	case candidates.FormatCSV:
		var buf bytes.Buffer
		if err = encodePairsCSV(&buf, doc.Pairs); err != nil {
			return err
		}
		data = buf.Bytes()
	case candidates.FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	case candidates.FormatYAML:
		data, err = yaml.Marshal(doc)
	case candidates.FormatMsgpack:
		data, err = msgpack.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encode ground truth: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func decodePairsCSV(r io.Reader) ([]candidates.Pair, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	out := make([]candidates.Pair, 0, len(rows))
	for line, rec := range rows {
		if line == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "id1") {
			continue
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("CSV row %d: %v: %w", line+1, rec, ErrMalformed)
		}
		id1, err1 := strconv.Atoi(strings.TrimSpace(rec[0]))
		id2, err2 := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("CSV row %d: %v: %w", line+1, rec, ErrMalformed)
		}
		out = append(out, candidates.Pair{ID1: id1, ID2: id2})
	}

	return out, nil
}

func encodePairsCSV(w io.Writer, pairs []candidates.Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id1", "id2"}); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := cw.Write([]string{strconv.Itoa(p.ID1), strconv.Itoa(p.ID2)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
