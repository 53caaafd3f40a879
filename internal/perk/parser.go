package perk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseRecord parses the content of a perk data file.
//
// Precondition: data must be a JSON array (or null).
// Postcondition: returns a Record with one Entry per array element, or a
// non-nil error. Shape mismatches below the top level never fail; the
// affected field is left nil.
func ParseRecord(data []byte) (Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing perk record: %w", err)
	}
	rec := make(Record, len(raw))
	for i, elem := range raw {
		fields, ok := object(elem)
		if !ok {
			continue
		}
		rec[i].Properties = parseProperties(fields["Properties"])
	}
	return rec, nil
}

func parseProperties(raw json.RawMessage) *Properties {
	fields, ok := object(raw)
	if !ok {
		return nil
	}
	p := &Properties{
		Name:        parseLocalizedText(fields["Name"]),
		Description: parseLocalizedText(fields["Description"]),
		PointsCost:  scalarText(fields["PointsCost"]),
	}
	if perkFields, ok := object(fields["Perk"]); ok {
		p.Perk = &PerkRef{Ability: str(perkFields["Ability"])}
	}
	return p
}

func parseLocalizedText(raw json.RawMessage) *LocalizedText {
	fields, ok := object(raw)
	if !ok {
		return nil
	}
	return &LocalizedText{
		LocalizedString: str(fields["LocalizedString"]),
		SourceString:    str(fields["SourceString"]),
	}
}

// object decodes raw as a JSON object. Keys are matched exactly, unlike
// struct decoding in encoding/json.
func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if isAbsent(raw) {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

func str(raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return &s
}

// scalarText returns the decimal text of a JSON number or the value of a JSON
// string. Any other type yields nil.
func scalarText(raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	var s string
	switch tv := v.(type) {
	case json.Number:
		s = decimalText(tv)
	case string:
		s = tv
	default:
		return nil
	}
	return &s
}

// decimalText keeps plain number literals as written and expands exponent
// notation to positional decimal form (1e2 -> "100").
func decimalText(n json.Number) string {
	if !strings.ContainsAny(n.String(), "eE") {
		return n.String()
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
