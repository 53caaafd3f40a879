package perk

import "strings"

// Extract reduces rec to a Summary. It never fails: anything missing from rec
// is left as NotAvailable.
//
// Name and description are read from entry 1, falling back from
// LocalizedString to SourceString. When entry 1 yields no name, both are
// retried against entry 0. Ability and points cost are only read from entry 1.
func Extract(rec Record) Summary {
	s := NewSummary()

	if props := rec.properties(1); props != nil {
		s.Name = resolveText(props.Name, s.Name)
		s.Description = resolveText(props.Description, s.Description)
		if props.Perk != nil && props.Perk.Ability != nil {
			s.Ability = strings.ReplaceAll(*props.Perk.Ability, AbilityPrefix, "")
		}
		if props.PointsCost != nil {
			s.PointsCost = *props.PointsCost
		}
	}

	if s.Name == NotAvailable {
		if props := rec.properties(0); props != nil {
			s.Name = resolveText(props.Name, s.Name)
			s.Description = resolveText(props.Description, s.Description)
		}
	}

	return s
}

func (r Record) properties(i int) *Properties {
	if i >= len(r) {
		return nil
	}
	return r[i].Properties
}

// resolveText returns the trimmed LocalizedString, or the trimmed SourceString
// when the LocalizedString is present but blank. A blank SourceString is
// returned as the empty string. Without a LocalizedString the text is treated
// as not present and current is returned.
func resolveText(t *LocalizedText, current string) string {
	if t == nil || t.LocalizedString == nil {
		return current
	}
	if v := strings.TrimSpace(*t.LocalizedString); v != "" {
		return v
	}
	if t.SourceString != nil {
		return strings.TrimSpace(*t.SourceString)
	}
	return current
}
