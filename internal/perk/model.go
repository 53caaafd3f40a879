// Package perk models the exported perk data files and reduces them to flat
// summaries.
package perk

import "strings"

// NotAvailable is the sentinel stored in a Summary field the source record
// does not provide.
const NotAvailable = "N/A"

// AbilityPrefix is the enum scope carried by every ability tag in the game data.
const AbilityPrefix = "EMistPerkAbility::"

// Record is the parsed content of one perk data file: an ordered list of
// loosely-typed entries. The perk's own fields normally live in entry 1; root
// perks carry them in entry 0.
type Record []Entry

// Entry is one element of a Record. Properties is nil when the element is not
// an object or has no usable "Properties" mapping.
type Entry struct {
	Properties *Properties
}

// Properties holds the fields of interest inside an Entry. Every field is nil
// when the key is missing or its value has an unexpected type.
type Properties struct {
	Name        *LocalizedText
	Description *LocalizedText
	Perk        *PerkRef
	// PointsCost is the textual form of a numeric or string cost.
	PointsCost *string
}

// LocalizedText is the engine's FText layout.
type LocalizedText struct {
	LocalizedString *string
	SourceString    *string
}

// PerkRef is the "Perk" struct of a perk definition.
type PerkRef struct {
	Ability *string
}

// Summary is the flat, normalized view of one perk.
type Summary struct {
	Name        string
	Description string
	Ability     string
	PointsCost  string
}

// NewSummary returns a Summary with every field set to NotAvailable.
func NewSummary() Summary {
	return Summary{
		Name:        NotAvailable,
		Description: NotAvailable,
		Ability:     NotAvailable,
		PointsCost:  NotAvailable,
	}
}

// HasAbility reports whether the ability field was found in the source.
func (s Summary) HasAbility() bool { return s.Ability != NotAvailable }

// HasPointsCost reports whether the points cost field was found in the source.
func (s Summary) HasPointsCost() bool { return s.PointsCost != NotAvailable }

// Keep reports whether s belongs in a report: its name must be neither the
// sentinel nor blank.
func Keep(s Summary) bool {
	return s.Name != NotAvailable && strings.TrimSpace(s.Name) != ""
}
