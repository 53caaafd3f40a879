package perk_test

import (
	"testing"

	"github.com/cory-johannsen/perkreport/internal/perk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ironWillJSON = `[
  {},
  {
    "Type": "MistPerkData",
    "Properties": {
      "Name": {"LocalizedString": "Iron Will", "SourceString": ""},
      "Description": {"LocalizedString": "Reduces damage.", "SourceString": ""},
      "Perk": {"Ability": "EMistPerkAbility::DamageReduction"},
      "PointsCost": 3
    }
  }
]`

func TestParseRecord_FullRecord(t *testing.T) {
	rec, err := perk.ParseRecord([]byte(ironWillJSON))
	require.NoError(t, err)
	require.Len(t, rec, 2)
	assert.Nil(t, rec[0].Properties)

	props := rec[1].Properties
	require.NotNil(t, props)
	require.NotNil(t, props.Name)
	require.NotNil(t, props.Name.LocalizedString)
	assert.Equal(t, "Iron Will", *props.Name.LocalizedString)
	require.NotNil(t, props.Perk)
	require.NotNil(t, props.Perk.Ability)
	assert.Equal(t, "EMistPerkAbility::DamageReduction", *props.Perk.Ability)
	require.NotNil(t, props.PointsCost)
	assert.Equal(t, "3", *props.PointsCost)
}

func TestParseRecord_NotAnArray(t *testing.T) {
	for _, in := range []string{`{"Properties": {}}`, `"perk"`, `42`, `[{]`, ``} {
		_, err := perk.ParseRecord([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseRecord_Null(t *testing.T) {
	rec, err := perk.ParseRecord([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, rec)
}

func TestParseRecord_NonObjectEntries(t *testing.T) {
	rec, err := perk.ParseRecord([]byte(`[1, "two", [3], null]`))
	require.NoError(t, err)
	require.Len(t, rec, 4)
	for i, e := range rec {
		assert.Nil(t, e.Properties, "entry %d", i)
	}
}

func TestParseRecord_KeysAreCaseSensitive(t *testing.T) {
	rec, err := perk.ParseRecord([]byte(`[{"properties": {"Name": {"LocalizedString": "x"}}}]`))
	require.NoError(t, err)
	require.Len(t, rec, 1)
	assert.Nil(t, rec[0].Properties)
}

func TestParseRecord_MismatchedTypesAreAbsent(t *testing.T) {
	rec, err := perk.ParseRecord([]byte(`[{"Properties": {
		"Name": "flat string",
		"Description": {"LocalizedString": 7, "SourceString": null},
		"Perk": ["EMistPerkAbility::X"],
		"PointsCost": true
	}}]`))
	require.NoError(t, err)
	props := rec[0].Properties
	require.NotNil(t, props)
	assert.Nil(t, props.Name)
	require.NotNil(t, props.Description)
	assert.Nil(t, props.Description.LocalizedString)
	assert.Nil(t, props.Description.SourceString)
	assert.Nil(t, props.Perk)
	assert.Nil(t, props.PointsCost)
}

func TestParseRecord_PointsCostForms(t *testing.T) {
	cases := []struct {
		raw  string
		want *string
	}{
		{`3`, ptr("3")},
		{`2.5`, ptr("2.5")},
		{`-1`, ptr("-1")},
		{`1e2`, ptr("100")},
		{`2.5E1`, ptr("25")},
		{`1.5e-3`, ptr("0.0015")},
		{`"12"`, ptr("12")},
		{`"free"`, ptr("free")},
		{`null`, nil},
		{`false`, nil},
		{`{"Value": 1}`, nil},
		{`[1]`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			rec, err := perk.ParseRecord([]byte(`[{"Properties": {"PointsCost": ` + tc.raw + `}}]`))
			require.NoError(t, err)
			require.NotNil(t, rec[0].Properties)
			assert.Equal(t, tc.want, rec[0].Properties.PointsCost)
		})
	}
}

func ptr(s string) *string { return &s }
