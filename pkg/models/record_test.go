package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeasonLabelUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want SeasonLabel
	}{
		{`"1"`, "1"},
		{`1`, "1"},
		{`12`, "12"},
		{`"OVA"`, "OVA"},
		{`"Season 2"`, "Season 2"},
		{`null`, ""},
	}

	for _, tc := range cases {
		var s SeasonLabel
		assert.NoErrorf(t, json.Unmarshal([]byte(tc.raw), &s), "raw %s", tc.raw)
		assert.Equalf(t, tc.want, s, "raw %s", tc.raw)
	}
}

func TestEpisodeRecordUnmarshalPartial(t *testing.T) {
	var r EpisodeRecord
	err := json.Unmarshal([]byte(`{"series":"X","season":2}`), &r)

	assert.NoError(t, err)
	assert.Equal(t, "X", r.Series)
	assert.Equal(t, SeasonLabel("2"), r.Season)
	assert.Zero(t, r.Ep)
	assert.Empty(t, r.Title)
}
