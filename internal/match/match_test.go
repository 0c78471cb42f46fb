package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type city struct {
	id   string
	name string
}

func cityName(c city) string { return c.name }

var cities = []city{
	{id: "1", name: "Appleton"},
	{id: "2", name: "Apricot Valley"},
	{id: "3", name: "Banana Creek"},
	{id: "4", name: "Grand Rapids"},
}

func TestSubstring(t *testing.T) {
	t.Parallel()
	pred := Substring(cityName)

	tests := []struct {
		query string
		want  []string
	}{
		{"ap", []string{"1", "2", "4"}}, // Grand R-ap-ids matches too
		{"APPLE", []string{"1"}},
		{"creek", []string{"3"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := pred(cities, tt.query)
			var ids []string
			for _, c := range got {
				ids = append(ids, c.id)
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestPrefix(t *testing.T) {
	t.Parallel()
	pred := Prefix(cityName)

	got := pred(cities, "ap")
	var ids []string
	for _, c := range got {
		ids = append(ids, c.id)
	}
	require.ElementsMatch(t, []string{"1", "2"}, ids, "prefix match only, no mid-word hits")

	require.Empty(t, pred(cities, "rapids"))
	require.Len(t, pred(cities, "APRICOT"), 1)
}

func TestPrefixRebuildsForNewCollection(t *testing.T) {
	t.Parallel()
	pred := Prefix(cityName)

	require.Len(t, pred(cities, "ap"), 2)

	other := []city{{id: "9", name: "Apex"}}
	require.Len(t, pred(other, "ap"), 1)

	// And back again: the index follows the collection it is given
	require.Len(t, pred(cities, "ap"), 2)
}

func TestPrefixDuplicateKeys(t *testing.T) {
	t.Parallel()
	pred := Prefix(cityName)

	dupes := []city{
		{id: "1", name: "Springfield"},
		{id: "2", name: "Springfield"},
	}
	require.Len(t, pred(dupes, "spring"), 2, "items sharing a key must all surface")
}
