package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hangtime-app/hangtime/internal/calendars"
)

func Test_splitIDs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "single",
			raw:  "ada",
			want: []string{"ada"},
		},
		{
			name: "many with spaces",
			raw:  "ada, bob ,eve",
			want: []string{"ada", "bob", "eve"},
		},
		{
			name: "stray commas",
			raw:  ",ada,,bob,",
			want: []string{"ada", "bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, splitIDs(tt.raw))
		})
	}
}

func Test_parseKind(t *testing.T) {
	kind, ok := parseKind("busy")
	require.True(t, ok)
	require.Equal(t, calendars.KindBusy, kind)

	kind, ok = parseKind("free")
	require.True(t, ok)
	require.Equal(t, calendars.KindFree, kind)

	_, ok = parseKind("tentative")
	require.False(t, ok)
}
