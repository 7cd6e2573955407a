package pgn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const liveChessBlob = `[Event "Live Chess"]
[Site "Chess.com"]
[Date "2021.10.02"]
[Round "-"]
[White "alice"]
[Black "bob"]
[Result "1-0"]
[ECO "B06"]
[ECOUrl "https://www.chess.com/openings/Modern-Defense-with-1-e4"]
[UTCDate "2021.10.02"]
[UTCTime "17:04:02"]
[TimeControl "600"]

1. e4 g6 2. d4 Bg7 3. Nc3 d6 1-0`

func TestParseFields(t *testing.T) {
	cases := []struct {
		name     string
		blob     string
		expected Fields
	}{
		{
			name: "live chess export",
			blob: liveChessBlob,
			expected: Fields{
				ECO:     "B06",
				ECOUrl:  "https://www.chess.com/openings/Modern-Defense-with-1-e4",
				UTCDate: "2021.10.02",
			},
		},
		{
			name:     "empty blob",
			blob:     "",
			expected: Fields{},
		},
		{
			name:     "no tags at all",
			blob:     "1. e4 e5 2. Nf3 Nc6 1/2-1/2",
			expected: Fields{},
		},
		{
			name: "missing opening url",
			blob: "[ECO \"A00\"]\n[UTCDate \"2020.01.31\"]",
			expected: Fields{
				ECO:     "A00",
				UTCDate: "2020.01.31",
			},
		},
		{
			name: "last occurrence wins",
			blob: "[ECO \"A00\"]\n[ECO \"C20\"]",
			expected: Fields{
				ECO: "C20",
			},
		},
		{
			name: "truncated tag line",
			blob: `[ECO "`,
			expected: Fields{
				ECO: "",
			},
		},
		{
			name: "unrelated tags ignored",
			blob: "[Event \"Titled Tuesday\"]\n[Termination \"alice won by resignation\"]",
			expected: Fields{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, ParseFields(c.blob))
		})
	}
}

func FuzzParseFields(f *testing.F) {
	f.Add(liveChessBlob)
	f.Add("")
	f.Add(`[ECO "`)
	f.Add("[ECOUrl \"x\"]\n[UTCDate")

	f.Fuzz(func(t *testing.T, blob string) {
		fields := ParseFields(blob)
		for _, value := range []string{fields.ECO, fields.ECOUrl, fields.UTCDate} {
			require.False(t, strings.ContainsAny(value, `"]`), "quoting must be stripped from %q", value)
			require.False(t, strings.Contains(value, " "), "values are single tokens, got %q", value)
		}
	})
}
