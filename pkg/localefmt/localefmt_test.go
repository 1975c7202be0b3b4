package localefmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"localenorm/pkg/localefmt"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input string

		want        string
		wantEntries int
	}{
		"Sorts entries by key": {
			input:       "[b]\nother = \"2\"\n[a]\nother = \"1\"\n",
			want:        "a = \"1\"\nb = \"2\"\n",
			wantEntries: 2,
		},
		"Folds multi-line value into escaped newlines": {
			input:       "[m]\nother = \"\"\"Hello\nWorld\"\"\"\n",
			want:        `m = "Hello\nWorld"` + "\n",
			wantEntries: 1,
		},
		"Escapes quotes inside multi-line value": {
			input:       "[q]\nother = \"\"\"Say \"hi\"\nnow\"\"\"\n",
			want:        `q = "Say \"hi\"\nnow"` + "\n",
			wantEntries: 1,
		},
		"Strips one leading and trailing newline of multi-line value": {
			input:       "[t]\nother = \"\"\"\nline1\nline2\n\"\"\"\n",
			want:        `t = "line1\nline2"` + "\n",
			wantEntries: 1,
		},
		"Drops hash line": {
			input:       "[greeting]\nhash = \"abc123\"\nother = \"val\"\n",
			want:        "greeting = \"val\"\n",
			wantEntries: 1,
		},
		"Keeps last duplicate": {
			input:       "[dup]\nother = \"1\"\n\n[dup]\nother = \"2\"\n",
			want:        "dup = \"2\"\n",
			wantEntries: 1,
		},
		"Drops block without other line": {
			input:       "[gone]\nhash = \"x\"\n\n[kept]\nother = \"k\"\n",
			want:        "kept = \"k\"\n",
			wantEntries: 1,
		},
		"Passes escaped single-line value through": {
			input:       "[e]\nother = \"a \\\"b\\\" c\"\n",
			want:        `e = "a \"b\" c"` + "\n",
			wantEntries: 1,
		},
		"Keeps dotted keys": {
			input:       "[menu.settings]\nother = \"Settings\"\n[menu.back]\nother = \"Back\"\n",
			want:        "menu.back = \"Back\"\nmenu.settings = \"Settings\"\n",
			wantEntries: 2,
		},
		"Parses already normalized content": {
			input:       "b = \"2\"\na = \"1\"\n",
			want:        "a = \"1\"\nb = \"2\"\n",
			wantEntries: 2,
		},
		"Accepts Unicode spaces around the equal sign": {
			input:       "[ja]\u3000\nother\u3000=\u3000\"こんにちは\"\n",
			want:        "ja = \"こんにちは\"\n",
			wantEntries: 1,
		},
		"Uses byte order": {
			input:       "[b]\nother = \"3\"\n[a]\nother = \"2\"\n[B]\nother = \"1\"\n",
			want:        "B = \"1\"\na = \"2\"\nb = \"3\"\n",
			wantEntries: 3,
		},

		"Empty content yields empty output":  {input: "", want: ""},
		"Content without any block is empty": {input: "# nothing here\n", want: ""},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, n := localefmt.Normalize([]byte(tc.input))
			require.Equal(t, tc.want, string(got), "Unexpected normalized content")
			require.Equal(t, tc.wantEntries, n, "Unexpected number of entries")
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		input string

		wantEntries int
	}{
		"Bare keys with hash, multi-line and duplicate": {
			input: `[welcome]
hash = "sha1-1234"
other = "Bienvenue"

[about]
other = """Une ligne
Une "autre" ligne"""

[cancel]
other = "Annuler \"maintenant\""

[welcome]
other = "Salut"
`,
			wantEntries: 3,
		},
		"Quoted header":            {input: "[\"Hello world\"]\nother = \"Hi\"\n[plain]\nother = \"p\"\n", wantEntries: 2},
		"Key starting with a hash": {input: "[#tag]\nother = \"t\"\n", wantEntries: 1},
		"Key holding an equal":     {input: "[a=b]\nother = \"v\"\n[a = c]\nother = \"w\"\n", wantEntries: 2},
		"Key with trailing space":  {input: "[key ]\nother = \"x\"\n", wantEntries: 1},
		"Key with inner quote":     {input: "[say \"x]\nother = \"y\"\n", wantEntries: 1},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, n := localefmt.Normalize([]byte(tc.input))
			require.Equal(t, tc.wantEntries, n, "Unexpected number of entries on first pass")

			second, n := localefmt.Normalize(first)
			require.Equal(t, tc.wantEntries, n, "Unexpected number of entries on second pass")
			require.Equal(t, string(first), string(second), "Second pass should not change the content")
		})
	}
}

func TestFoldValue(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		value string
		want  string
	}{
		"Standard literal is unchanged":    {value: `"plain \"x\""`, want: `"plain \"x\""`},
		"Empty literal is unchanged":       {value: `""`, want: `""`},
		"Empty triple-quoted literal":      {value: `""""""`, want: `""`},
		"Triple-quoted single line":        {value: `"""abc"""`, want: `"abc"`},
		"Only one newline is trimmed":      {value: "\"\"\"\n\nabc\n\n\"\"\"", want: `"\nabc\n"`},
		"Backslashes are kept as they are": {value: "\"\"\"a\\tb\"\"\"", want: `"a\tb"`},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, localefmt.FoldValue(tc.value))
		})
	}
}
