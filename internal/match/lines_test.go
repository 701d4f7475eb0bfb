package match

import (
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type lineCase struct {
	Name    string   `yaml:"name"`
	Query   string   `yaml:"query"`
	Content string   `yaml:"content"`
	Want    []string `yaml:"want"`
}

func loadCases(t *testing.T) []lineCase {
	t.Helper()

	data, err := os.ReadFile("testdata/lines.yaml")
	require.NoError(t, err)

	var cases []lineCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)
	return cases
}

func TestLines_Cases(t *testing.T) {
	t.Parallel()

	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			got := Lines(tc.Query, tc.Content)
			if len(tc.Want) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.Want, got)
		})
	}
}

func TestLines_OneResult(t *testing.T) {
	t.Parallel()

	content := "\nRust:\nsafe, fast, productive.\nPick three."
	require.Equal(t, []string{"safe, fast, productive."}, Lines("duct", content))
}

func TestLines_EmptyContent(t *testing.T) {
	t.Parallel()

	require.Empty(t, Lines("hello", ""))
	require.Empty(t, Lines("", ""))
}

func TestLines_EmptyQueryIsIdentity(t *testing.T) {
	t.Parallel()

	for _, content := range []string{
		"a",
		"a\n",
		"a\nb\nc",
		"\n",
		"\n\n\n",
		"x\r\ny\r\n",
	} {
		require.Equal(t, splitLines(content), Lines("", content), "content %q", content)
	}
}

// Random content over a tiny alphabet so queries hit often.
func TestLines_Properties(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	const alphabet = "ab\n"

	randString := func(n int) string {
		var b strings.Builder
		for range n {
			b.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		return b.String()
	}

	for range 500 {
		content := randString(rng.IntN(40))
		query := strings.ReplaceAll(randString(rng.IntN(3)), "\n", "")

		all := splitLines(content)
		got := Lines(query, content)

		// Every hit contains the query.
		for _, line := range got {
			require.Contains(t, line, query)
		}

		// Hits are exactly the matching lines, in input order.
		var want []string
		for _, line := range all {
			if strings.Contains(line, query) {
				want = append(want, line)
			}
		}
		require.Equal(t, want, got, "query %q content %q", query, content)
	}
}

func TestLines_Deterministic(t *testing.T) {
	t.Parallel()

	content := "go\ngopher\nrust\ngolang\n"
	first := Lines("go", content)
	require.Equal(t, []string{"go", "gopher", "golang"}, first)
	require.Equal(t, first, Lines("go", content))
}

// splitLines is a reference splitter: "\n" separated, optional "\r" before
// it, no empty line after a final separator.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	terminated := strings.HasSuffix(content, "\n")
	parts := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, p := range parts {
		if i < len(parts)-1 || terminated {
			parts[i] = strings.TrimSuffix(p, "\r")
		}
	}
	return parts
}
