package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{`<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"R&D", "R&amp;D"},
		{"&amp;", "&amp;amp;"},
		{"it's", "it's"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Escape(tc.in), "input %q", tc.in)
	}
}

func TestEscapeLeavesNoRawSpecials(t *testing.T) {
	inputs := []string{`a<b>c&d"e`, `""<<>>&&`, "<<&>>", `x="1" & y<2`}
	for _, in := range inputs {
		out := Escape(in)
		require.NotContains(t, out, "<")
		require.NotContains(t, out, ">")
		require.NotContains(t, out, `"`)
		// every & left in the output starts an entity
		rest := out
		for {
			i := strings.Index(rest, "&")
			if i < 0 {
				break
			}
			rest = rest[i:]
			require.True(t,
				strings.HasPrefix(rest, "&amp;") || strings.HasPrefix(rest, "&lt;") ||
					strings.HasPrefix(rest, "&gt;") || strings.HasPrefix(rest, "&quot;"),
				"raw ampersand in %q", out)
			rest = rest[1:]
		}
	}
}
