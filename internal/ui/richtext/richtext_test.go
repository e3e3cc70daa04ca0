package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleFragment(t *testing.T) {
	frags := Parse("<color=#FFFFFFFF><size=32>Hello</size></color>")

	require.Len(t, frags, 1)
	assert.Equal(t, Fragment{R: 255, G: 255, B: 255, Alpha: 1, Size: 32, Text: "Hello"}, frags[0])
}

func TestParse_MultipleFragments(t *testing.T) {
	markup := "<color=#ED8796D9><size=28>second</size></color>\n\n<color=#FFFFFF66><size=16>first</size></color>"

	frags := Parse(markup)

	require.Len(t, frags, 2)
	assert.Equal(t, "second", frags[0].Text)
	assert.Equal(t, uint8(0xED), frags[0].R)
	assert.InDelta(t, 217.0/255, frags[0].Alpha, 1e-9)
	assert.Equal(t, 16, frags[1].Size)
}

func TestParse_MultilineMessage(t *testing.T) {
	frags := Parse("<color=#FFFFFFFF><size=32>line one\nline two</size></color>")

	require.Len(t, frags, 1)
	assert.Equal(t, "line one\nline two", frags[0].Text)
}

func TestParse_MessageContainingClosingTags(t *testing.T) {
	markup := "<color=#FFFFFFFF><size=32>a</size></color>b</size></color>\n\n<color=#FFFFFFD9><size=28>older</size></color>"

	frags := Parse(markup)

	require.Len(t, frags, 2)
	assert.Equal(t, "a</size></color>b", frags[0].Text)
	assert.Equal(t, "older", frags[1].Text)
}

func TestParse_IgnoresGarbage(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("plain text"))
	assert.Empty(t, Parse("<color=#FFF><size=32>short hex</size></color>"))
}

func TestRender(t *testing.T) {
	frags := Parse("<color=#FFFFFFFF><size=32>new</size></color>\n\n<color=#FFFFFF66><size=16>old</size></color>")

	out := Render(frags, DefaultOptions())

	assert.Contains(t, out, "new")
	assert.Contains(t, out, "old")
	assert.Equal(t, 3, len(strings.Split(out, "\n")), "fragments are separated by a blank line")
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", Render(nil, DefaultOptions()))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, uint8(255), blend(255, 0, 1))
	assert.Equal(t, uint8(0), blend(255, 0, 0))
	assert.Equal(t, uint8(128), blend(255, 0, 0.5))
}

func TestParseHex(t *testing.T) {
	assert.Equal(t, [3]uint8{0x24, 0x27, 0x3a}, parseHex("#24273a"))
	assert.Equal(t, [3]uint8{}, parseHex("nope"))
}
