package face

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alinanorakari/supersimple/internal/domain"
)

func TestPaletteHas64Colors(t *testing.T) {
	assert.Len(t, namedColors, 64)

	seen := map[int32]string{}
	for name, v := range namedColors {
		prev, dup := seen[v]
		assert.False(t, dup, "%s duplicates %s", name, prev)
		seen[v] = name
		assert.Equal(t, v, domain.Color8FromHex(v).Hex(), name)
	}
}

func TestColorByName(t *testing.T) {
	v, ok := ColorByName("Dark Gray")
	assert.True(t, ok)
	assert.Equal(t, int32(0x555555), v)

	v, ok = ColorByName("vivid_cerulean")
	assert.True(t, ok)
	assert.Equal(t, int32(0x00AAFF), v)

	_, ok = ColorByName("mauve")
	assert.False(t, ok)
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "red", ColorName(domain.Color8Red))
	assert.Equal(t, "white", ColorName(domain.Color8White))
}
