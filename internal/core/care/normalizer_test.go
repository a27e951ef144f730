package care

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCandidates(t *testing.T) {
	t.Run("帶命名者附註的學名", func(t *testing.T) {
		candidates := normalizeCandidates("Monstera deliciosa (Liebm.)")
		assert.Equal(t, []string{
			"Monstera deliciosa (Liebm.)",
			"Monstera deliciosa",
			"monstera deliciosa (liebm.)",
			"monstera",
		}, candidates)
	})

	t.Run("單純學名", func(t *testing.T) {
		candidates := normalizeCandidates("Aloe vera")
		assert.Equal(t, []string{"Aloe vera", "aloe vera", "aloe"}, candidates)
	})

	t.Run("單詞名稱不重複加入", func(t *testing.T) {
		candidates := normalizeCandidates("fern")
		assert.Equal(t, []string{"fern"}, candidates)
	})

	t.Run("空字串回傳 nil", func(t *testing.T) {
		assert.Nil(t, normalizeCandidates(""))
	})
}

func TestGenusTerm(t *testing.T) {
	assert.Equal(t, "Monstera", genusTerm("Monstera deliciosa"))
	assert.Equal(t, "Aloe", genusTerm("Aloe"))
	assert.Equal(t, "", genusTerm("   "))
}

func TestCollapseTerm(t *testing.T) {
	assert.Equal(t, "Aloevera", collapseTerm("Aloe vera"))
	assert.Equal(t, "Aloevera", collapseTerm("  Aloe   vera "))
	assert.Equal(t, "Fern", collapseTerm("Fern"))
}
