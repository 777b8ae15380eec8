package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("rozvaha", "rozvaha"))
	})

	t.Run("both empty score 1", func(t *testing.T) {
		assert.Equal(t, 1.0, Ratio("", ""))
	})

	t.Run("disjoint strings score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Ratio("abc", "xyz"))
	})

	t.Run("single OCR corruption stays high", func(t *testing.T) {
		// "vykaz zisku a ztraty" with one flipped character
		score := Ratio("vykaz zisku a ztraty", "vykaz zisku a ztraly")
		assert.Greater(t, score, 0.9)
	})

	t.Run("handles czech diacritics as single runes", func(t *testing.T) {
		score := Ratio("peněžní toky", "penezni toky")
		assert.Greater(t, score, 0.7)
		assert.Less(t, score, 1.0)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first := Ratio("přehled o peněžních tocích", "prehled o penezich tocich")
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Ratio("přehled o peněžních tocích", "prehled o penezich tocich"))
		}
	})
}

func TestLongestMatch(t *testing.T) {
	t.Run("finds contained keyword", func(t *testing.T) {
		m := LongestMatch("rozvaha", "konsolidovaná rozvaha k 31.12.2023")
		assert.Equal(t, len([]rune("rozvaha")), m.Size)
		assert.Equal(t, 0, m.A)
	})

	t.Run("empty needle", func(t *testing.T) {
		m := LongestMatch("", "rozvaha")
		assert.Equal(t, 0, m.Size)
	})
}
