package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLower_ASCII(t *testing.T) {
	assert.Equal(t, "ielts", Lower("IELTS"))
	assert.Equal(t, "python, sql", Lower("Python, SQL"))
}

func TestLower_TurkishDottedI(t *testing.T) {
	// İ must fold to plain "i" so that mixed-case Turkish text still
	// matches ASCII lexicon entries.
	assert.Equal(t, "istanbul", Lower("İstanbul"))
}

func TestLower_PreservesDotlessI(t *testing.T) {
	// Already-lowercase dotless ı passes through untouched; uppercase
	// ASCII I folds to plain i (invariant casing, not Turkish casing),
	// keeping acronyms like IELTS matchable.
	assert.Equal(t, "ı", Lower("ı"))
	assert.Equal(t, "yazilim", Lower("YAZILIM"))
	assert.Equal(t, "yazılım", Lower("yazılım"))
}

func TestLower_OtherDiacritics(t *testing.T) {
	assert.Equal(t, "çğöşü", Lower("ÇĞÖŞÜ"))
}
