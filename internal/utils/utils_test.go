package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("client@example.com"))
	assert.True(t, IsValidEmail("a.b+tag@shop.co.uk"))

	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("spaces in@mail.com"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestNormalizeTunisianPhone(t *testing.T) {
	assert.Equal(t, "+21620123456", NormalizeTunisianPhone("20 12 34 56"))
	assert.Equal(t, "+21620123456", NormalizeTunisianPhone("21620123456"))
	assert.Equal(t, "+21620123456", NormalizeTunisianPhone("+216 20-12-34-56"))
	assert.Equal(t, "+33612345678", NormalizeTunisianPhone("+33 6 12 34 56 78"))
	assert.Equal(t, "", NormalizeTunisianPhone("  "))
}

func TestGenerateOrderReference(t *testing.T) {
	ref := GenerateOrderReference()

	assert.True(t, strings.HasPrefix(ref, "CMD-"))
	assert.NotEqual(t, ref, GenerateOrderReference())
}
