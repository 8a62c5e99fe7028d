package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "ꙮ100", FormatPoints(DefaultCurrencySymbol, 100))
	assert.Equal(t, "$-5", FormatPoints("$", -5))
}

func TestParseMention(t *testing.T) {
	tests := []struct {
		token string
		want  string
		ok    bool
	}{
		{"<@123>", "123", true},
		{"<@!456>", "456", true},
		{"<@>", "", false},
		{"<@abc>", "", false},
		{"@123", "", false},
		{"<@123", "", false},
		{"<#123>", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseMention(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEllipsize(t *testing.T) {
	assert.Equal(t, "short", Ellipsize("short", 20))
	assert.Equal(t, "exactly twenty chars", Ellipsize("exactly twenty chars", 20))
	assert.Equal(t, "this note is far too...", Ellipsize("this note is far too long to show", 20))
	assert.Equal(t, "ꙮꙮ...", Ellipsize("ꙮꙮꙮ", 2))
}

func TestIsSnowflake(t *testing.T) {
	assert.True(t, IsSnowflake("80351110224678912"))
	assert.True(t, IsSnowflake("0"))
	assert.False(t, IsSnowflake(""))
	assert.False(t, IsSnowflake("-1"))
	assert.False(t, IsSnowflake("+5"))
	assert.False(t, IsSnowflake("12a"))
	assert.False(t, IsSnowflake("99999999999999999999"))
}
