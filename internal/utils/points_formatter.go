package utils

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
)

const DefaultCurrencySymbol = "ꙮ"

// FormatPoints renders an amount prefixed with the currency symbol, e.g. "ꙮ100".
func FormatPoints(symbol string, amount int64) string {
	return symbol + strconv.FormatInt(amount, 10)
}

// Mention renders a user handle in Discord mention syntax.
func Mention(user string) string {
	return "<@" + user + ">"
}

// ParseMention accepts "<@123>" and the nickname form "<@!123>".
func ParseMention(token string) (string, bool) {
	if !strings.HasPrefix(token, "<@") || !strings.HasSuffix(token, ">") {
		return "", false
	}
	id := strings.TrimPrefix(token[2:len(token)-1], "!")
	if !IsSnowflake(id) {
		return "", false
	}
	return id, true
}

// IsSnowflake reports whether s is a plain decimal id that fits a Discord snowflake.
func IsSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	_, err := snowflake.ParseString(s)
	return err == nil
}

// Ellipsize cuts s to max runes, appending "..." when something was cut.
func Ellipsize(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
