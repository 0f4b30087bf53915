package postproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRFC3339VsISO8601(t *testing.T) {
	label, rule := Apply("2024-01-02 15:04:05Z", labelRFC3339)
	assert.Equal(t, labelRFC3339, label)
	assert.Equal(t, "rfc3339_vs_iso8601", rule)

	label, rule = Apply("2024-01-02T15:04:05Z", labelRFC3339)
	assert.Equal(t, labelISO8601, label)
	assert.Equal(t, "rfc3339_vs_iso8601", rule)
}

func TestHashVsHexToken(t *testing.T) {
	md5 := "5d41402abc4b2a76b9719d911017c592"[:32]
	label, rule := Apply(md5, labelTokenHex)
	assert.Equal(t, labelHash, label)
	assert.Equal(t, "hash_vs_hex_token", rule)

	label, rule = Apply("deadbeefcafebabe12", labelHash)
	assert.Equal(t, labelTokenHex, label)
	assert.Equal(t, "hash_vs_hex_token", rule)
}

func TestEmojiVsGenderSymbol(t *testing.T) {
	label, rule := Apply("♂", labelEmoji)
	assert.Equal(t, labelGenderSym, label)
	assert.Equal(t, "emoji_vs_gender_symbol", rule)

	label, rule = Apply("😀", labelGenderSym)
	assert.Equal(t, labelEmoji, label)
	assert.Equal(t, "emoji_vs_gender_symbol", rule)
}

func TestISSNVsPostalCode(t *testing.T) {
	label, rule := Apply("0378-5955", labelPostalCode)
	assert.Equal(t, labelISSN, label)
	assert.Equal(t, "issn_vs_postal_code", rule)

	label, rule = Apply("12345", labelISSN)
	assert.Equal(t, labelPostalCode, label)
	assert.Equal(t, "issn_vs_postal_code", rule)
}

func TestLatitudeVsLongitude(t *testing.T) {
	label, rule := Apply("120.5", labelLatitude)
	assert.Equal(t, labelLongitude, label)
	assert.Equal(t, "latitude_vs_longitude", rule)

	label, rule = Apply("45.2", labelLongitude)
	assert.Equal(t, labelLongitude, label)
	assert.Empty(t, rule)
}

func TestEmailRescue(t *testing.T) {
	label, rule := Apply("alice@example.com", labelHostname)
	assert.Equal(t, labelEmail, label)
	assert.Equal(t, "email_rescue", rule)

	label, rule = Apply("a@b@example.com", labelHostname)
	assert.Equal(t, labelHostname, label)
	assert.Empty(t, rule)

	label, rule = Apply(`{"a":"alice@example.com"}`, labelSlug)
	assert.Equal(t, labelSlug, label)
	assert.Empty(t, rule)
}

func TestApplyLeavesUnrelatedLabelsUnchanged(t *testing.T) {
	label, rule := Apply("anything", "identity.financial.credit_card")
	assert.Equal(t, "identity.financial.credit_card", label)
	assert.Empty(t, rule)
}
