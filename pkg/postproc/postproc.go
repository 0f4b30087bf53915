// Package postproc applies deterministic, format-checkable corrections
// to a classifier's raw argmax prediction. Rules are pure functions of
// (input string, predicted label); none are trained.
package postproc

import (
	"strconv"
	"strings"
)

// Apply runs the fixed rule stack against s and label, in order,
// returning the first rule's corrected label and its name, or the
// original label with an empty rule name if nothing fires. Rule
// trigger sets are disjoint pairs; only one rule can ever match.
func Apply(s, label string) (string, string) {
	if corrected, ok := rfc3339VsISO8601(s, label); ok {
		return corrected, "rfc3339_vs_iso8601"
	}
	if corrected, ok := hashVsHexToken(s, label); ok {
		return corrected, "hash_vs_hex_token"
	}
	if corrected, ok := emojiVsGenderSymbol(s, label); ok {
		return corrected, "emoji_vs_gender_symbol"
	}
	if corrected, ok := issnVsPostalCode(s, label); ok {
		return corrected, "issn_vs_postal_code"
	}
	if corrected, ok := latitudeVsLongitude(s, label); ok {
		return corrected, "latitude_vs_longitude"
	}
	if corrected, ok := emailRescue(s, label); ok {
		return corrected, "email_rescue"
	}
	return label, ""
}

const (
	labelRFC3339    = "datetime.timestamp.rfc_3339"
	labelISO8601    = "datetime.timestamp.iso8601_offset"
	labelHash       = "representation.hash.hash"
	labelTokenHex   = "representation.hash.token_hex"
	labelEmoji      = "representation.symbol.emoji"
	labelGenderSym  = "representation.symbol.gender_symbol"
	labelISSN       = "identity.publication.issn"
	labelPostalCode = "geography.address.postal_code"
	labelLatitude   = "geography.coordinate.latitude"
	labelLongitude  = "geography.coordinate.longitude"
	labelHostname   = "technology.network.hostname"
	labelUsername   = "identity.account.username"
	labelSlug       = "representation.text.slug"
	labelEmail      = "identity.person.email"
)

// rfc3339VsISO8601 inspects the character at index 10: 'T' selects the
// ISO 8601 offset form, a space selects RFC 3339.
func rfc3339VsISO8601(s, label string) (string, bool) {
	if label != labelRFC3339 && label != labelISO8601 {
		return "", false
	}
	if len(s) < 11 {
		return "", false
	}
	switch s[10] {
	case 'T':
		return labelISO8601, true
	case ' ':
		return labelRFC3339, true
	default:
		return "", false
	}
}

func isLowercaseHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f')) {
			return false
		}
	}
	return true
}

// hashVsHexToken resolves canonical hash digest lengths to "hash";
// any other lowercase-hex length is a hex token.
func hashVsHexToken(s, label string) (string, bool) {
	if label != labelHash && label != labelTokenHex {
		return "", false
	}
	if !isLowercaseHex(s) {
		return "", false
	}
	switch len(s) {
	case 32, 40, 64, 128:
		return labelHash, true
	default:
		return labelTokenHex, true
	}
}

var genderSymbols = map[string]bool{"♂": true, "♀": true, "⚧": true, "⚪": true}

// emojiVsGenderSymbol resolves a single-codepoint prediction to the
// exact closed gender-symbol set, else emoji.
func emojiVsGenderSymbol(s, label string) (string, bool) {
	if label != labelEmoji && label != labelGenderSym {
		return "", false
	}
	if len([]rune(s)) != 1 {
		return "", false
	}
	if genderSymbols[s] {
		return labelGenderSym, true
	}
	return labelEmoji, true
}

func issnVsPostalCode(s, label string) (string, bool) {
	if label != labelISSN && label != labelPostalCode {
		return "", false
	}
	if len(s) != 9 || s[4] != '-' {
		return labelPostalCode, true
	}
	for i, r := range s {
		if i == 4 {
			continue
		}
		if i == 8 {
			if !(r >= '0' && r <= '9') && r != 'X' {
				return labelPostalCode, true
			}
			continue
		}
		if r < '0' || r > '9' {
			return labelPostalCode, true
		}
	}
	return labelISSN, true
}

// latitudeVsLongitude parses s as a signed decimal; |v| > 90 can only
// be a longitude.
func latitudeVsLongitude(s, label string) (string, bool) {
	if label != labelLatitude && label != labelLongitude {
		return "", false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "", false
	}
	if v < 0 {
		v = -v
	}
	if v > 90 {
		return labelLongitude, true
	}
	return "", false
}

// emailRescue promotes hostname/username/slug predictions to email
// when the string is unambiguously an email address and carries none
// of the structural-container delimiters that would make this a false
// positive inside CSV/form-data/JSON.
func emailRescue(s, label string) (string, bool) {
	if label != labelHostname && label != labelUsername && label != labelSlug {
		return "", false
	}
	if strings.ContainsAny(s, ",=&{}|;") || strings.Contains(s, "://") {
		return "", false
	}
	if strings.Count(s, "@") != 1 {
		return "", false
	}
	parts := strings.SplitN(s, "@", 2)
	local, domain := parts[0], parts[1]
	if local == "" || domain == "" {
		return "", false
	}
	if !strings.Contains(domain, ".") {
		return "", false
	}
	return labelEmail, true
}
