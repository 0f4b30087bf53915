package generator

// luhnCheckDigit computes the Luhn check digit over digits (a string of
// decimal digits, no check digit included yet).
func luhnCheckDigit(digits string) byte {
	n := len(digits)
	sum := 0
	for i := 0; i < n; i++ {
		d := int(digits[n-1-i] - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return byte('0' + (10-sum%10)%10)
}

// eanCheckDigit computes the GS1 weighted-sum-mod-10 check digit
// (weights alternating 1,3 from the left), used by EAN-8/13 and the
// EAN-style tail of ISBN-13.
func eanCheckDigit(digits string) byte {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		weight := 1
		if i%2 == 1 {
			weight = 3
		}
		sum += d * weight
	}
	rem := sum % 10
	if rem == 0 {
		return '0'
	}
	return byte('0' + (10 - rem))
}

// alphaExpand maps a letter to its two-digit numeric expansion
// (A=10..Z=35) and a digit to itself, for ISIN/CUSIP/LEI-style checks.
func alphaExpand(r byte) string {
	if r >= '0' && r <= '9' {
		return string(r)
	}
	val := int(r-'A') + 10
	return string(rune('0'+val/10)) + string(rune('0'+val%10))
}

// isinCheckDigit computes the Luhn digit over the numeric expansion of
// an 11-character ISIN body (2-letter country + 9 alphanumerics).
func isinCheckDigit(body string) byte {
	var expanded []byte
	for i := 0; i < len(body); i++ {
		expanded = append(expanded, alphaExpand(body[i])...)
	}
	return luhnCheckDigit(string(expanded))
}

// cusipCheckDigit computes the CUSIP weighted check digit: values at
// even 1-indexed positions (2nd, 4th, ...) are doubled, letters expand A=10..Z=35,
// and each resulting value's digits are summed digit-by-digit.
func cusipCheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'A' && c <= 'Z':
			v = int(c-'A') + 10
		case c == '*':
			v = 36
		case c == '@':
			v = 37
		case c == '#':
			v = 38
		}
		if (i+1)%2 == 0 {
			v *= 2
		}
		sum += v/10 + v%10
	}
	return byte('0' + (10-sum%10)%10)
}

var sedolWeights = []int{1, 3, 1, 7, 3, 9}

// sedolCheckDigit computes the SEDOL weighted check digit over the
// 6-character body (letters expand A=10..Z=35, weights [1,3,1,7,3,9]).
func sedolCheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body) && i < len(sedolWeights); i++ {
		c := body[i]
		var v int
		if c >= '0' && c <= '9' {
			v = int(c - '0')
		} else {
			v = int(c-'A') + 10
		}
		sum += v * sedolWeights[i]
	}
	return byte('0' + (10-sum%10)%10)
}

// mod9710CheckDigits computes the ISO 7064 Mod 97-10 two check digits
// used by LEI and IBAN: the body plus "00" placeholder is numerically
// expanded (letters A=10..Z=35) and reduced mod 97; the check is
// 98 - remainder.
func mod9710CheckDigits(body string) string {
	var expanded []byte
	for i := 0; i < len(body); i++ {
		expanded = append(expanded, alphaExpand(body[i])...)
	}
	expanded = append(expanded, '0', '0')

	remainder := 0
	for _, d := range expanded {
		remainder = (remainder*10 + int(d-'0')) % 97
	}
	check := 98 - remainder
	return string(rune('0'+check/10)) + string(rune('0'+check%10))
}

// isbn10CheckDigit computes the ISBN-10 weighted-sum-mod-11 check
// character (weights 10..1 over the 9 body digits), 'X' for remainder 10.
func isbn10CheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		sum += int(body[i]-'0') * (10 - i)
	}
	rem := (11 - sum%11) % 11
	if rem == 10 {
		return 'X'
	}
	return byte('0' + rem)
}
