package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"taxoscan/pkg/taxonomy"
)

// genCreditCard picks one of the four major networks by its IIN
// prefix: Visa (4), Mastercard (51-55), Amex (34,37), Discover (6011).
func genCreditCard(r *rand.Rand, _ taxonomy.Locale) string {
	switch weightedChoice(r, []float64{0.4, 0.3, 0.15, 0.15}) {
	case 0:
		body := "4" + randDigits(r, 14)
		return body + string(luhnCheckDigit(body))
	case 1:
		prefix := fmt.Sprintf("5%d", 1+r.Intn(5))
		body := prefix + randDigits(r, 13)
		return body + string(luhnCheckDigit(body))
	case 2:
		prefix := randChoice(r, []string{"34", "37"})
		body := prefix + randDigits(r, 12)
		return body + string(luhnCheckDigit(body))
	default:
		body := "6011" + randDigits(r, 11)
		return body + string(luhnCheckDigit(body))
	}
}

func genISIN(r *rand.Rand, _ taxonomy.Locale) string {
	country := randFrom(r, upperAlpha, 2)
	body := randFrom(r, alnumUpper, 9)
	full := country + body
	return full + string(isinCheckDigit(full))
}

func genCUSIP(r *rand.Rand, _ taxonomy.Locale) string {
	body := randDigits(r, 8)
	return body + string(cusipCheckDigit(body))
}

var sedolAlphabet = "BCDFGHJKLMNPQRSTVWXYZ0123456789"

func genSEDOL(r *rand.Rand, _ taxonomy.Locale) string {
	body := randFrom(r, sedolAlphabet, 6)
	return body + string(sedolCheckDigit(body))
}

var swiftBanks = []string{"DEUT", "BARC", "CHAS", "HSBC", "BNPA", "SOGE"}
var swiftCountries = []string{"DE", "GB", "US", "FR", "JP", "CA"}

func genSwiftBIC(r *rand.Rand, _ taxonomy.Locale) string {
	bank := randChoice(r, swiftBanks)
	country := randChoice(r, swiftCountries)
	location := randFrom(r, alnumUpper, 2)
	if r.Intn(2) == 0 {
		return bank + country + location
	}
	return bank + country + location + randFrom(r, alnumUpper, 3)
}

var leiPrefixes = []string{"529900", "213800", "549300", "391200"}

func genLEI(r *rand.Rand, _ taxonomy.Locale) string {
	prefix := randChoice(r, leiPrefixes)
	entity := randFrom(r, alnumUpper, 12)
	body := prefix + entity
	return body + mod9710CheckDigits(body)
}

var imeiTACs = []string{
	"01215200", "35328206", "49015420", "86625803",
	"35853758", "01171400", "99000566", "35404806",
}

func genIMEI(r *rand.Rand, _ taxonomy.Locale) string {
	tac := randChoice(r, imeiTACs)
	serial := randDigits(r, 6)
	body := tac + serial
	return body + string(luhnCheckDigit(body))
}

var ean13CountryPrefixes = []string{"590", "690", "400", "500", "450", "760"}

func genEAN13(r *rand.Rand, _ taxonomy.Locale) string {
	prefix := randChoice(r, ean13CountryPrefixes)
	body := prefix + randDigits(r, 9)
	return body + string(eanCheckDigit(body))
}

func genEAN8(r *rand.Rand, _ taxonomy.Locale) string {
	body := randDigits(r, 7)
	return body + string(eanCheckDigit(body))
}

func genISBN10(r *rand.Rand, _ taxonomy.Locale) string {
	group := randDigitsRange(r, 0, 9)
	publisher := randDigits(r, 3)
	title := randDigits(r, 5)
	body := fmt.Sprintf("%d%s%s", group, publisher, title)
	check := isbn10CheckDigit(body)
	return fmt.Sprintf("%d-%s-%s-%c", group, publisher, title, check)
}

func genISBN13(r *rand.Rand, _ taxonomy.Locale) string {
	prefix := randChoice(r, []string{"978", "979"})
	group := randDigitsRange(r, 0, 9)
	publisher := randDigits(r, 3)
	title := randDigits(r, 5)
	body := fmt.Sprintf("%s%d%s%s", prefix, group, publisher, title)
	check := eanCheckDigit(body)
	return fmt.Sprintf("%s-%d-%s-%s-%c", prefix, group, publisher, title, check)
}

func genISSN(r *rand.Rand, _ taxonomy.Locale) string {
	body := randDigits(r, 7)
	check := mod1110CheckDigit(body)
	return fmt.Sprintf("%s-%s%c", body[:4], body[4:], check)
}

// mod1110CheckDigit computes the ISSN weighted-sum mod-11 check
// character (weights 8..2), 'X' for remainder 10.
func mod1110CheckDigit(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		sum += int(body[i]-'0') * (8 - i)
	}
	rem := sum % 11
	if rem == 0 {
		return '0'
	}
	check := 11 - rem
	if check == 10 {
		return 'X'
	}
	return byte('0' + check)
}

var doiPublishers = []string{"1038", "1109", "1016", "1145", "1007"}

func genDOI(r *rand.Rand, _ taxonomy.Locale) string {
	publisher := randChoice(r, doiPublishers)
	suffix := randFrom(r, "abcdefghijklmnopqrstuvwxyz0123456789.", 8)
	return fmt.Sprintf("10.%s/%s", publisher, suffix)
}

var emailDomains = []string{"example.com", "mail.test", "corp.example", "inbox.test"}
var emailNames = []string{"alice", "bob", "carol", "dave", "erin", "frank"}

func genEmail(r *rand.Rand, _ taxonomy.Locale) string {
	name := randChoice(r, emailNames)
	suffix := randDigitsRange(r, 1, 999)
	domain := randChoice(r, emailDomains)
	return fmt.Sprintf("%s%d@%s", name, suffix, domain)
}

func genEmailPayPal(r *rand.Rand, _ taxonomy.Locale) string {
	name := randChoice(r, emailNames)
	if r.Intn(2) == 0 {
		return fmt.Sprintf("%s@paypal.com", name)
	}
	return fmt.Sprintf("pp-%s@pp-merchant.com", name)
}

// phoneTemplates maps locales to E.164-format generators.
var phoneTemplates = map[taxonomy.Locale]func(*rand.Rand) string{
	taxonomy.LocaleENUS: func(r *rand.Rand) string { return "+1" + randDigits(r, 10) },
	taxonomy.LocaleENCA: func(r *rand.Rand) string { return "+1" + randDigits(r, 10) },
	taxonomy.LocaleENGB: func(r *rand.Rand) string { return "+44" + randDigits(r, 10) },
	taxonomy.LocaleENAU: func(r *rand.Rand) string { return "+61" + randDigits(r, 9) },
	taxonomy.LocaleDE:   func(r *rand.Rand) string { return "+49" + randDigits(r, 10) },
	taxonomy.LocaleFR:   func(r *rand.Rand) string { return "+33" + randDigits(r, 9) },
	taxonomy.LocaleES:   func(r *rand.Rand) string { return "+34" + randDigits(r, 9) },
	taxonomy.LocaleJA:   func(r *rand.Rand) string { return "+81" + randDigits(r, 9) },
}

func genPhoneNumber(r *rand.Rand, locale taxonomy.Locale) string {
	if tmpl, ok := phoneTemplates[locale]; ok {
		return tmpl(r)
	}
	return phoneTemplates[taxonomy.LocaleENUS](r)
}

func genUsername(r *rand.Rand, _ taxonomy.Locale) string {
	name := randChoice(r, emailNames)
	return fmt.Sprintf("%s_%d", name, r.Intn(100))
}

var givenNamesByLocale = map[taxonomy.Locale][]string{
	taxonomy.LocaleENUS: {"Alice", "Bob", "Carol"},
	taxonomy.LocaleENGB: {"Oliver", "Amelia", "Jack"},
	taxonomy.LocaleDE:   {"Hans", "Greta", "Klaus"},
	taxonomy.LocaleFR:   {"Jean", "Marie", "Luc"},
	taxonomy.LocaleES:   {"Mateo", "Lucia", "Diego"},
	taxonomy.LocaleIT:   {"Marco", "Giulia", "Luca"},
	taxonomy.LocaleJA:   {"Haruto", "Yui", "Sota"},
	taxonomy.LocaleZH:   {"Wei", "Jing", "Fang"},
	taxonomy.LocaleKO:   {"Jisoo", "Minjun", "Seoyeon"},
}

var surnamesByLocale = map[taxonomy.Locale][]string{
	taxonomy.LocaleENUS: {"Example", "Smith", "Johnson"},
	taxonomy.LocaleENGB: {"Example", "Taylor", "Brown"},
	taxonomy.LocaleDE:   {"Muller", "Schmidt", "Fischer"},
	taxonomy.LocaleFR:   {"Dupont", "Martin", "Bernard"},
	taxonomy.LocaleES:   {"Garcia", "Lopez", "Martinez"},
	taxonomy.LocaleIT:   {"Rossi", "Russo", "Ferrari"},
	taxonomy.LocaleJA:   {"Sato", "Suzuki", "Takahashi"},
	taxonomy.LocaleZH:   {"Li", "Wang", "Zhang"},
	taxonomy.LocaleKO:   {"Kim", "Lee", "Park"},
}

// surnameFirstLocales lists locales where convention orders the family
// name before the given name.
var surnameFirstLocales = map[taxonomy.Locale]bool{
	taxonomy.LocaleJA: true,
	taxonomy.LocaleZH: true,
	taxonomy.LocaleKO: true,
}

func genPersonName(r *rand.Rand, locale taxonomy.Locale) string {
	given, ok := givenNamesByLocale[locale]
	if !ok {
		given, locale = givenNamesByLocale[taxonomy.LocaleENUS], taxonomy.LocaleENUS
	}
	surname := surnamesByLocale[locale]
	g := randChoice(r, given)
	s := randChoice(r, surname)
	if surnameFirstLocales[locale] {
		return strings.Join([]string{s, g}, " ")
	}
	return strings.Join([]string{g, s}, " ")
}

func registerIdentityArms(reg map[string]armFunc) {
	reg["identity.financial.credit_card"] = genCreditCard
	reg["identity.financial.isin"] = genISIN
	reg["identity.financial.cusip"] = genCUSIP
	reg["identity.financial.sedol"] = genSEDOL
	reg["identity.financial.swift_bic"] = genSwiftBIC
	reg["identity.financial.lei"] = genLEI
	reg["identity.device.imei"] = genIMEI
	reg["identity.product.ean13"] = genEAN13
	reg["identity.product.ean8"] = genEAN8
	reg["identity.publication.isbn10"] = genISBN10
	reg["identity.publication.isbn13"] = genISBN13
	reg["identity.publication.issn"] = genISSN
	reg["identity.publication.doi"] = genDOI
	reg["identity.person.email"] = genEmail
	reg["identity.contact.email_paypal"] = genEmailPayPal
	reg["identity.contact.phone_number"] = genPhoneNumber
	reg["identity.account.username"] = genUsername
	reg["identity.person.name"] = genPersonName
}
