package column

import "strconv"

const (
	labelUSSlash    = "datetime.date.us_slash"
	labelEUSlash    = "datetime.date.eu_slash"
	labelShortDMY   = "datetime.date.short_dmy"
	labelShortMDY   = "datetime.date.short_mdy"
	labelCompactDMY = "datetime.date.compact_dmy"
	labelCompactMDY = "datetime.date.compact_mdy"
	labelLatitude   = "geography.coordinate.latitude"
	labelLongitude  = "geography.coordinate.longitude"
	labelYear       = "datetime.component.year"
	labelDecimal    = "representation.numeric.decimal_number"
	labelStreetNum  = "geography.address.street_number"
	labelPostalCode = "geography.address.postal_code"
	labelPort       = "technology.network.port"
	labelIncrement  = "representation.numeric.increment"
)

var wellKnownPorts = map[int]bool{
	22: true, 80: true, 443: true, 3306: true, 5432: true, 8080: true,
	21: true, 25: true, 53: true, 110: true, 143: true, 993: true, 995: true,
}

// disambiguate runs the fixed, ordered rule table from spec.md §4.F
// against the sampled values and the vote distribution. It returns the
// resolved label and the fired rule's name, or ("", "") if nothing
// fires, in which case the caller falls back to plurality vote.
func disambiguate(sample []string, votes map[string]float64) (string, string) {
	if label, ok := dateSlashRule(sample, votes); ok {
		return label, "date_slash_disambiguation"
	}
	if label, ok := shortDateRule(sample, votes); ok {
		return label, "short_date_format"
	}
	if label, ok := coordinateRangeRule(sample, votes); ok {
		return label, "coordinate_range"
	}
	if label, ok := yearDetectionRule(sample, votes); ok {
		return label, "numeric_year_detection"
	}
	if label, ok := postalYearExclusionRule(sample, votes); ok {
		return label, "postal_code_year_exclusion"
	}
	if label, ok := portDetectionRule(sample, votes); ok {
		return label, "port_detection"
	}
	if label, ok := sequentialIntegerRule(sample, votes); ok {
		return label, "numeric_sequential_detection"
	}
	if label, ok := streetNumberRule(sample, votes); ok {
		return label, "street_number_detection"
	}
	if label, ok := postalCodeShapeRule(sample, votes); ok {
		return label, "postal_code_shape_detection"
	}
	return "", ""
}

func present(votes map[string]float64, label string) bool {
	_, ok := votes[label]
	return ok
}

func dominates(votes map[string]float64, label string) bool {
	share, ok := votes[label]
	if !ok {
		return false
	}
	for other, otherShare := range votes {
		if other != label && otherShare > share {
			return false
		}
	}
	return true
}

func dateSlashRule(sample []string, votes map[string]float64) (string, bool) {
	if !present(votes, labelUSSlash) && !present(votes, labelEUSlash) {
		return "", false
	}
	euDominant := dominates(votes, labelEUSlash)
	for _, v := range sample {
		a, b, _, ok := parseSlashDate(v)
		if !ok {
			continue
		}
		if a > 12 {
			return labelEUSlash, true
		}
		if b > 12 {
			return labelUSSlash, true
		}
	}
	if euDominant {
		return labelEUSlash, true
	}
	return labelUSSlash, true
}

func parseSlashDate(v string) (a, b, c int, ok bool) {
	parts := splitN(v, '/', 3)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	ai, err1 := strconv.Atoi(parts[0])
	bi, err2 := strconv.Atoi(parts[1])
	ci, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return ai, bi, ci, true
}

func splitN(s string, sep byte, n int) []string {
	var out []string
	start := 0
	for i := 0; i < len(s) && len(out) < n-1; i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func shortDateRule(sample []string, votes map[string]float64) (string, bool) {
	if present(votes, labelShortDMY) || present(votes, labelShortMDY) {
		for _, v := range sample {
			a, b, _, ok := parseDashDate(v, 2)
			if !ok {
				continue
			}
			if a > 12 {
				return labelShortDMY, true
			}
			if b > 12 {
				return labelShortMDY, true
			}
		}
		if dominates(votes, labelShortDMY) {
			return labelShortDMY, true
		}
		return labelShortMDY, true
	}
	if present(votes, labelCompactDMY) || present(votes, labelCompactMDY) {
		if dominates(votes, labelCompactDMY) {
			return labelCompactDMY, true
		}
		return labelCompactMDY, true
	}
	return "", false
}

func parseDashDate(v string, yearLen int) (a, b, c int, ok bool) {
	parts := splitN(v, '-', 3)
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	ai, err1 := strconv.Atoi(parts[0])
	bi, err2 := strconv.Atoi(parts[1])
	ci, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return ai, bi, ci, true
}

func coordinateRangeRule(sample []string, votes map[string]float64) (string, bool) {
	if !present(votes, labelLatitude) || !present(votes, labelLongitude) {
		return "", false
	}
	for _, v := range sample {
		f, err := strconv.ParseFloat(trimSpace(v), 64)
		if err != nil {
			continue
		}
		if abs(f) > 90 {
			return labelLongitude, true
		}
	}
	return plurality(votes), true
}

func yearDetectionRule(sample []string, votes map[string]float64) (string, bool) {
	dominant := dominates(votes, labelDecimal) || dominates(votes, labelStreetNum) ||
		dominates(votes, labelYear) || dominates(votes, labelPostalCode)
	if !dominant {
		return "", false
	}
	if fourDigitYearShare(sample) >= 0.8 {
		return labelYear, true
	}
	return "", false
}

func postalYearExclusionRule(sample []string, votes map[string]float64) (string, bool) {
	if !present(votes, labelPostalCode) {
		return "", false
	}
	if fourDigitYearShare(sample) >= 0.8 {
		return labelYear, true
	}
	return "", false
}

func fourDigitYearShare(sample []string) float64 {
	if len(sample) == 0 {
		return 0
	}
	matches := 0
	for _, v := range sample {
		t := trimSpace(v)
		if len(t) != 4 {
			continue
		}
		n, err := strconv.Atoi(t)
		if err != nil {
			continue
		}
		if n >= 1900 && n <= 2100 {
			matches++
		}
	}
	return float64(matches) / float64(len(sample))
}

func portDetectionRule(sample []string, votes map[string]float64) (string, bool) {
	numericDominant := dominates(votes, labelDecimal) || dominates(votes, labelStreetNum) ||
		dominates(votes, labelPort) || dominates(votes, labelPostalCode)
	if !numericDominant {
		return "", false
	}
	if len(sample) == 0 {
		return "", false
	}
	matches := 0
	for _, v := range sample {
		n, err := strconv.Atoi(trimSpace(v))
		if err != nil {
			continue
		}
		if wellKnownPorts[n] {
			matches++
		}
	}
	if float64(matches)/float64(len(sample)) >= 0.6 {
		return labelPort, true
	}
	return "", false
}

func sequentialIntegerRule(sample []string, votes map[string]float64) (string, bool) {
	var nums []int
	for _, v := range sample {
		n, err := strconv.Atoi(trimSpace(v))
		if err != nil {
			return "", false
		}
		nums = append(nums, n)
	}
	if len(nums) < 2 {
		return "", false
	}
	adjacent := 0
	for i := 1; i < len(nums); i++ {
		if nums[i] < nums[i-1] {
			return "", false
		}
		if nums[i]-nums[i-1] == 1 {
			adjacent++
		}
	}
	if float64(adjacent)/float64(len(nums)-1) >= 0.8 {
		return labelIncrement, true
	}
	return "", false
}

func streetNumberRule(sample []string, votes map[string]float64) (string, bool) {
	if present(votes, labelPort) || present(votes, labelPostalCode) {
		return "", false
	}
	for _, v := range sample {
		t := trimSpace(v)
		if len(t) < 1 || len(t) > 6 {
			return "", false
		}
		if _, err := strconv.Atoi(t); err != nil {
			return "", false
		}
	}
	return labelStreetNum, true
}

func postalCodeShapeRule(sample []string, votes map[string]float64) (string, bool) {
	if len(sample) == 0 {
		return "", false
	}
	length := len(trimSpace(sample[0]))
	for _, v := range sample {
		t := trimSpace(v)
		if len(t) != length {
			return "", false
		}
		n, err := strconv.Atoi(t)
		if err != nil {
			return "", false
		}
		if n < 100 || n > 99999 {
			return "", false
		}
		if n >= 1900 && n <= 2100 && length == 4 {
			return "", false
		}
	}
	return labelPostalCode, true
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return s[start:end]
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
