package taxonomy

import (
	"strconv"
	"sync"

	"github.com/dlclark/regexp2"
)

// compiledPattern caches the regexp2 compilation for a schema's pattern
// so ValidateValue never recompiles on the hot path.
var (
	compiledMu sync.RWMutex
	compiled   = map[*ValidationSchema]*regexp2.Regexp{}
)

// compileSchema rejects an invalid regex at load time, per spec.md
// §4.A ("surfaces invalid regexes as load errors"), and caches the
// compiled matcher keyed by the schema's own address.
func compileSchema(schema *ValidationSchema, location string) error {
	if schema.Pattern == "" {
		return nil
	}
	re, err := regexp2.Compile(schema.Pattern, regexp2.ECMAScript)
	if err != nil {
		return newError(KindParse, location, "invalid validation.pattern regex", err)
	}
	compiledMu.Lock()
	compiled[schema] = re
	compiledMu.Unlock()
	return nil
}

func patternFor(schema *ValidationSchema) *regexp2.Regexp {
	compiledMu.RLock()
	defer compiledMu.RUnlock()
	return compiled[schema]
}

// ValidationResult is the outcome of validating a single value against
// a schema: every failing keyword is recorded, never short-circuited.
type ValidationResult struct {
	IsValid  bool
	ChecksRun []string
	Errors   []string
}

// ValidateValue checks value against every supported keyword in schema
// (type, pattern, minLength, maxLength, minimum, maximum, enum). It
// never short-circuits: all applicable checks run and all failures are
// recorded, so aggregate error-pattern statistics are informative.
func ValidateValue(value string, schema *ValidationSchema) ValidationResult {
	result := ValidationResult{IsValid: true}

	if schema.Type != "" {
		result.ChecksRun = append(result.ChecksRun, "type")
		if !matchesType(value, schema.Type) {
			result.IsValid = false
			result.Errors = append(result.Errors, "type")
		}
	}

	if schema.Pattern != "" {
		result.ChecksRun = append(result.ChecksRun, "pattern")
		re := patternFor(schema)
		if re == nil {
			var err error
			re, err = regexp2.Compile(schema.Pattern, regexp2.ECMAScript)
			if err != nil {
				result.IsValid = false
				result.Errors = append(result.Errors, "pattern")
				re = nil
			}
		}
		if re != nil {
			ok, err := re.MatchString(value)
			if err != nil || !ok {
				result.IsValid = false
				result.Errors = append(result.Errors, "pattern")
			}
		}
	}

	if schema.MinLength != nil {
		result.ChecksRun = append(result.ChecksRun, "minLength")
		if len([]rune(value)) < *schema.MinLength {
			result.IsValid = false
			result.Errors = append(result.Errors, "minLength")
		}
	}

	if schema.MaxLength != nil {
		result.ChecksRun = append(result.ChecksRun, "maxLength")
		if len([]rune(value)) > *schema.MaxLength {
			result.IsValid = false
			result.Errors = append(result.Errors, "maxLength")
		}
	}

	if schema.Minimum != nil {
		result.ChecksRun = append(result.ChecksRun, "minimum")
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n < *schema.Minimum {
			result.IsValid = false
			result.Errors = append(result.Errors, "minimum")
		}
	}

	if schema.Maximum != nil {
		result.ChecksRun = append(result.ChecksRun, "maximum")
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n > *schema.Maximum {
			result.IsValid = false
			result.Errors = append(result.Errors, "maximum")
		}
	}

	if len(schema.Enum) > 0 {
		result.ChecksRun = append(result.ChecksRun, "enum")
		found := false
		for _, e := range schema.Enum {
			if e == value {
				found = true
				break
			}
		}
		if !found {
			result.IsValid = false
			result.Errors = append(result.Errors, "enum")
		}
	}

	return result
}

func matchesType(value, typ string) bool {
	switch typ {
	case "string":
		return true
	case "number":
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	case "boolean":
		return value == "true" || value == "false"
	default:
		return true
	}
}
