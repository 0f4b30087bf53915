package taxonomy

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a single taxonomy file: a mapping
// from the 3-level key to its definition fields. The key itself is
// split into Domain/Category/Type at load time.
type document struct {
	Types map[string]*rawDefinition `yaml:"types"`
}

// rawDefinition mirrors TypeDefinition but without Domain/Category/Type,
// which come from the map key, and without post-load-derived fields.
type rawDefinition struct {
	Title           string            `yaml:"title"`
	Description     string            `yaml:"description"`
	Designation     Designation       `yaml:"designation"`
	Locales         []Locale          `yaml:"locales"`
	BroadType       BroadType         `yaml:"broad_type"`
	FormatString    string            `yaml:"format_string,omitempty"`
	Transform       *string           `yaml:"transform,omitempty"`
	TransformExt    *string           `yaml:"transform_ext,omitempty"`
	Decompose       map[string]string `yaml:"decompose,omitempty"`
	Validation      ValidationSchema  `yaml:"validation"`
	Tier            [2]string         `yaml:"tier"`
	ReleasePriority int               `yaml:"release_priority"`
	Aliases         []string          `yaml:"aliases,omitempty"`
	Samples         []string          `yaml:"samples,omitempty"`
	References      []string          `yaml:"references,omitempty"`
	Notes           string            `yaml:"notes,omitempty"`
}

var structValidator = validator.New()

// loadDocuments reads path (a single YAML file or a directory of them)
// and returns the flattened, key-indexed set of definitions it
// declares. It does not cross-check uniqueness across documents; the
// caller (Load) owns that.
func loadDocuments(path string) ([]*TypeDefinition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newError(KindIo, path, "cannot stat taxonomy path", err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, newError(KindIo, path, "cannot read taxonomy directory", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
				files = append(files, filepath.Join(path, name))
			}
		}
		sort.Strings(files)
	} else {
		files = []string{path}
	}

	var defs []*TypeDefinition
	for _, f := range files {
		parsed, err := parseDocument(f)
		if err != nil {
			return nil, err
		}
		defs = append(defs, parsed...)
	}
	return defs, nil
}

func parseDocument(path string) ([]*TypeDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, newError(KindIo, path, "cannot read taxonomy document", err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, newError(KindParse, path, "cannot parse taxonomy document", err)
	}

	var probe struct {
		Types map[string]struct {
			Validation map[string]interface{} `yaml:"validation"`
		} `yaml:"types"`
	}
	_ = yaml.Unmarshal(raw, &probe)
	for fullKey, t := range probe.Types {
		for kw := range t.Validation {
			switch kw {
			case "type", "pattern", "minLength", "maxLength", "minimum", "maximum", "enum":
			default:
				return nil, newError(KindSchema, path+"#"+fullKey, fmt.Sprintf("unsupported validation keyword %q", kw), nil)
			}
		}
	}

	keys := make([]string, 0, len(doc.Types))
	for k := range doc.Types {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	defs := make([]*TypeDefinition, 0, len(keys))
	for _, fullKey := range keys {
		r := doc.Types[fullKey]
		parts := strings.Split(fullKey, ".")
		if len(parts) != 3 {
			return nil, newError(KindParse, path+"#"+fullKey,
				fmt.Sprintf("type key %q must have exactly 3 dot-separated segments", fullKey), nil)
		}

		def := &TypeDefinition{
			Domain:          Domain(parts[0]),
			Category:        parts[1],
			Type:            parts[2],
			Title:           r.Title,
			Description:     r.Description,
			Designation:     r.Designation,
			Locales:         r.Locales,
			BroadType:       r.BroadType,
			FormatString:    r.FormatString,
			Transform:       r.Transform,
			TransformExt:    r.TransformExt,
			Decompose:       r.Decompose,
			Validation:      r.Validation,
			Tier:            r.Tier,
			ReleasePriority: r.ReleasePriority,
			Aliases:         r.Aliases,
			Samples:         r.Samples,
			References:      r.References,
			Notes:           r.Notes,
		}

		if err := validateDefinition(def, path); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// validateDefinition runs struct-tag validation for the closed enums
// plus the schema/regex/transform checks spec.md §4.A requires at load
// time that a struct tag alone cannot express.
func validateDefinition(def *TypeDefinition, location string) error {
	if err := structValidator.Struct(def); err != nil {
		return newError(KindSchema, def.Key(), "type definition fails schema validation", err)
	}
	if !validDomains[def.Domain] {
		return newError(KindSchema, def.Key(), fmt.Sprintf("unknown domain %q", def.Domain), nil)
	}
	if !validBroadTypes[def.BroadType] {
		return newError(KindSchema, def.Key(), fmt.Sprintf("unknown broad_type %q", def.BroadType), nil)
	}
	for _, loc := range def.Locales {
		if loc == LocaleUniversal {
			if len(def.Locales) != 1 {
				return newError(KindSchema, def.Key(), "UNIVERSAL locale must be the sole entry in locales", nil)
			}
			continue
		}
		if !RecognizedLocales[loc] {
			return newError(KindSchema, def.Key(), fmt.Sprintf("unknown locale %q", loc), nil)
		}
	}
	if def.TransformExt != nil && !validExtensions[Extension(*def.TransformExt)] {
		return newError(KindSchema, def.Key(), fmt.Sprintf("unknown transform_ext %q", *def.TransformExt), nil)
	}
	if err := checkTransformSyntax(def); err != nil {
		return err
	}
	if err := compileSchema(&def.Validation, def.Key()); err != nil {
		return err
	}
	for _, sample := range def.Samples {
		result := ValidateValue(sample, &def.Validation)
		if !result.IsValid {
			return newError(KindSchema, def.Key(),
				fmt.Sprintf("sample %q fails its own validation schema: %v", sample, result.Errors), nil)
		}
	}
	return nil
}

// checkTransformSyntax verifies balanced quotes and brace matching in
// a transform template without executing the SQL it describes.
func checkTransformSyntax(def *TypeDefinition) error {
	for _, tmpl := range []*string{def.Transform, def.TransformExt} {
		if tmpl == nil {
			continue
		}
		s := *tmpl
		if strings.Count(s, "'")%2 != 0 {
			return newError(KindSchema, def.Key(), "transform template has unbalanced quotes", nil)
		}
		depth := 0
		for _, r := range s {
			switch r {
			case '{':
				depth++
			case '}':
				depth--
				if depth < 0 {
					return newError(KindSchema, def.Key(), "transform template has unmatched closing brace", nil)
				}
			}
		}
		if depth != 0 {
			return newError(KindSchema, def.Key(), "transform template has unmatched opening brace", nil)
		}
	}
	return nil
}
