package taxonomy

// ValidationSchema is the JSON-Schema subset a TypeDefinition may carry.
// Only these keywords are supported; the registry rejects any other
// keyword found in a raw document at load time (spec.md §4.G).
type ValidationSchema struct {
	Type      string   `yaml:"type,omitempty" validate:"omitempty,oneof=string number boolean"`
	Pattern   string   `yaml:"pattern,omitempty"`
	MinLength *int     `yaml:"minLength,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty"`
	Minimum   *float64 `yaml:"minimum,omitempty"`
	Maximum   *float64 `yaml:"maximum,omitempty"`
	Enum      []string `yaml:"enum,omitempty"`
}

// TypeDefinition is the central taxonomy entity, addressed by a 3-part
// key "domain.category.type" (see the Key method, not stored inline).
type TypeDefinition struct {
	Domain      Domain      `yaml:"domain" validate:"required,oneof=datetime technology identity geography representation container"`
	Category    string      `yaml:"category" validate:"required"`
	Type        string      `yaml:"type" validate:"required"`
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Designation Designation `yaml:"designation" validate:"required,oneof=universal locale_specific broad_numbers broad_words broad_characters broad_object"`
	Locales     []Locale    `yaml:"locales" validate:"required,min=1"`
	BroadType   BroadType   `yaml:"broad_type" validate:"required"`

	FormatString string             `yaml:"format_string,omitempty"`
	Transform    *string            `yaml:"transform,omitempty"`
	TransformExt *string            `yaml:"transform_ext,omitempty"`
	Decompose    map[string]string  `yaml:"decompose,omitempty"`
	Validation   ValidationSchema   `yaml:"validation"`
	Tier         [2]string          `yaml:"tier"`
	ReleasePriority int             `yaml:"release_priority" validate:"min=1,max=5"`

	Aliases    []string `yaml:"aliases,omitempty"`
	Samples    []string `yaml:"samples,omitempty"`
	References []string `yaml:"references,omitempty"`
	Notes      string   `yaml:"notes,omitempty"`
}

// Key returns the 3-level "domain.category.type" label.
func (d *TypeDefinition) Key() string {
	return string(d.Domain) + "." + d.Category + "." + d.Type
}

// LocaleKey returns the 4-level "domain.category.type.LOCALE" label.
func (d *TypeDefinition) LocaleKey(locale Locale) string {
	return d.Key() + "." + string(locale)
}

// IsUniversal reports whether this definition's locales list is the
// single UNIVERSAL sentinel.
func (d *TypeDefinition) IsUniversal() bool {
	return len(d.Locales) == 1 && d.Locales[0] == LocaleUniversal
}

// HasLocale reports whether locale is declared for this definition.
func (d *TypeDefinition) HasLocale(locale Locale) bool {
	for _, l := range d.Locales {
		if l == locale {
			return true
		}
	}
	return false
}
