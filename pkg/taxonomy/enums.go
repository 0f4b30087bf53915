package taxonomy

// Domain is one of the six closed top-level groupings a TypeDefinition
// key's first segment must be drawn from.
type Domain string

const (
	DomainDatetime       Domain = "datetime"
	DomainTechnology     Domain = "technology"
	DomainIdentity       Domain = "identity"
	DomainGeography      Domain = "geography"
	DomainRepresentation Domain = "representation"
	DomainContainer      Domain = "container"
)

var validDomains = map[Domain]bool{
	DomainDatetime: true, DomainTechnology: true, DomainIdentity: true,
	DomainGeography: true, DomainRepresentation: true, DomainContainer: true,
}

// Designation describes how broadly a type applies across locales.
type Designation string

const (
	DesignationUniversal      Designation = "universal"
	DesignationLocaleSpecific Designation = "locale_specific"
	DesignationBroadNumbers   Designation = "broad_numbers"
	DesignationBroadWords     Designation = "broad_words"
	DesignationBroadChars     Designation = "broad_characters"
	DesignationBroadObject    Designation = "broad_object"
)

var validDesignations = map[Designation]bool{
	DesignationUniversal: true, DesignationLocaleSpecific: true,
	DesignationBroadNumbers: true, DesignationBroadWords: true,
	DesignationBroadChars: true, DesignationBroadObject: true,
}

// BroadType is the DuckDB-level type family a definition's transform
// ultimately casts into.
type BroadType string

const (
	BroadTimestamp BroadType = "TIMESTAMP"
	BroadDate      BroadType = "DATE"
	BroadTime      BroadType = "TIME"
	BroadInterval  BroadType = "INTERVAL"
	BroadBigint    BroadType = "BIGINT"
	BroadSmallint  BroadType = "SMALLINT"
	BroadTinyint   BroadType = "TINYINT"
	BroadDouble    BroadType = "DOUBLE"
	BroadBoolean   BroadType = "BOOLEAN"
	BroadVarchar   BroadType = "VARCHAR"
	BroadUUID      BroadType = "UUID"
	BroadInet      BroadType = "INET"
	BroadJSON      BroadType = "JSON"
	BroadGeometry  BroadType = "GEOMETRY"
	BroadMonetary  BroadType = "MONETARY"
)

var validBroadTypes = map[BroadType]bool{
	BroadTimestamp: true, BroadDate: true, BroadTime: true, BroadInterval: true,
	BroadBigint: true, BroadSmallint: true, BroadTinyint: true, BroadDouble: true,
	BroadBoolean: true, BroadVarchar: true, BroadUUID: true, BroadInet: true,
	BroadJSON: true, BroadGeometry: true, BroadMonetary: true,
}

// Locale is one of the sixteen recognized region-language tags, or the
// sentinel UNIVERSAL used by locale-independent types.
type Locale string

const (
	LocaleUniversal Locale = "UNIVERSAL"
	LocaleEN        Locale = "EN"
	LocaleENAU      Locale = "EN_AU"
	LocaleENGB      Locale = "EN_GB"
	LocaleENCA      Locale = "EN_CA"
	LocaleENUS      Locale = "EN_US"
	LocaleDE        Locale = "DE"
	LocaleFR        Locale = "FR"
	LocaleES        Locale = "ES"
	LocaleIT        Locale = "IT"
	LocaleNL        Locale = "NL"
	LocalePL        Locale = "PL"
	LocaleRU        Locale = "RU"
	LocaleJA        Locale = "JA"
	LocaleZH        Locale = "ZH"
	LocaleKO        Locale = "KO"
	LocaleAR        Locale = "AR"
)

// RecognizedLocales excludes the UNIVERSAL sentinel, which is valid only
// as the sole entry of a universal type's locales list.
var RecognizedLocales = map[Locale]bool{
	LocaleEN: true, LocaleENAU: true, LocaleENGB: true, LocaleENCA: true, LocaleENUS: true,
	LocaleDE: true, LocaleFR: true, LocaleES: true, LocaleIT: true, LocaleNL: true,
	LocalePL: true, LocaleRU: true, LocaleJA: true, LocaleZH: true, LocaleKO: true, LocaleAR: true,
}

// Extension is the closed set of named DuckDB extensions a transform_ext
// may require.
type Extension string

const (
	ExtInet     Extension = "inet"
	ExtJSON     Extension = "json"
	ExtSpatial  Extension = "spatial"
	ExtICU      Extension = "icu"
	ExtMonetary Extension = "monetary"
	ExtNetquack Extension = "netquack"
)

var validExtensions = map[Extension]bool{
	ExtInet: true, ExtJSON: true, ExtSpatial: true, ExtICU: true, ExtMonetary: true, ExtNetquack: true,
}
