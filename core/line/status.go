package line

import "strings"

// Severity grades how completely a resolution stage succeeded.
type Severity uint8

const (
	SeverityOk Severity = iota
	SeverityWarning
	SeverityError
	SeverityFailed
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityOk:
		return "Ok"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return "Failed"
	}
}

// Status is a set of per-stage outcome codes packed into 4-bit sections.
// Within a section the upper two bits hold the Severity, the lower two a detail.
// A zero section means the stage did not run.
type Status uint32

// Section identifies a resolution stage within a Status.
type Section uint8

const (
	SectionResolve Section = iota
	SectionCulture
	SectionPlurality
	SectionPlaceholder
	SectionFormat
	sectionCount
)

const sectionBits = 4

// Resolve stage codes.
const (
	ResolveOk             Status = (0<<2 | 1) << (0 * sectionBits)
	ResolveOkFromInline   Status = (0<<2 | 2) << (0 * sectionBits)
	ResolveOkFromKey      Status = (0<<2 | 3) << (0 * sectionBits)
	ResolveFailedNoResult Status = (3<<2 | 0) << (0 * sectionBits)
	ResolveFailedNoValue  Status = (3<<2 | 1) << (0 * sectionBits)
)

// Culture stage codes.
const (
	CultureOkRequested     Status = (0<<2 | 1) << (1 * sectionBits)
	CultureOkPolicy        Status = (0<<2 | 2) << (1 * sectionBits)
	CultureOkNone          Status = (0<<2 | 3) << (1 * sectionBits)
	CultureWarningFallback Status = (1<<2 | 0) << (1 * sectionBits)
	CultureWarningNoMatch  Status = (1<<2 | 1) << (1 * sectionBits)
	CultureErrorInvalid    Status = (2<<2 | 0) << (1 * sectionBits)
)

// Plurality stage codes.
const (
	PluralityOkNotUsed          Status = (0<<2 | 1) << (2 * sectionBits)
	PluralityOkMatched          Status = (0<<2 | 2) << (2 * sectionBits)
	PluralityWarningDefault     Status = (1<<2 | 0) << (2 * sectionBits)
	PluralityErrorRulesNotFound Status = (2<<2 | 0) << (2 * sectionBits)
	PluralityErrorNotNumber     Status = (2<<2 | 1) << (2 * sectionBits)
)

// Placeholder stage codes.
const (
	PlaceholderOk                   Status = (0<<2 | 1) << (3 * sectionBits)
	PlaceholderOkNotUsed            Status = (0<<2 | 2) << (3 * sectionBits)
	PlaceholderWarningFallback      Status = (1<<2 | 0) << (3 * sectionBits)
	PlaceholderErrorArgumentMissing Status = (2<<2 | 0) << (3 * sectionBits)
)

// Format stage codes.
const (
	FormatOk             Status = (0<<2 | 1) << (4 * sectionBits)
	FormatErrorMalformed Status = (2<<2 | 0) << (4 * sectionBits)
)

var statusNames = map[Status]string{
	ResolveOk:             "ResolveOk",
	ResolveOkFromInline:   "ResolveOkFromInline",
	ResolveOkFromKey:      "ResolveOkFromKey",
	ResolveFailedNoResult: "ResolveFailedNoResult",
	ResolveFailedNoValue:  "ResolveFailedNoValue",

	CultureOkRequested:     "CultureOkRequested",
	CultureOkPolicy:        "CultureOkPolicy",
	CultureOkNone:          "CultureOkNone",
	CultureWarningFallback: "CultureWarningFallback",
	CultureWarningNoMatch:  "CultureWarningNoMatch",
	CultureErrorInvalid:    "CultureErrorInvalid",

	PluralityOkNotUsed:          "PluralityOkNotUsed",
	PluralityOkMatched:          "PluralityOkMatched",
	PluralityWarningDefault:     "PluralityWarningDefault",
	PluralityErrorRulesNotFound: "PluralityErrorRulesNotFound",
	PluralityErrorNotNumber:     "PluralityErrorNotNumber",

	PlaceholderOk:                   "PlaceholderOk",
	PlaceholderOkNotUsed:            "PlaceholderOkNotUsed",
	PlaceholderWarningFallback:      "PlaceholderWarningFallback",
	PlaceholderErrorArgumentMissing: "PlaceholderErrorArgumentMissing",

	FormatOk:             "FormatOk",
	FormatErrorMalformed: "FormatErrorMalformed",
}

func (s Status) nibble(sec Section) uint32 {
	return uint32(s) >> (uint32(sec) * sectionBits) & 0xF
}

// Get returns the code recorded for a section, or zero.
func (s Status) Get(sec Section) Status {
	return Status(s.nibble(sec) << (uint32(sec) * sectionBits))
}

// With returns s with every section set in c replaced by c's code.
func (s Status) With(c Status) Status {
	for sec := range sectionCount {
		if n := c.nibble(sec); n != 0 {
			shift := uint32(sec) * sectionBits
			s = Status(uint32(s)&^(0xF<<shift) | n<<shift)
		}
	}
	return s
}

// Severity returns the worst severity across all sections.
func (s Status) Severity() Severity {
	var worst Severity
	for sec := range sectionCount {
		if sev := Severity(s.nibble(sec) >> 2); sev > worst {
			worst = sev
		}
	}
	return worst
}

// Ok reports whether no section is worse than SeverityOk.
func (s Status) Ok() bool {
	return s.Severity() == SeverityOk
}

// String lists the recorded section codes, e.g. "ResolveOk|CultureOkPolicy".
func (s Status) String() string {
	if s == 0 {
		return "None"
	}
	names := make([]string, 0, sectionCount)
	for sec := range sectionCount {
		c := s.Get(sec)
		if c == 0 {
			continue
		}
		if name, ok := statusNames[c]; ok {
			names = append(names, name)
		} else {
			names = append(names, "Unknown")
		}
	}
	return strings.Join(names, "|")
}

// Worst returns the name of the most severe recorded code, "None" when empty.
func (s Status) Worst() string {
	name := "None"
	best := -1
	for sec := range sectionCount {
		n := s.nibble(sec)
		if n == 0 {
			continue
		}
		if sev := int(n >> 2); sev > best {
			best = sev
			name = statusNames[s.Get(sec)]
		}
	}
	return name
}
