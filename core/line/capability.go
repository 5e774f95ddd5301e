package line

// Asset looks up raw lines by key. The returned line carries the value part
// (KindValue or KindResource) of the matching entry.
// Implementations are called synchronously from resolution.
type Asset interface {
	GetLine(key *Part) (*Part, bool)
}

// StringResolver turns a key into a formatted string.
// Failures are reported through the Status of the result, never by panicking.
type StringResolver interface {
	ResolveString(key *Part) String
}

// CulturePolicy supplies the ordered culture fallback list used when the key
// carries no explicit culture.
type CulturePolicy interface {
	Cultures() []string
}

// FormatProvider renders a single format argument for a culture.
// It returns false when it does not handle the argument or format.
type FormatProvider interface {
	Format(culture, format string, arg any) (string, bool)
}

// Plural case names used as values of the N parameters.
const (
	CaseZero  = "Zero"
	CaseOne   = "One"
	CaseTwo   = "Two"
	CaseFew   = "Few"
	CaseMany  = "Many"
	CaseOther = "Other"
)

// PluralCase is one candidate plural form for a number.
// Optional cases may be missing from an asset without degrading the result.
type PluralCase struct {
	Name     string
	Optional bool
}

// Functions is the plurality rule table.
type Functions interface {
	// PluralCases returns the cases n belongs to in culture for the given
	// category ("cardinal", "ordinal"), most specific first.
	// It returns false when the category is not known.
	PluralCases(culture, category string, n float64) ([]PluralCase, bool)
}

// Observer receives the outcome of every resolution performed on a chain
// carrying it. Implementations must not block.
type Observer interface {
	Observe(key *Part, result String)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(key *Part, result String)

// Observe implements Observer.
func (f ObserverFunc) Observe(key *Part, result String) {
	f(key, result)
}

// AssetFunc adapts a function to Asset.
type AssetFunc func(key *Part) (*Part, bool)

// GetLine implements Asset.
func (f AssetFunc) GetLine(key *Part) (*Part, bool) {
	return f(key)
}

// CultureList is a fixed CulturePolicy.
type CultureList []string

// Cultures implements CulturePolicy.
func (c CultureList) Cultures() []string {
	return c
}
