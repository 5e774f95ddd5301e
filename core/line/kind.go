package line

// Kind tags the payload a Part carries. The set is closed.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindRoot
	KindParameter       // generic name/value, role decided by the Classification
	KindCanonicalKey    // identity relevant, position sensitive
	KindNonCanonicalKey // identity relevant, position insensitive, root-most wins
	KindHint            // excluded from identity
	KindParameters      // enumerable batch of Parameter-kind entries
	KindCulture         // "Culture" non-canonical key
	KindTypeRef         // "Type" non-canonical key with a reflect.Type
	KindModule          // "Module" non-canonical key
	KindValue           // format string carried by the key itself
	KindResource        // binary payload carried by the key itself
	KindFormatArgs
	KindCulturePolicy
	KindAsset
	KindResolver
	KindFormatProvider
	KindFunctions
	KindLogger
	KindInlines
	KindAppender
)

var kindNames = [...]string{
	KindInvalid:         "Invalid",
	KindRoot:            "Root",
	KindParameter:       "Parameter",
	KindCanonicalKey:    "CanonicalKey",
	KindNonCanonicalKey: "NonCanonicalKey",
	KindHint:            "Hint",
	KindParameters:      "Parameters",
	KindCulture:         "Culture",
	KindTypeRef:         "TypeRef",
	KindModule:          "Module",
	KindValue:           "Value",
	KindResource:        "Resource",
	KindFormatArgs:      "FormatArgs",
	KindCulturePolicy:   "CulturePolicy",
	KindAsset:           "Asset",
	KindResolver:        "Resolver",
	KindFormatProvider:  "FormatProvider",
	KindFunctions:       "Functions",
	KindLogger:          "Logger",
	KindInlines:         "Inlines",
	KindAppender:        "Appender",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindAppender
}

// HasParameter reports whether a part of this kind carries exactly one parameter.
func (k Kind) HasParameter() bool {
	switch k {
	case KindParameter, KindCanonicalKey, KindNonCanonicalKey, KindHint,
		KindCulture, KindTypeRef, KindModule:
		return true
	}
	return false
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name && Kind(k).Valid() {
			return Kind(k), true
		}
	}
	return KindInvalid, false
}
