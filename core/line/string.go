package line

// String is the outcome of resolving a key: the formatted text plus the
// status of every resolution stage. It is a value and safe to copy.
type String struct {
	// Key is the requested key.
	Key *Part
	// Line is the line the format string was taken from, nil when none matched.
	Line *Part
	// Culture is the culture the match was made in, "" for culture agnostic.
	Culture string
	// Format is the unformatted string that produced Value.
	Format string
	// Value is the formatted text. For failed resolutions it is a diagnostic
	// placeholder built from the status and the key.
	Value  string
	Status Status
}

// String returns the formatted text.
func (s String) String() string {
	return s.Value
}

// Severity returns the worst severity recorded on the result.
func (s String) Severity() Severity {
	return s.Status.Severity()
}

// Ok reports whether every stage succeeded.
func (s String) Ok() bool {
	return s.Status.Ok()
}

// Degraded reports whether the value is usable but some stage fell back.
func (s String) Degraded() bool {
	sev := s.Severity()
	return sev == SeverityWarning || sev == SeverityError
}

// Failed reports whether no usable value was produced.
func (s String) Failed() bool {
	return s.Severity() == SeverityFailed
}

// FailedString builds the placeholder result returned when nothing could be
// resolved for key.
func FailedString(key *Part, status Status) String {
	return String{
		Key:    key,
		Value:  "[" + status.String() + "] " + key.String(),
		Status: status,
	}
}
