// Package line implements the line model: immutable, structurally shared
// key chains whose parameters carry comparison roles.
//
// A chain is referenced by its tail *Part and is read by walking toward the
// root. Parts are never modified, so chains built on a common prefix share
// it and may be used from many goroutines without locking. The only way to
// create a part is through an Appender reachable from the chain, normally
// the one carried by the root.
//
// # Building keys
//
//	root := line.NewRoot()
//	key := root.Section("app").Key("welcome").Culture("en")
//
// The fluent methods panic with *AppendError on programmer errors such as a
// chain without a reachable appender. Use Append to receive the error:
//
//	key, err := line.Append(root, line.KindCanonicalKey, line.Args{Name: "Key", Value: "welcome"})
//
// Key text renders the parameters as "Name:Value" pairs:
//
//	key, err := line.ParseKey(root, "Section:app:Key:welcome")
//
// # Roles
//
// Every parameter is a canonical key, a non-canonical key, a hint or
// unclassified. Dedicated kinds declare their role; generic parameters are
// classified by a Classification, DefaultTable unless overridden with
// WithClassification or WithRoles.
//
// Canonical keys are position sensitive: the sequence root to tail, with
// duplicates, is part of identity. Non-canonical keys are position
// insensitive and only the occurrence closest to the root counts:
//
//	key := root.Culture("en").Key("a").Culture("fi")
//	v, _ := line.EffectiveValue(key, line.ParamCulture, line.DefaultTable())
//	// v == "en"
//
// Hints never take part in identity.
//
// # Comparison
//
// Comparer implements Equal and Hash over that identity and can be limited
// with a Qualifier. Fingerprint renders the identity as stable text for use
// as a storage key.
//
// # Inlines
//
// A chain can carry an Inlines part mapping sub keys to override lines.
// Inline attaches one when none is reachable:
//
//	key, _ = line.InlineText(root.Section("app"), "Key:hello", "Hi")
//
// During resolution the inlines closest to the tail are consulted first, the
// opposite direction of non-canonical shadowing.
//
// # Resolution results
//
// String is the outcome of a resolution. Its Status packs one code per stage
// (resolve, culture, plurality, placeholder, format); the worst severity
// tells callers whether the value is exact, degraded or missing.
package line
