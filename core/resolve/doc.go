// Package resolve implements the resolution pipeline: it turns a key chain
// into a culture qualified, pluralized and formatted string.
//
// A resolution is a single deterministic pass:
//
//  1. The asset is the nearest Asset part of the key, or the resolver's.
//  2. Cultures to try are the key's explicit culture followed by its
//     truncation parents ("en-GB", then "en"), or the culture policy list
//     when the key has no culture.
//  3. For each culture the inlines of the key are consulted, then the
//     asset. The culture agnostic key is tried last, and a format string
//     carried by the key itself is the default of last resort.
//  4. A format string declaring plural placeholders ({cardinal:0}) selects
//     a plural form: a line keyed by the match plus "N:<Case>".
//  5. Format arguments are rendered through the FormatProvider.
//
// Nothing in the pipeline returns an error. Every outcome is a line.String
// whose Status records the code of each stage:
//
//	r := resolve.New(resolve.WithCultures("en-GB", "en", ""))
//	s := r.Resolve(key)
//	switch {
//	case s.Ok():
//		// exact or policy culture match
//	case s.Failed():
//		// s.Value is a placeholder such as "[ResolveFailedNoResult|CultureWarningNoMatch] Section:Greeting"
//	default:
//		// usable but degraded
//	}
//
// Resolve additionally tries every Resolver part of the chain and reports the
// outcome to the chain's Logger parts; observers and resolvers that panic are
// recovered and logged.
package resolve
