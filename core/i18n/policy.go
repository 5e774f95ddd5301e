package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/resolve"
)

// maxAcceptLanguageLength bounds the parsed part of an Accept-Language header.
const maxAcceptLanguageLength = 4096

type languageTag struct {
	tag     string
	quality float64
}

type ranked struct {
	culture string
	quality float64
	exact   bool
}

// AcceptedLanguages returns the entries of available accepted by an
// Accept-Language header, best first. Higher quality wins, an exact match
// beats a base-language match of the same quality, and remaining ties keep
// the order of available.
func AcceptedLanguages(header string, available []string) []string {
	tags := parseLanguageTags(header)

	var matches []ranked
	for _, avail := range available {
		norm := normalizeLanguageTag(avail)
		best, found := ranked{culture: avail}, false
		for _, tag := range tags {
			exact := tag.tag == norm
			if !exact && !matchesLanguage(tag.tag, norm) {
				continue
			}
			if !found || tag.quality > best.quality || (tag.quality == best.quality && exact && !best.exact) {
				best.quality, best.exact, found = tag.quality, exact, true
			}
		}
		if found {
			matches = append(matches, best)
		}
	}

	slices.SortStableFunc(matches, func(a, b ranked) int {
		if c := cmp.Compare(b.quality, a.quality); c != 0 {
			return c
		}
		switch {
		case a.exact == b.exact:
			return 0
		case a.exact:
			return -1
		default:
			return 1
		}
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.culture
	}
	return out
}

// ParseAcceptLanguage returns the most applicable language from available
// for an Accept-Language header, or the first available language when
// nothing matches.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if accepted := AcceptedLanguages(header, available); len(accepted) > 0 {
		return accepted[0]
	}
	return available[0]
}

// AcceptLanguage returns a culture policy for a request: the accepted
// languages best first, followed by fallback and the invariant culture.
func AcceptLanguage(header string, available []string, fallback string) line.CulturePolicy {
	return Fallback("", append(AcceptedLanguages(header, available), fallback)...)
}

// Fallback returns a culture policy trying lang, its parent cultures, then
// each default with its parents, and finally the invariant culture.
// Empty entries and duplicates are skipped.
func Fallback(lang string, defaults ...string) line.CulturePolicy {
	var (
		out  line.CultureList
		seen = make(map[string]bool)
	)
	add := func(c string) {
		if c != "" && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, c := range append([]string{lang}, defaults...) {
		add(c)
		for _, p := range resolve.Parents(c) {
			add(p)
		}
	}
	return append(out, "")
}

func parseLanguageTags(header string) []languageTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag
	for part := range strings.SplitSeq(header, ",") {
		langPart, params, _ := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)
		if langPart == "" || langPart == "*" {
			continue
		}

		quality := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(q, 64); err == nil && v >= 0 && v <= 1 {
				quality = v
			}
		}
		tags = append(tags, languageTag{tag: normalizeLanguageTag(langPart), quality: quality})
	}

	slices.SortStableFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})
	return tags
}

func normalizeLanguageTag(tag string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "_", "-")
}

// matchesLanguage reports whether two normalized tags share a base language.
func matchesLanguage(requested, available string) bool {
	reqBase, _, _ := strings.Cut(requested, "-")
	availBase, _, _ := strings.Cut(available, "-")
	return reqBase == availBase
}
