package i18n

import (
	"golang.org/x/text/language"
)

const (
	KO = "ko"
	EN = "en"
)

var supported = []string{KO, EN}

// Negotiator picks a response language from an Accept-Language header.
type Negotiator struct {
	matcher  language.Matcher
	fallback string
}

func NewNegotiator(fallback string) *Negotiator {
	if !IsSupported(fallback) {
		fallback = KO
	}
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.Make(s))
	}
	return &Negotiator{
		matcher:  language.NewMatcher(tags),
		fallback: fallback,
	}
}

func (n *Negotiator) Fallback() string {
	return n.fallback
}

// Negotiate returns the best supported language, or the fallback when the
// header is empty, malformed or names nothing we support.
func (n *Negotiator) Negotiate(header string) string {
	if header == "" {
		return n.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return n.fallback
	}
	_, idx, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return n.fallback
	}
	return supported[idx]
}

func IsSupported(lang string) bool {
	for _, s := range supported {
		if s == lang {
			return true
		}
	}
	return false
}
