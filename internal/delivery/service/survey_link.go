package service

import (
	"net/url"
	"strings"
)

// SurveyLinkResolver builds per-participant survey URLs.
type SurveyLinkResolver struct {
	baseURL string
}

// NewSurveyLinkResolver creates a resolver for baseURL.
func NewSurveyLinkResolver(baseURL string) *SurveyLinkResolver {
	return &SurveyLinkResolver{baseURL: baseURL}
}

// URL returns baseURL with the participant hash as the "s" query parameter.
func (r *SurveyLinkResolver) URL(participantHash string) string {
	u, err := url.Parse(r.baseURL)
	if err != nil {
		sep := "?"
		if strings.Contains(r.baseURL, "?") {
			sep = "&"
		}
		return r.baseURL + sep + "s=" + url.QueryEscape(participantHash)
	}

	query := u.Query()
	query.Set("s", participantHash)
	u.RawQuery = query.Encode()
	return u.String()
}
