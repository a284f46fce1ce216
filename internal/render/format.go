package render

import (
	"net/url"
	"strings"
	"time"

	"resume-builder/internal/model"

	"golang.org/x/net/publicsuffix"
)

// paragraphMarker is the literal two-character sequence stored in multi-line
// description fields. Splitting keeps every segment, including empty ones.
const paragraphMarker = `\n`

// FormatDate renders an ISO-like "YYYY-MM" string as "Mon YYYY"
// (e.g. "Jan 2022"). Empty input renders empty; anything unparseable is
// passed through unchanged.
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2006")
}

// Paragraphs splits a description into paragraph segments on the literal
// newline marker. No trimming, no filtering of blank segments.
func Paragraphs(s string) []string {
	return strings.Split(s, paragraphMarker)
}

// GroupSkills groups skills by category, defaulting an absent category to
// "Other" at display time. Group order is first-seen order of each category,
// not alphabetical.
func GroupSkills(skills []model.Skill) []SkillGroup {
	idx := make(map[string]int, len(skills))
	var groups []SkillGroup
	for _, sk := range skills {
		cat := sk.Category
		if cat == "" {
			cat = "Other"
		}
		i, ok := idx[cat]
		if !ok {
			i = len(groups)
			idx[cat] = i
			groups = append(groups, SkillGroup{Category: cat})
		}
		groups[i].Skills = append(groups[i].Skills, SkillItem{Name: sk.Name, Level: string(sk.Level)})
	}
	for i := range groups {
		parts := make([]string, 0, len(groups[i].Skills))
		for _, sk := range groups[i].Skills {
			parts = append(parts, sk.Name+" ("+sk.Level+")")
		}
		groups[i].Inline = strings.Join(parts, ", ")
	}
	return groups
}

// LinkLabel derives a compact display label for a URL: eTLD+1 without the
// www prefix when the host parses, otherwise the input unchanged.
func LinkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// dateRange renders "start sep end" where current overrides the end with
// the literal Present token.
func dateRange(start, end string, current bool, sep string) string {
	endTxt := FormatDate(end)
	if current {
		endTxt = "Present"
	}
	return FormatDate(start) + sep + endTxt
}

// projectDateRange is like dateRange but an open-ended project reads
// "Ongoing" instead.
func projectDateRange(start, end, sep string) string {
	endTxt := "Ongoing"
	if end != "" {
		endTxt = FormatDate(end)
	}
	return FormatDate(start) + sep + endTxt
}
