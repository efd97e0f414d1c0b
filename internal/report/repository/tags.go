package repository

import (
	"sort"
	"strings"
)

// diseaseKeywords maps an analytics tag to the substrings that set it.
// Tags are applied to the summary text blob, never to raw report text.
var diseaseKeywords = map[string][]string{
	"oncology":     {"tumor", "mass", "neoplasm", "malignan", "carcinoma"},
	"fracture":     {"fracture", "break", "compression fracture"},
	"infection":    {"infection", "abscess", "pneumonia", "sepsis"},
	"inflammation": {"inflamm", "itis", "colitis", "hepatitis"},
	"hemorrhage":   {"hemorrhage", "bleed", "hematoma"},
	"degeneration": {"degeneration", "arthrosis", "arthritis", "sclerosis"},
	"vascular":     {"aneurysm", "stenosis", "thrombus", "embol"},
	"normal":       {"normal", "unremarkable", "no acute", "negative"},
}

// DetectDiseaseTags assigns coarse analytics tags to a summary text.
// Output is sorted; a text matching nothing is tagged "general".
func DetectDiseaseTags(text string) []string {
	low := strings.ToLower(text)
	var tags []string
	for label, keywords := range diseaseKeywords {
		for _, kw := range keywords {
			if strings.Contains(low, kw) {
				tags = append(tags, label)
				break
			}
		}
	}
	if len(tags) == 0 {
		return []string{"general"}
	}
	sort.Strings(tags)
	return tags
}

// joinTags flattens a tag slice into the stored text form: lower-cased,
// deduplicated, sorted, comma-separated.
func joinTags(tags []string) string {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

// splitTags is the inverse of joinTags
func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
