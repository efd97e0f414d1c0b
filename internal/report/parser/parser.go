// Package parser pulls metadata and the standard report sections out of
// unstructured radiology report text. Keeping all the anchored regexes in
// one place lets the summarizer focus on language instead of extraction.
package parser

import (
	"regexp"
	"strings"
)

// Metadata holds the header fields found in a report. Fields that cannot
// be located are empty strings; callers decide what is mandatory.
type Metadata struct {
	Hospital string
	Name     string
	Age      string
	Sex      string
	Date     string
	Study    string
}

// Sections holds the four standard report blocks
type Sections struct {
	Reason     string
	Technique  string
	Findings   string
	Impression string
}

var (
	upperLine   = regexp.MustCompile(`^[A-Z0-9&@/()'’.,\- ]{12,}$`)
	namePattern = regexp.MustCompile(`(?i)\bNAME\b[:\s\-–]*([A-Z][A-Za-z' .\-]+)`)
	agePattern  = regexp.MustCompile(`(?i)\bAGE\b[:\s\-–]*([0-9]{1,3})`)
	sexPattern  = regexp.MustCompile(`(?i)\bSEX\b[:\s\-–]*(M|F|Male|Female)`)
	datePattern = regexp.MustCompile(`(?i)\bDATE\b[:\s]*([0-9]{1,2}[-/.][0-9]{1,2}[-/.][0-9]{2,4}|\d{1,2}\s+[A-Za-z]{3,9}\s+\d{4})`)
	studyLine   = regexp.MustCompile(`(?m)^(CT|MRI|X[- ]?RAY|ULTRASOUND|USG)[^\n]{0,60}$`)

	spaceRun      = regexp.MustCompile(`[ \t]+`)
	trailingSpace = regexp.MustCompile(`\s+\n`)
	stopHeader    = regexp.MustCompile(`(?m)^(?:TECHNIQUE|FINDINGS?|IMPRESSION|CONCLUSION|REPORT|RESULTS|DISCUSSION|NOTE|SUMMARY)\b`)

	findingsTail = regexp.MustCompile(`(?is)\bFINDINGS?\b[:\s\-]*\n?(.*)`)
)

// normalize unifies dash characters and collapses runs of spaces so the
// anchored patterns behave the same across OCR and PDF text.
func normalize(s string) string {
	s = strings.NewReplacer("–", "-", "—", "-", " ", " ").Replace(s)
	s = spaceRun.ReplaceAllString(s, " ")
	s = trailingSpace.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}

// ParseMetadata extracts the header fields from a report. The hospital is
// taken from consecutive all-caps lines at the top of the document.
func ParseMetadata(text string) Metadata {
	t := normalize(text)

	var headUpper []string
	lines := strings.Split(t, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if upperLine.MatchString(trimmed) {
			headUpper = append(headUpper, trimmed)
		} else if len(headUpper) > 0 {
			break
		}
	}
	if len(headUpper) > 2 {
		headUpper = headUpper[:2]
	}

	meta := Metadata{Hospital: strings.Join(headUpper, " ")}
	if m := namePattern.FindStringSubmatch(t); m != nil {
		meta.Name = strings.TrimSpace(m[1])
	}
	if m := agePattern.FindStringSubmatch(t); m != nil {
		meta.Age = m[1]
	}
	if m := sexPattern.FindStringSubmatch(t); m != nil {
		meta.Sex = normalizeSex(m[1])
	}
	if m := datePattern.FindStringSubmatch(t); m != nil {
		meta.Date = strings.TrimSpace(m[1])
	}
	if m := studyLine.FindString(t); m != "" {
		meta.Study = strings.TrimSpace(m)
	}
	return meta
}

func normalizeSex(v string) string {
	if strings.HasPrefix(strings.ToLower(v), "m") {
		return "male"
	}
	return "female"
}

// ParseSections extracts the reason, technique, findings and impression
// blocks. A report without an explicit findings header falls back to
// everything after the first FINDINGS token.
func ParseSections(text string) Sections {
	t := normalize(text)
	secs := Sections{
		Reason:     getBlock(t, "CLINICAL INFORMATION", "INDICATION", "HISTORY"),
		Technique:  getBlock(t, "TECHNIQUE"),
		Findings:   getBlock(t, "FINDINGS", "FINDING"),
		Impression: getBlock(t, "IMPRESSION", "CONCLUSION"),
	}
	if secs.Findings == "" {
		if m := findingsTail.FindStringSubmatch(t); m != nil {
			secs.Findings = strings.TrimSpace(m[1])
		}
	}
	return secs
}

// getBlock returns the content following the first of the given section
// headers, up to the next major all-caps header. A stop header at the very
// start is the block's own header and does not terminate it.
func getBlock(text string, keys ...string) string {
	for _, key := range keys {
		headerRx := regexp.MustCompile(`(?is)\b` + key + `\b\s*[:\-]?\s*.*`)
		loc := headerRx.FindStringIndex(text)
		if loc == nil {
			continue
		}
		rest := text[loc[0]:]
		body := rest
		if stop := stopHeader.FindStringIndex(rest); stop != nil && stop[0] > 0 {
			body = rest[:stop[0]]
		} else if stop != nil {
			// the header itself is a stop word; look for the next one
			if next := stopHeader.FindStringIndex(rest[stop[1]:]); next != nil {
				body = rest[:stop[1]+next[0]]
			}
		}
		stripRx := regexp.MustCompile(`(?is)^` + key + `\s*[:\-]?\s*`)
		return strings.TrimSpace(stripRx.ReplaceAllString(body, ""))
	}
	return ""
}

// DescribeStudy builds a short plain-language study description from the
// modality and body region mentioned in the text, used as the technique
// fallback when the report has no TECHNIQUE section.
func DescribeStudy(text string) string {
	low := strings.ToLower(text)
	modality := InferModality(low)
	region := InferBodyRegion(low)
	withContrast := strings.Contains(low, "contrast")

	if modality == "" {
		return ""
	}
	label := modality
	if modality == "CT" {
		label = "CT scan"
	}
	var sb strings.Builder
	sb.WriteString(label)
	if region != "" {
		sb.WriteString(" of the ")
		sb.WriteString(region)
	}
	if modality == "CT" && withContrast {
		sb.WriteString(" with contrast")
	}
	sb.WriteString(".")
	return sb.String()
}

var ctWord = regexp.MustCompile(`\bct\b`)

// InferModality guesses the imaging modality from lowercased text
func InferModality(low string) string {
	switch {
	case strings.Contains(low, "mri"):
		return "MRI"
	case ctWord.MatchString(low):
		return "CT"
	case strings.Contains(low, "ultrasound") || strings.Contains(low, "sonograph"):
		return "Ultrasound"
	case strings.Contains(low, "x-ray") || strings.Contains(low, "xray") || strings.Contains(low, "radiograph"):
		return "X-ray"
	}
	return ""
}

// InferBodyRegion guesses the scanned body region from lowercased text.
// More specific regions are checked before general ones.
func InferBodyRegion(low string) string {
	switch {
	case strings.Contains(low, "cervical spine") || strings.Contains(low, "c-spine"):
		return "cervical spine"
	case strings.Contains(low, "lumbar spine") || strings.Contains(low, "l-spine") || strings.Contains(low, "lspine"):
		return "lumbar spine"
	case strings.Contains(low, "thoracic spine"):
		return "thoracic spine"
	case strings.Contains(low, "neck") || strings.Contains(low, "cervical"):
		return "neck"
	case strings.Contains(low, "chest") || strings.Contains(low, "thorax") || strings.Contains(low, "lung"):
		return "chest"
	case strings.Contains(low, "abdomen") || strings.Contains(low, "abdominal") || strings.Contains(low, "belly"):
		return "abdomen"
	case strings.Contains(low, "pelvis"):
		return "pelvis"
	case strings.Contains(low, "head") || strings.Contains(low, "skull") || strings.Contains(low, "brain"):
		return "head"
	}
	return ""
}
