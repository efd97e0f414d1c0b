// Package redactor removes patient-identifying lines from report text
// before it reaches the language model or any storage. Age and sex are
// kept in the text since the summary needs them; everything else that
// identifies the patient is captured out and dropped.
package redactor

import (
	"regexp"
	"strconv"
	"strings"

	apperrors "github.com/insideimaging/insideimaging-backend/pkg/errors"
)

// PHI holds the identifying fields captured from the text. Only Age and
// Sex may be persisted; the rest exists so callers can show the patient
// what was removed.
type PHI struct {
	RefNo string
	Name  string
	Date  string
	Age   *int
	Sex   string
}

// Result is the redacted text plus the captured fields
type Result struct {
	Filtered string
	PHI      PHI
}

var (
	nameLabelOnly = regexp.MustCompile(`^name\s*[:\-]?\s*$`)
	sexLabelOnly  = regexp.MustCompile(`^sex\s*[:\-]?\s*$`)
	agePattern    = regexp.MustCompile(`(?i)\bage\s*[:\-]?\s*(\d{1,3})\b`)
	sexInline     = regexp.MustCompile(`(?i)sex\s*[:\-]?\s*([A-Za-z]+)`)
)

// Redact scans the text line by line, capturing and removing reference
// number, patient name and date lines, keeping age and sex lines, and
// dropping doctor signature lines. Uploads without a readable age or sex
// are rejected so that incomplete reports never reach the pipeline.
func Redact(text string) (Result, error) {
	lines := strings.Split(text, "\n")
	var kept []string
	var phi PHI
	skipNext := false

	for i, line := range lines {
		if skipNext {
			skipNext = false
			continue
		}
		trimmed := strings.TrimSpace(line)
		low := strings.ToLower(trimmed)

		if phi.RefNo == "" && strings.Contains(low, "ref") && strings.Contains(low, "no") {
			phi.RefNo = trimmed
			continue
		}

		// name label with the value on the same or the following line
		if phi.Name == "" && strings.Contains(low, "name") && !strings.HasPrefix(low, "dr") {
			if nameLabelOnly.MatchString(low) {
				if i+1 < len(lines) {
					phi.Name = strings.TrimSpace(lines[i+1])
					skipNext = true
				}
			} else {
				phi.Name = trimmed
			}
			continue
		}

		if phi.Date == "" && strings.Contains(low, "date") {
			phi.Date = trimmed
			continue
		}

		if phi.Age == nil {
			if m := agePattern.FindStringSubmatch(trimmed); m != nil {
				if age, err := strconv.Atoi(m[1]); err == nil {
					phi.Age = &age
					kept = append(kept, trimmed)
					continue
				}
			}
		}

		if phi.Sex == "" && strings.Contains(low, "sex") {
			if sexLabelOnly.MatchString(low) && i+1 < len(lines) {
				nextWord := firstWord(lines[i+1])
				if sex := normalizeSex(nextWord); sex != "" {
					phi.Sex = sex
					kept = append(kept, "Sex: "+nextWord)
					skipNext = true
					continue
				}
			} else if m := sexInline.FindStringSubmatch(trimmed); m != nil {
				if sex := normalizeSex(m[1]); sex != "" {
					phi.Sex = sex
					kept = append(kept, trimmed)
					continue
				}
			}
			continue
		}

		if isSignatureLine(low) {
			continue
		}

		kept = append(kept, trimmed)
	}

	if phi.Age == nil {
		return Result{}, apperrors.New("AGE_MISSING", "missing or invalid age, retake photo", 400)
	}
	if phi.Sex == "" {
		return Result{}, apperrors.New("SEX_MISSING", "missing or invalid sex, retake photo", 400)
	}

	return Result{Filtered: strings.Join(kept, "\n"), PHI: phi}, nil
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func normalizeSex(token string) string {
	switch strings.ToLower(token) {
	case "f", "female":
		return "female"
	case "m", "male":
		return "male"
	}
	return ""
}

func isSignatureLine(low string) bool {
	return strings.HasPrefix(low, "dr ") ||
		strings.HasPrefix(low, "dr.") ||
		strings.Contains(low, " dr ") ||
		strings.Contains(low, " dr.") ||
		strings.Contains(low, "signature")
}

// TruncateName reduces a patient name to initials for storage, e.g.
// "Jane Doe" becomes "J*** D***".
func TruncateName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string([]rune(p)[0]) + "***"
	}
	return strings.Join(out, " ")
}
