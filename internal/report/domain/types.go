package domain

import "time"

// FileFormat identifies the upload format routed to an extractor
type FileFormat string

const (
	FormatPDF   FileFormat = "pdf"
	FormatImage FileFormat = "image"
	FormatDocx  FileFormat = "docx"
	FormatText  FileFormat = "text"
)

// RejectReason explains why an upload failed validation
type RejectReason string

const (
	RejectTooShort                RejectReason = "too_short"
	RejectInsufficientVocabulary  RejectReason = "insufficient_radiology_vocabulary"
	RejectInsufficientSpecificity RejectReason = "insufficient_technical_specificity"
)

// ValidationResult is the outcome of the upload validator
type ValidationResult struct {
	Accepted bool         `json:"accepted"`
	Reason   RejectReason `json:"reason,omitempty"`
}

// Organ is a detectable anatomical organ
type Organ string

const (
	OrganBrain   Organ = "brain"
	OrganHeart   Organ = "heart"
	OrganLungs   Organ = "lungs"
	OrganLiver   Organ = "liver"
	OrganKidney  Organ = "kidney"
	OrganStomach Organ = "stomach"
)

// OrganMention is one detected organ with its display context
type OrganMention struct {
	Organ            Organ    `json:"organ"`
	Regions          []string `json:"regions,omitempty"`
	IsNormal         bool     `json:"is_normal"`
	ContextSentences []string `json:"context_sentences,omitempty"`
	DiagramRef       string   `json:"diagram_ref,omitempty"`
}

// ConditionMention is one detected medical condition with its example asset
type ConditionMention struct {
	Name        string `json:"name"`
	ImageRef    string `json:"image_ref,omitempty"`
	Description string `json:"description,omitempty"`
}

// ReportMetadata holds demographics and study details parsed from the raw
// text before redaction. The name is already truncated for anonymity.
type ReportMetadata struct {
	PatientName string `json:"patient_name,omitempty"`
	PatientAge  *int   `json:"patient_age,omitempty"`
	PatientSex  string `json:"patient_sex,omitempty"`
	StudyDate   string `json:"study_date,omitempty"`
	Modality    string `json:"modality,omitempty"`
	BodyRegion  string `json:"body_region,omitempty"`
	ReferringNo string `json:"referring_no,omitempty"`
}

// StructuredSummary is the lay-language translation produced by the summarizer
type StructuredSummary struct {
	Reason     string `json:"reason"`
	Technique  string `json:"technique"`
	Findings   string `json:"findings"`
	Conclusion string `json:"conclusion"`
	Concern    string `json:"concern"`
	Language   string `json:"language"`
}

// ReportStats describes the size of the redacted report text
type ReportStats struct {
	WordCount     int `json:"word_count"`
	SentenceCount int `json:"sentence_count"`
}

// ReportResult is the complete output of the processing pipeline for one upload
type ReportResult struct {
	Summary          StructuredSummary  `json:"summary"`
	Metadata         ReportMetadata     `json:"metadata"`
	Organs           []OrganMention     `json:"organs,omitempty"`
	Conditions       []ConditionMention `json:"conditions,omitempty"`
	DiseaseTags      []string           `json:"disease_tags,omitempty"`
	Stats            ReportStats        `json:"stats"`
	ProcessingTimeMs int64              `json:"processing_time_ms"`
}

// JobStatus represents the processing state of a report job
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusRejected   JobStatus = "rejected"
	StatusFailed     JobStatus = "failed"
)

// ReportJob tracks one upload through the pipeline. Raw report text is never
// stored on the job; only the anonymized result survives processing.
type ReportJob struct {
	JobID        string        `json:"job_id"`
	Status       JobStatus     `json:"status"`
	FileName     string        `json:"file_name"`
	Format       FileFormat    `json:"format"`
	Language     string        `json:"language"`
	ShowDiagrams bool          `json:"show_diagrams"`
	Result       *ReportResult `json:"result,omitempty"`
	RejectReason RejectReason  `json:"reject_reason,omitempty"`
	Error        string        `json:"error,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// ReportEvent is the persisted, anonymized record of a processed upload.
// The name is stored truncated; tag slices are flattened to text columns
// by the repository.
type ReportEvent struct {
	ID            string    `db:"id"`
	JobID         string    `db:"job_id"`
	PatientName   string    `db:"patient_name"`
	PatientAge    *int      `db:"patient_age"`
	PatientSex    string    `db:"patient_sex"`
	Modality      string    `db:"modality"`
	BodyRegion    string    `db:"body_region"`
	Study         string    `db:"study"`
	Status        string    `db:"status"`
	DiseaseTags   []string  `db:"-"`
	OrganTags     []string  `db:"-"`
	ConditionTags []string  `db:"-"`
	Language      string    `db:"language"`
	WordCount     int       `db:"word_count"`
	DurationMs    int64     `db:"duration_ms"`
	CreatedAt     time.Time `db:"created_at"`
}

// Report event status values stored in the analytics table
const (
	EventStatusProcessed = "processed"
	EventStatusRejected  = "rejected"
)

// Feedback is a user rating of a produced summary
type Feedback struct {
	ID        string    `db:"id"`
	UserID    *string   `db:"user_id"`
	Rating    int       `db:"rating"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}

// UsageStats aggregates anonymized report events for the stats endpoint
type UsageStats struct {
	TotalReports  int64            `json:"total_reports"`
	Last30Days    int64            `json:"last_30_days"`
	AvgWordCount  float64          `json:"avg_word_count"`
	ByModality    map[string]int64 `json:"by_modality"`
	ByBodyRegion  map[string]int64 `json:"by_body_region"`
	BySex         map[string]int64 `json:"by_sex"`
	ByAgeRange    map[string]int64 `json:"by_age_range"`
	ByDiseaseTag  map[string]int64 `json:"by_disease_tag"`
	RejectedCount int64            `json:"rejected_count"`
}
