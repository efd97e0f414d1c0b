package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFixture represents test user data
type UserFixture struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// ReportEventFixture represents a processed report record for tests
type ReportEventFixture struct {
	ID          string
	JobID       string
	PatientName string
	PatientAge  *int
	PatientSex  string
	Modality    string
	BodyRegion  string
	Status      string
	DiseaseTags []string
	Language    string
	CreatedAt   time.Time
}

// FeedbackFixture represents test feedback data
type FeedbackFixture struct {
	ID        string
	UserID    *string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// FixtureFactory creates test fixtures with sensible defaults
type FixtureFactory struct {
	sequence int
}

// NewFixtureFactory creates a new fixture factory
func NewFixtureFactory() *FixtureFactory {
	return &FixtureFactory{sequence: 0}
}

// nextSeq returns the next sequence number for unique values
func (f *FixtureFactory) nextSeq() int {
	f.sequence++
	return f.sequence
}

// User creates a user fixture with defaults
func (f *FixtureFactory) User(opts ...func(*UserFixture)) UserFixture {
	seq := f.nextSeq()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	user := UserFixture{
		ID:           uuid.New().String(),
		Username:     fmt.Sprintf("user%d", seq),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(&user)
	}

	return user
}

// WithUsername sets the username
func WithUsername(username string) func(*UserFixture) {
	return func(u *UserFixture) {
		u.Username = username
	}
}

// WithPassword sets the user password (hashed)
func WithPassword(password string) func(*UserFixture) {
	return func(u *UserFixture) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		u.PasswordHash = string(hash)
	}
}

// ReportEvent creates a report event fixture with defaults
func (f *FixtureFactory) ReportEvent(opts ...func(*ReportEventFixture)) ReportEventFixture {
	seq := f.nextSeq()
	age := 45

	event := ReportEventFixture{
		ID:          uuid.New().String(),
		JobID:       fmt.Sprintf("job-%08d", seq),
		PatientName: "J***",
		PatientAge:  &age,
		PatientSex:  "male",
		Modality:    "X-ray",
		BodyRegion:  "Chest",
		Status:      "processed",
		DiseaseTags: []string{"normal"},
		Language:    "English",
		CreatedAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(&event)
	}

	return event
}

// WithModality sets the report modality
func WithModality(modality string) func(*ReportEventFixture) {
	return func(e *ReportEventFixture) {
		e.Modality = modality
	}
}

// WithBodyRegion sets the report body region
func WithBodyRegion(region string) func(*ReportEventFixture) {
	return func(e *ReportEventFixture) {
		e.BodyRegion = region
	}
}

// WithPatient sets the anonymized patient demographics
func WithPatient(name string, age int, sex string) func(*ReportEventFixture) {
	return func(e *ReportEventFixture) {
		e.PatientName = name
		e.PatientAge = &age
		e.PatientSex = sex
	}
}

// WithDiseaseTags sets the disease tags
func WithDiseaseTags(tags ...string) func(*ReportEventFixture) {
	return func(e *ReportEventFixture) {
		e.DiseaseTags = tags
	}
}

// WithReportStatus sets the report status
func WithReportStatus(status string) func(*ReportEventFixture) {
	return func(e *ReportEventFixture) {
		e.Status = status
	}
}

// Feedback creates a feedback fixture with defaults
func (f *FixtureFactory) Feedback(opts ...func(*FeedbackFixture)) FeedbackFixture {
	fb := FeedbackFixture{
		ID:        uuid.New().String(),
		Rating:    4,
		Comment:   "The explanation was clear and helpful.",
		CreatedAt: time.Now(),
	}

	for _, opt := range opts {
		opt(&fb)
	}

	return fb
}

// WithRating sets the feedback rating
func WithRating(rating int) func(*FeedbackFixture) {
	return func(fb *FeedbackFixture) {
		fb.Rating = rating
	}
}

// WithFeedbackUser sets the feedback user
func WithFeedbackUser(userID string) func(*FeedbackFixture) {
	return func(fb *FeedbackFixture) {
		fb.UserID = &userID
	}
}

// SampleChestReport is a realistic chest X-ray report used across tests
const SampleChestReport = `Clinical indication: Persistent cough for three weeks with mild fever.
Technique: Frontal and lateral radiograph of the chest was performed.
Findings: The lungs are clear with no focal consolidation, effusion or
pneumothorax. The cardiac silhouette is within normal limits. The
mediastinal contours are unremarkable. Both hemidiaphragms are well
defined and the costophrenic angles are sharp. The visualized bony
thorax demonstrates no acute osseous abnormality. The trachea is midline.
No pleural thickening or calcification is identified. The pulmonary
vasculature is normal in caliber and distribution throughout both lungs.
Impression: Normal chest radiograph. No radiographic evidence of acute
cardiopulmonary disease. Clinical correlation is recommended if symptoms persist.`

// SampleBrainReport is a realistic brain MRI report with abnormal findings
const SampleBrainReport = `Clinical history: Recurrent headaches with visual disturbance.
Technique: Multiplanar multisequence MRI of the brain was obtained
without and with intravenous gadolinium contrast administration.
Findings: There is a well-circumscribed extra-axial mass along the right
frontal convexity measuring 2.3 cm demonstrating homogeneous enhancement,
consistent with a meningioma. The remainder of the brain parenchyma shows
normal signal intensity. The ventricles are normal in size and
configuration with no hydrocephalus. No restricted diffusion to suggest
acute infarct. No intracranial hemorrhage or extra-axial fluid collection.
The major intracranial flow voids are preserved. The visualized paranasal
sinuses and mastoid air cells are clear.
Impression: Right frontal convexity meningioma. No acute intracranial
abnormality otherwise. Neurosurgical consultation is suggested.`
