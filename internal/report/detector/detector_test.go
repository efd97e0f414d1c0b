package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insideimaging/insideimaging-backend/internal/report/domain"
	"github.com/insideimaging/insideimaging-backend/pkg/logger"
)

func newTestDetector() *Detector {
	return New(DefaultConfig(), logger.New("detector-test", "test"))
}

func TestDetectOrgans(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name string
		text string
		want []domain.Organ
	}{
		{
			name: "single organ by direct name",
			text: "The liver is enlarged.",
			want: []domain.Organ{domain.OrganLiver},
		},
		{
			name: "organ by synonym",
			text: "Mild cardiomegaly with clear pulmonary fields.",
			want: []domain.Organ{domain.OrganHeart, domain.OrganLungs},
		},
		{
			name: "table order regardless of text order",
			text: "Kidneys are normal. The brain shows no abnormality.",
			want: []domain.Organ{domain.OrganBrain, domain.OrganKidney},
		},
		{
			name: "case insensitive",
			text: "INTRACRANIAL structures are preserved.",
			want: []domain.Organ{domain.OrganBrain},
		},
		{
			name: "no organs",
			text: "Degenerative changes of the lumbar spine.",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.DetectOrgans(tt.text))
		})
	}
}

func TestDetectOrgansIsIdempotent(t *testing.T) {
	d := newTestDetector()
	text := "MRI brain shows no acute intracranial hemorrhage. The lungs are clear."

	first := d.DetectOrgans(text)
	second := d.DetectOrgans(text)

	require.Equal(t, []domain.Organ{domain.OrganBrain, domain.OrganLungs}, first)
	assert.Equal(t, first, second)
}

func TestIsOrganNormal(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name  string
		text  string
		organ domain.Organ
		want  bool
	}{
		{
			name:  "negated abnormality reads as normal",
			text:  "MRI brain shows no acute intracranial hemorrhage. The lungs are clear.",
			organ: domain.OrganBrain,
			want:  true,
		},
		{
			name:  "clear lungs",
			text:  "MRI brain shows no acute intracranial hemorrhage. The lungs are clear.",
			organ: domain.OrganLungs,
			want:  true,
		},
		{
			name:  "any abnormal sentence overrides a normal one",
			text:  "Brain is normal. Brain shows a mass.",
			organ: domain.OrganBrain,
			want:  false,
		},
		{
			name:  "no mention at all",
			text:  "The liver is unremarkable.",
			organ: domain.OrganHeart,
			want:  false,
		},
		{
			name:  "mention without any indicator",
			text:  "Study includes the heart.",
			organ: domain.OrganHeart,
			want:  false,
		},
		{
			name:  "text without sentence terminators",
			text:  "brain parenchyma unremarkable",
			organ: domain.OrganBrain,
			want:  true,
		},
		{
			name:  "abnormal finding",
			text:  "There is a lesion in the left hepatic lobe.",
			organ: domain.OrganLiver,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.IsOrganNormal(tt.text, tt.organ))
		})
	}
}

func TestDetectRegions(t *testing.T) {
	d := newTestDetector()

	tests := []struct {
		name  string
		text  string
		organ domain.Organ
		want  []string
	}{
		{
			name:  "brain lobes in table order",
			text:  "Signal change in the occipital and frontal lobes.",
			organ: domain.OrganBrain,
			want:  []string{"frontal", "occipital"},
		},
		{
			name:  "lung lobe",
			text:  "Consolidation in the right lower lobe.",
			organ: domain.OrganLungs,
			want:  []string{"right lower lobe"},
		},
		{
			name:  "no regions for stomach",
			text:  "Gastric wall thickening.",
			organ: domain.OrganStomach,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.DetectRegions(tt.text, tt.organ))
		})
	}
}

func TestExtractOrganContext(t *testing.T) {
	d := newTestDetector()

	t.Run("caps at two sentences in document order", func(t *testing.T) {
		text := "The liver is enlarged. Hepatic lesion in segment four. The liver margin is smooth. Liver texture is coarse."
		got := d.ExtractOrganContext(text, domain.OrganLiver)
		require.Len(t, got, 2)
		assert.Equal(t, "The liver is enlarged.", got[0])
		assert.Equal(t, "Hepatic lesion in segment four.", got[1])
	})

	t.Run("skips sentence where organ is a late mention among many", func(t *testing.T) {
		text := "Survey of the heart and lungs and liver and kidneys demonstrates scattered findings involving the visualized stomach. Gastric wall is thickened."
		got := d.ExtractOrganContext(text, domain.OrganStomach)
		require.Len(t, got, 1)
		assert.Equal(t, "Gastric wall is thickened.", got[0])
	})

	t.Run("late mention kept when few organs in sentence", func(t *testing.T) {
		text := "A subtle focus of restricted diffusion is identified within the cerebellum."
		got := d.ExtractOrganContext(text, domain.OrganBrain)
		require.Len(t, got, 1)
	})

	t.Run("no mention yields nothing", func(t *testing.T) {
		assert.Empty(t, d.ExtractOrganContext("Lungs are clear.", domain.OrganBrain))
	})
}

func TestDetectConditions(t *testing.T) {
	d := newTestDetector()

	t.Run("negated mention is suppressed", func(t *testing.T) {
		got := d.DetectConditions("There is no evidence of pulmonary embolism.")
		assert.Empty(t, got)
	})

	t.Run("leading no suppresses", func(t *testing.T) {
		got := d.DetectConditions("No pneumothorax is identified.")
		assert.Empty(t, got)
	})

	t.Run("plain mention is detected", func(t *testing.T) {
		got := d.DetectConditions("Findings are consistent with pneumothorax.")
		require.Len(t, got, 1)
		assert.Equal(t, "pneumothorax", got[0].Name)
	})

	t.Run("later positive mention survives an earlier negated one", func(t *testing.T) {
		got := d.DetectConditions("No pneumothorax on the left side here. There is a large right pneumothorax.")
		require.Len(t, got, 1)
		assert.Equal(t, "pneumothorax", got[0].Name)
	})

	t.Run("multiple conditions in table order", func(t *testing.T) {
		got := d.DetectConditions("Small pleural effusion with adjacent consolidation suggests pneumonia.")
		require.Len(t, got, 2)
		assert.Equal(t, "pleural effusion", got[0].Name)
		assert.Equal(t, "pneumonia", got[1].Name)
	})
}

func TestIsConditionLikely(t *testing.T) {
	d := newTestDetector()
	pneumothorax := mustCondition(t, "pneumothorax")

	t.Run("named in conclusion", func(t *testing.T) {
		assert.True(t, d.IsConditionLikely(
			"Lucency at the right apex. Impression: small right pneumothorax.",
			"Impression: small right pneumothorax.",
			pneumothorax,
		))
	})

	t.Run("strong indicator near keyword", func(t *testing.T) {
		assert.True(t, d.IsConditionLikely(
			"Appearances are consistent with pneumothorax at the apex.",
			"Follow up advised.",
			pneumothorax,
		))
	})

	t.Run("weak indicator blocks strong window", func(t *testing.T) {
		assert.False(t, d.IsConditionLikely(
			"Appearances possible, consistent with pneumothorax at the apex.",
			"Follow up advised.",
			pneumothorax,
		))
	})

	t.Run("repeated name across text", func(t *testing.T) {
		assert.True(t, d.IsConditionLikely(
			"Right pneumothorax noted. The pneumothorax measures two centimeters.",
			"Follow up advised.",
			pneumothorax,
		))
	})

	t.Run("single passing mention is not likely", func(t *testing.T) {
		assert.False(t, d.IsConditionLikely(
			"Prior pneumothorax noted on old imaging.",
			"Stable study.",
			pneumothorax,
		))
	})
}

func TestDetectFullReport(t *testing.T) {
	d := newTestDetector()

	findings := "The brain parenchyma is normal. The lungs are clear."
	conclusion := "No acute intracranial hemorrhage."

	t.Run("with diagrams", func(t *testing.T) {
		organs, conditions := d.Detect(findings, conclusion, "MRI Brain", true)

		require.Len(t, organs, 2)
		assert.Equal(t, domain.OrganBrain, organs[0].Organ)
		assert.True(t, organs[0].IsNormal)
		assert.Equal(t, "/assets/diagrams/brain.svg", organs[0].DiagramRef)
		assert.Equal(t, domain.OrganLungs, organs[1].Organ)
		assert.True(t, organs[1].IsNormal)
		assert.Equal(t, "/assets/diagrams/lungs.svg", organs[1].DiagramRef)

		// "intracranial hemorrhage" is negated, so no condition remains.
		assert.Empty(t, conditions)
	})

	t.Run("without diagrams", func(t *testing.T) {
		organs, _ := d.Detect(findings, conclusion, "MRI Brain", false)
		require.Len(t, organs, 2)
		for _, o := range organs {
			assert.Empty(t, o.DiagramRef)
		}
	})
}

func TestDetectCapsConditions(t *testing.T) {
	d := newTestDetector()

	// Four likely conditions plus hydronephrosis, which is mentioned in
	// passing and never endorsed by the conclusion. Hydronephrosis must not
	// hold a cap slot: the cap applies to the likely survivors only.
	findings := "There is a 2cm renal stone in the left kidney with associated hydronephrosis. A simple renal cyst is seen on the right kidney. Mild centrilobular emphysema is noted at both lung apices."
	conclusion := "Findings consistent with nephrolithiasis. The renal cyst and emphysema are incidental."

	_, conditions := d.Detect(findings, conclusion, "CT Abdomen", false)

	require.Len(t, conditions, 3)
	assert.Equal(t, "kidney stones", conditions[0].Name)
	assert.Equal(t, "nephrolithiasis", conditions[1].Name)
	assert.Equal(t, "renal cyst", conditions[2].Name)

	for _, c := range conditions {
		assert.NotEqual(t, "hydronephrosis", c.Name)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "mixed terminators",
			text: "First sentence. Second one! Third?",
			want: []string{"First sentence.", "Second one!", "Third?"},
		},
		{
			name: "no terminator falls back to whole text",
			text: "unterminated fragment",
			want: []string{"unterminated fragment"},
		},
		{
			name: "trailing fragment without terminator is dropped",
			text: "Complete sentence. trailing bit",
			want: []string{"Complete sentence."},
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.text))
		})
	}
}

func mustCondition(t *testing.T, name string) Condition {
	t.Helper()
	for _, c := range conditionTable {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("condition %q not in table", name)
	return Condition{}
}
