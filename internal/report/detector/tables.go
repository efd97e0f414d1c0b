package detector

import "github.com/insideimaging/insideimaging-backend/internal/report/domain"

// organEntry maps an organ to its keyword variants and illustration asset.
// Declaration order is the stable iteration order for detection output.
type organEntry struct {
	Organ      domain.Organ
	Keywords   []string
	DiagramRef string
}

var organTable = []organEntry{
	{
		Organ:      domain.OrganBrain,
		Keywords:   []string{"brain", "cerebral", "cerebellum", "intracranial"},
		DiagramRef: "/assets/diagrams/brain.svg",
	},
	{
		Organ:      domain.OrganHeart,
		Keywords:   []string{"heart", "cardiac", "cardiomegaly"},
		DiagramRef: "/assets/diagrams/heart.svg",
	},
	{
		Organ:      domain.OrganLungs,
		Keywords:   []string{"lung", "pulmonary", "bronch"},
		DiagramRef: "/assets/diagrams/lungs.svg",
	},
	{
		Organ:      domain.OrganLiver,
		Keywords:   []string{"liver", "hepatic"},
		DiagramRef: "/assets/diagrams/liver.svg",
	},
	{
		Organ:      domain.OrganKidney,
		Keywords:   []string{"kidney", "kidneys", "renal"},
		DiagramRef: "/assets/diagrams/kidney.svg",
	},
	{
		Organ:      domain.OrganStomach,
		Keywords:   []string{"stomach", "gastric"},
		DiagramRef: "/assets/diagrams/stomach.svg",
	},
}

// regionEntry maps an anatomical sub-region to its keyword variants
type regionEntry struct {
	Region   string
	Keywords []string
}

// regionTable holds sub-region keywords per organ. Organs without an entry
// have no sub-regions and yield an empty set.
var regionTable = map[domain.Organ][]regionEntry{
	domain.OrganBrain: {
		{Region: "frontal", Keywords: []string{"frontal"}},
		{Region: "parietal", Keywords: []string{"parietal"}},
		{Region: "temporal", Keywords: []string{"temporal"}},
		{Region: "occipital", Keywords: []string{"occipital"}},
		{Region: "cerebellum", Keywords: []string{"cerebellum", "cerebellar"}},
		{Region: "brainstem", Keywords: []string{"brainstem", "brain stem", "pons", "medulla oblongata"}},
	},
	domain.OrganHeart: {
		{Region: "left atrium", Keywords: []string{"left atrium", "left atrial"}},
		{Region: "right atrium", Keywords: []string{"right atrium", "right atrial"}},
		{Region: "left ventricle", Keywords: []string{"left ventricle", "left ventricular"}},
		{Region: "right ventricle", Keywords: []string{"right ventricle", "right ventricular"}},
		{Region: "aortic valve", Keywords: []string{"aortic valve"}},
		{Region: "mitral valve", Keywords: []string{"mitral valve", "mitral"}},
	},
	domain.OrganLungs: {
		{Region: "right upper lobe", Keywords: []string{"right upper lobe"}},
		{Region: "right middle lobe", Keywords: []string{"right middle lobe"}},
		{Region: "right lower lobe", Keywords: []string{"right lower lobe"}},
		{Region: "left upper lobe", Keywords: []string{"left upper lobe", "lingula"}},
		{Region: "left lower lobe", Keywords: []string{"left lower lobe"}},
	},
	domain.OrganLiver: {
		{Region: "right lobe", Keywords: []string{"right lobe", "right hepatic lobe"}},
		{Region: "left lobe", Keywords: []string{"left lobe", "left hepatic lobe"}},
		{Region: "caudate lobe", Keywords: []string{"caudate"}},
		{Region: "porta hepatis", Keywords: []string{"porta hepatis", "portal"}},
	},
	domain.OrganKidney: {
		{Region: "upper pole", Keywords: []string{"upper pole"}},
		{Region: "lower pole", Keywords: []string{"lower pole"}},
		{Region: "cortex", Keywords: []string{"cortex", "cortical"}},
		{Region: "medulla", Keywords: []string{"medulla", "medullary"}},
	},
}

// normalIndicators mark a sentence as describing benign findings
var normalIndicators = []string{
	"normal",
	"unremarkable",
	"no abnormality",
	"no evidence",
	"within normal limits",
	"no pathology",
	"no acute",
	"clear",
	"intact",
	"preserved",
	"patent",
}

// abnormalIndicators mark a sentence as describing concerning findings.
// A single abnormal indicator disqualifies the normal classification no
// matter how much normal language also appears.
var abnormalIndicators = []string{
	"abnormal",
	"mass",
	"lesion",
	"tumor",
	"enlarged",
	"fracture",
	"bleeding",
	"cyst",
	"stone",
	"effusion",
	"nodule",
	"thickening",
}

// negativeContextPhrases suppress a condition keyword match when one of them
// occurs in the surrounding window at or before the keyword
var negativeContextPhrases = []string{
	"no ",
	"no evidence of",
	"ruled out",
	"negative for",
	"not seen",
	"unremarkable",
	"normal",
	"resolved",
	"without",
	"absence of",
	"free of",
}

// strongIndicators assert a condition with reasonable confidence
var strongIndicators = []string{
	"likely",
	"consistent with",
	"suspicious for",
	"diagnostic of",
	"compatible with",
	"in keeping with",
}

// weakIndicators hedge a condition; they veto a strong indicator appearing
// in the same window
var weakIndicators = []string{
	"possible",
	"may represent",
	"cannot exclude",
	"query",
	"differential",
	"versus",
}
