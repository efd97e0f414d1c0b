package validator

// radiologyKeywords is the vocabulary a genuine radiology report is expected
// to draw from. Matching is substring-based on lower-cased text.
var radiologyKeywords = []string{
	"radiology",
	"radiologist",
	"imaging",
	"findings",
	"impression",
	"technique",
	"contrast",
	"comparison",
	"clinical",
	"examination",
	"scan",
	"radiograph",
	"indication",
	"views",
	"axial",
	"sagittal",
	"coronal",
	"unremarkable",
	"correlation",
}

// modalityTerms identify the imaging technique used for the study
var modalityTerms = []string{
	"computed tomography",
	"ct scan",
	"magnetic resonance",
	"mri",
	"x-ray",
	"radiograph",
	"ultrasound",
	"sonograph",
	"fluoroscopy",
	"mammogra",
	"angiogra",
	"doppler",
	"pet scan",
	"nuclear medicine",
	"scintigraphy",
}

// anatomyTerms identify the anatomical site of the study
var anatomyTerms = []string{
	"brain",
	"head",
	"skull",
	"neck",
	"chest",
	"thorax",
	"lung",
	"heart",
	"cardiac",
	"abdomen",
	"pelvis",
	"spine",
	"liver",
	"kidney",
	"renal",
	"bladder",
	"bone",
	"shoulder",
	"knee",
	"hip",
}
