package detector

// Condition is one entry of the condition keyword table: a named medical
// finding, the substrings that detect it, an illustrative reference image
// and a short lay description for captions.
type Condition struct {
	Name        string
	Category    string
	Keywords    []string
	ImageRef    string
	Description string
}

const articleBase = "https://radiopaedia.org/articles/"

// conditionTable is scanned in declaration order; detection order determines
// which entries survive the result cap.
var conditionTable = []Condition{
	// Kidney & Urinary
	{Name: "kidney stones", Category: "Kidney & Urinary", Keywords: []string{"kidney stone", "renal stone", "renal calcul", "nephrolith"}, ImageRef: articleBase + "renal-calculi", Description: "hard mineral deposits that form inside the kidney"},
	{Name: "hydronephrosis", Category: "Kidney & Urinary", Keywords: []string{"hydronephrosis", "hydroureteronephrosis"}, ImageRef: articleBase + "hydronephrosis", Description: "swelling of a kidney caused by a backup of urine"},
	{Name: "renal cell carcinoma", Category: "Kidney & Urinary", Keywords: []string{"renal cell carcinoma", "renal carcinoma"}, ImageRef: articleBase + "renal-cell-carcinoma", Description: "a cancer that starts in the kidney"},
	{Name: "nephrolithiasis", Category: "Kidney & Urinary", Keywords: []string{"nephrolithiasis", "urolithiasis"}, ImageRef: articleBase + "nephrolithiasis", Description: "the medical term for kidney stones"},
	{Name: "bladder stone", Category: "Kidney & Urinary", Keywords: []string{"bladder stone", "vesical calcul", "bladder calcul"}, ImageRef: articleBase + "vesical-calculus", Description: "a hard mineral deposit inside the bladder"},
	{Name: "renal cyst", Category: "Kidney & Urinary", Keywords: []string{"renal cyst", "kidney cyst"}, ImageRef: articleBase + "renal-cyst", Description: "a fluid-filled sac in the kidney, usually harmless"},
	{Name: "polycystic kidney disease", Category: "Kidney & Urinary", Keywords: []string{"polycystic kidney"}, ImageRef: articleBase + "autosomal-dominant-polycystic-kidney-disease", Description: "an inherited condition causing many cysts in both kidneys"},

	// Respiratory/Lung
	{Name: "pleural effusion", Category: "Respiratory/Lung", Keywords: []string{"pleural effusion", "pleural fluid"}, ImageRef: articleBase + "pleural-effusion", Description: "extra fluid between the lung and the chest wall"},
	{Name: "pneumonia", Category: "Respiratory/Lung", Keywords: []string{"pneumonia", "consolidation"}, ImageRef: articleBase + "pneumonia", Description: "a lung infection causing inflamed air sacs"},
	{Name: "pulmonary edema", Category: "Respiratory/Lung", Keywords: []string{"pulmonary edema", "pulmonary oedema"}, ImageRef: articleBase + "pulmonary-oedema", Description: "fluid building up inside the lungs"},
	{Name: "atelectasis", Category: "Respiratory/Lung", Keywords: []string{"atelectasis", "collapsed lung segment"}, ImageRef: articleBase + "atelectasis", Description: "a part of the lung that has deflated"},
	{Name: "emphysema", Category: "Respiratory/Lung", Keywords: []string{"emphysema"}, ImageRef: articleBase + "emphysema", Description: "damaged air sacs that trap air in the lungs"},
	{Name: "pulmonary fibrosis", Category: "Respiratory/Lung", Keywords: []string{"pulmonary fibrosis", "interstitial fibrosis"}, ImageRef: articleBase + "pulmonary-fibrosis", Description: "scarring that stiffens the lungs"},
	{Name: "pulmonary embolism", Category: "Respiratory/Lung", Keywords: []string{"pulmonary embolism", "pulmonary embol"}, ImageRef: articleBase + "pulmonary-embolism", Description: "a blood clot blocking an artery in the lung"},
	{Name: "pneumothorax", Category: "Respiratory/Lung", Keywords: []string{"pneumothorax"}, ImageRef: articleBase + "pneumothorax", Description: "air leaking into the space around the lung"},
	{Name: "ards", Category: "Respiratory/Lung", Keywords: []string{"acute respiratory distress"}, ImageRef: articleBase + "acute-respiratory-distress-syndrome", Description: "severe lung inflammation making breathing difficult"},

	// Cardiovascular
	{Name: "enlarged heart", Category: "Cardiovascular", Keywords: []string{"cardiomegaly", "enlarged heart", "enlarged cardiac"}, ImageRef: articleBase + "cardiomegaly", Description: "a heart that is bigger than normal"},
	{Name: "aortic aneurysm", Category: "Cardiovascular", Keywords: []string{"aortic aneurysm", "aneurysmal dilatation of the aorta"}, ImageRef: articleBase + "abdominal-aortic-aneurysm", Description: "a bulge in the wall of the body's main artery"},
	{Name: "aortic dissection", Category: "Cardiovascular", Keywords: []string{"aortic dissection", "dissection flap"}, ImageRef: articleBase + "aortic-dissection", Description: "a tear in the inner wall of the main artery"},
	{Name: "pericardial effusion", Category: "Cardiovascular", Keywords: []string{"pericardial effusion", "pericardial fluid"}, ImageRef: articleBase + "pericardial-effusion", Description: "extra fluid in the sac around the heart"},
	{Name: "carotid stenosis", Category: "Cardiovascular", Keywords: []string{"carotid stenosis", "carotid artery stenosis"}, ImageRef: articleBase + "carotid-artery-stenosis", Description: "narrowing of the main neck artery"},
	{Name: "deep vein thrombosis", Category: "Cardiovascular", Keywords: []string{"deep vein thrombosis", "deep venous thrombosis"}, ImageRef: articleBase + "deep-venous-thrombosis", Description: "a blood clot in a deep leg vein"},
	{Name: "portal vein thrombosis", Category: "Cardiovascular", Keywords: []string{"portal vein thrombosis"}, ImageRef: articleBase + "portal-vein-thrombosis", Description: "a blood clot in the vein that feeds the liver"},
	{Name: "portal hypertension", Category: "Cardiovascular", Keywords: []string{"portal hypertension"}, ImageRef: articleBase + "portal-hypertension", Description: "high pressure in the liver's blood supply"},
	{Name: "budd-chiari syndrome", Category: "Cardiovascular", Keywords: []string{"budd-chiari", "hepatic vein thrombosis"}, ImageRef: articleBase + "budd-chiari-syndrome", Description: "blocked veins draining blood from the liver"},

	// Brain & Neurological
	{Name: "brain tumor", Category: "Brain & Neurological", Keywords: []string{"brain tumor", "brain tumour", "intracranial mass", "glioma", "meningioma"}, ImageRef: articleBase + "brain-tumour", Description: "an abnormal growth inside the skull"},
	{Name: "stroke", Category: "Brain & Neurological", Keywords: []string{"stroke", "infarct"}, ImageRef: articleBase + "acute-ischaemic-stroke", Description: "brain damage from a blocked or burst blood vessel"},
	{Name: "brain hemorrhage", Category: "Brain & Neurological", Keywords: []string{"intracerebral hemorrhage", "intracerebral haemorrhage", "intracranial hemorrhage", "intracranial haemorrhage", "brain bleed"}, ImageRef: articleBase + "intracerebral-haemorrhage", Description: "bleeding inside the brain"},
	{Name: "subdural hematoma", Category: "Brain & Neurological", Keywords: []string{"subdural hematoma", "subdural haematoma", "subdural collection"}, ImageRef: articleBase + "subdural-haematoma", Description: "bleeding between the brain and its outer covering"},
	{Name: "epidural hematoma", Category: "Brain & Neurological", Keywords: []string{"epidural hematoma", "epidural haematoma", "extradural"}, ImageRef: articleBase + "epidural-haematoma", Description: "bleeding between the skull and the brain's covering"},
	{Name: "subarachnoid hemorrhage", Category: "Brain & Neurological", Keywords: []string{"subarachnoid hemorrhage", "subarachnoid haemorrhage"}, ImageRef: articleBase + "subarachnoid-haemorrhage", Description: "bleeding into the space around the brain"},
	{Name: "hydrocephalus", Category: "Brain & Neurological", Keywords: []string{"hydrocephalus", "ventriculomegaly"}, ImageRef: articleBase + "hydrocephalus", Description: "too much fluid inside the brain's chambers"},
	{Name: "multiple sclerosis", Category: "Brain & Neurological", Keywords: []string{"multiple sclerosis", "demyelinat"}, ImageRef: articleBase + "multiple-sclerosis", Description: "a disease damaging the insulation around nerves"},
	{Name: "acoustic neuroma", Category: "Brain & Neurological", Keywords: []string{"acoustic neuroma", "vestibular schwannoma"}, ImageRef: articleBase + "vestibular-schwannoma", Description: "a benign growth on the hearing nerve"},
	{Name: "chiari malformation", Category: "Brain & Neurological", Keywords: []string{"chiari"}, ImageRef: articleBase + "chiari-i-malformation", Description: "brain tissue extending into the spinal canal"},
	{Name: "syringomyelia", Category: "Brain & Neurological", Keywords: []string{"syringomyelia", "syrinx"}, ImageRef: articleBase + "syringomyelia", Description: "a fluid-filled cavity within the spinal cord"},

	// Liver & Biliary
	{Name: "liver cyst", Category: "Liver & Biliary", Keywords: []string{"liver cyst", "hepatic cyst"}, ImageRef: articleBase + "hepatic-cyst", Description: "a fluid-filled sac in the liver, usually harmless"},
	{Name: "cirrhosis", Category: "Liver & Biliary", Keywords: []string{"cirrhosis", "cirrhotic"}, ImageRef: articleBase + "cirrhosis", Description: "permanent scarring of the liver"},
	{Name: "fatty liver", Category: "Liver & Biliary", Keywords: []string{"fatty liver", "hepatic steatosis", "steatosis"}, ImageRef: articleBase + "hepatic-steatosis", Description: "extra fat stored in the liver"},
	{Name: "hepatomegaly", Category: "Liver & Biliary", Keywords: []string{"hepatomegaly", "enlarged liver"}, ImageRef: articleBase + "hepatomegaly", Description: "a liver that is bigger than normal"},
	{Name: "liver metastases", Category: "Liver & Biliary", Keywords: []string{"liver metasta", "hepatic metasta"}, ImageRef: articleBase + "liver-metastases", Description: "cancer that has spread to the liver"},
	{Name: "hepatocellular carcinoma", Category: "Liver & Biliary", Keywords: []string{"hepatocellular carcinoma", "hepatoma"}, ImageRef: articleBase + "hepatocellular-carcinoma", Description: "a cancer that starts in the liver"},
	{Name: "cholecystitis", Category: "Liver & Biliary", Keywords: []string{"cholecystitis", "gallbladder wall thickening"}, ImageRef: articleBase + "acute-cholecystitis", Description: "an inflamed gallbladder"},
	{Name: "gallstones", Category: "Liver & Biliary", Keywords: []string{"gallstone", "cholelithiasis"}, ImageRef: articleBase + "cholelithiasis", Description: "hard deposits that form in the gallbladder"},
	{Name: "choledocholithiasis", Category: "Liver & Biliary", Keywords: []string{"choledocholithiasis", "common bile duct stone"}, ImageRef: articleBase + "choledocholithiasis", Description: "a gallstone stuck in the main bile duct"},
	{Name: "biliary obstruction", Category: "Liver & Biliary", Keywords: []string{"biliary obstruction", "biliary dilatation", "obstructive jaundice"}, ImageRef: articleBase + "biliary-obstruction", Description: "a blockage of the tubes that drain bile"},

	// Gastrointestinal
	{Name: "appendicitis", Category: "Gastrointestinal", Keywords: []string{"appendicitis", "inflamed appendix"}, ImageRef: articleBase + "acute-appendicitis", Description: "an inflamed appendix"},
	{Name: "bowel obstruction", Category: "Gastrointestinal", Keywords: []string{"bowel obstruction", "obstructed bowel", "transition point"}, ImageRef: articleBase + "small-bowel-obstruction", Description: "a blockage stopping food moving through the gut"},
	{Name: "diverticulitis", Category: "Gastrointestinal", Keywords: []string{"diverticulitis"}, ImageRef: articleBase + "diverticulitis", Description: "inflamed pouches in the wall of the colon"},
	{Name: "pneumoperitoneum", Category: "Gastrointestinal", Keywords: []string{"pneumoperitoneum", "free air", "free intraperitoneal gas"}, ImageRef: articleBase + "pneumoperitoneum", Description: "air that has escaped into the belly cavity"},
	{Name: "esophageal cancer", Category: "Gastrointestinal", Keywords: []string{"esophageal carcinoma", "oesophageal carcinoma", "esophageal cancer"}, ImageRef: articleBase + "oesophageal-carcinoma", Description: "a cancer of the food pipe"},
	{Name: "gastric cancer", Category: "Gastrointestinal", Keywords: []string{"gastric carcinoma", "gastric cancer", "stomach cancer"}, ImageRef: articleBase + "gastric-carcinoma", Description: "a cancer of the stomach"},
	{Name: "colon cancer", Category: "Gastrointestinal", Keywords: []string{"colon cancer", "colonic carcinoma", "colorectal carcinoma", "rectal carcinoma"}, ImageRef: articleBase + "colorectal-carcinoma", Description: "a cancer of the large bowel"},
	{Name: "crohn's disease", Category: "Gastrointestinal", Keywords: []string{"crohn"}, ImageRef: articleBase + "crohn-disease", Description: "long-term inflammation of the digestive tract"},
	{Name: "ulcerative colitis", Category: "Gastrointestinal", Keywords: []string{"ulcerative colitis"}, ImageRef: articleBase + "ulcerative-colitis", Description: "long-term inflammation of the large bowel"},
	{Name: "intussusception", Category: "Gastrointestinal", Keywords: []string{"intussusception"}, ImageRef: articleBase + "intussusception", Description: "one part of the bowel sliding into another"},
	{Name: "volvulus", Category: "Gastrointestinal", Keywords: []string{"volvulus"}, ImageRef: articleBase + "sigmoid-volvulus", Description: "a twisted loop of bowel"},
	{Name: "mesenteric ischemia", Category: "Gastrointestinal", Keywords: []string{"mesenteric ischemia", "mesenteric ischaemia"}, ImageRef: articleBase + "acute-mesenteric-ischemia", Description: "low blood flow to the bowel"},
	{Name: "pneumatosis intestinalis", Category: "Gastrointestinal", Keywords: []string{"pneumatosis"}, ImageRef: articleBase + "pneumatosis-intestinalis", Description: "gas within the wall of the bowel"},

	// Musculoskeletal/Spine
	{Name: "fracture", Category: "Musculoskeletal/Spine", Keywords: []string{"fracture"}, ImageRef: articleBase + "fracture", Description: "a broken bone"},
	{Name: "hip fracture", Category: "Musculoskeletal/Spine", Keywords: []string{"hip fracture", "neck of femur fracture", "femoral neck fracture"}, ImageRef: articleBase + "hip-fracture", Description: "a break at the top of the thigh bone"},
	{Name: "scaphoid fracture", Category: "Musculoskeletal/Spine", Keywords: []string{"scaphoid fracture"}, ImageRef: articleBase + "scaphoid-fracture", Description: "a break of a small wrist bone"},
	{Name: "vertebral compression fracture", Category: "Musculoskeletal/Spine", Keywords: []string{"compression fracture", "vertebral collapse"}, ImageRef: articleBase + "vertebral-compression-fracture", Description: "a collapsed bone in the spine"},
	{Name: "rib fracture", Category: "Musculoskeletal/Spine", Keywords: []string{"rib fracture"}, ImageRef: articleBase + "rib-fracture", Description: "a broken rib"},
	{Name: "clavicle fracture", Category: "Musculoskeletal/Spine", Keywords: []string{"clavicle fracture", "clavicular fracture"}, ImageRef: articleBase + "clavicle-fracture", Description: "a broken collarbone"},
	{Name: "orbital fracture", Category: "Musculoskeletal/Spine", Keywords: []string{"orbital fracture", "blowout fracture"}, ImageRef: articleBase + "orbital-blowout-fracture", Description: "a break of the bones around the eye"},
	{Name: "scoliosis", Category: "Musculoskeletal/Spine", Keywords: []string{"scoliosis", "scoliotic"}, ImageRef: articleBase + "scoliosis", Description: "a sideways curve of the spine"},
	{Name: "osteomyelitis", Category: "Musculoskeletal/Spine", Keywords: []string{"osteomyelitis"}, ImageRef: articleBase + "osteomyelitis", Description: "an infection inside a bone"},
	{Name: "osteoarthritis", Category: "Musculoskeletal/Spine", Keywords: []string{"osteoarthritis", "degenerative joint", "joint space narrowing"}, ImageRef: articleBase + "osteoarthritis", Description: "wear-and-tear damage of a joint"},
	{Name: "cervical spondylosis", Category: "Musculoskeletal/Spine", Keywords: []string{"cervical spondylosis", "spondylosis"}, ImageRef: articleBase + "cervical-spondylosis", Description: "age-related wear of the neck spine"},
	{Name: "spinal stenosis", Category: "Musculoskeletal/Spine", Keywords: []string{"spinal stenosis", "canal stenosis"}, ImageRef: articleBase + "spinal-canal-stenosis", Description: "narrowing of the spinal canal"},
	{Name: "herniated disc", Category: "Musculoskeletal/Spine", Keywords: []string{"herniated disc", "disc herniation", "disc protrusion", "disc prolapse"}, ImageRef: articleBase + "disc-herniation", Description: "a spinal disc bulging out of place"},
	{Name: "spondylolisthesis", Category: "Musculoskeletal/Spine", Keywords: []string{"spondylolisthesis"}, ImageRef: articleBase + "spondylolisthesis", Description: "one spine bone slipping forward over another"},
	{Name: "ankylosing spondylitis", Category: "Musculoskeletal/Spine", Keywords: []string{"ankylosing spondylitis", "bamboo spine"}, ImageRef: articleBase + "ankylosing-spondylitis", Description: "inflammation that stiffens the spine over time"},

	// Soft Tissue/Joints
	{Name: "rotator cuff tear", Category: "Soft Tissue/Joints", Keywords: []string{"rotator cuff tear", "supraspinatus tear"}, ImageRef: articleBase + "rotator-cuff-tear", Description: "a torn tendon in the shoulder"},
	{Name: "meniscal tear", Category: "Soft Tissue/Joints", Keywords: []string{"meniscal tear", "meniscus tear"}, ImageRef: articleBase + "meniscal-tear", Description: "a torn cartilage cushion in the knee"},
	{Name: "acl tear", Category: "Soft Tissue/Joints", Keywords: []string{"acl tear", "anterior cruciate ligament tear", "cruciate ligament rupture"}, ImageRef: articleBase + "anterior-cruciate-ligament-tear", Description: "a torn ligament inside the knee"},
	{Name: "achilles tendon rupture", Category: "Soft Tissue/Joints", Keywords: []string{"achilles tendon rupture", "achilles rupture"}, ImageRef: articleBase + "achilles-tendon-rupture", Description: "a torn tendon at the back of the ankle"},

	// Endocrine
	{Name: "thyroid nodule", Category: "Endocrine", Keywords: []string{"thyroid nodule"}, ImageRef: articleBase + "thyroid-nodule", Description: "a lump in the thyroid gland"},
	{Name: "thyroid goiter", Category: "Endocrine", Keywords: []string{"goiter", "goitre"}, ImageRef: articleBase + "goitre", Description: "an enlarged thyroid gland"},
	{Name: "parathyroid adenoma", Category: "Endocrine", Keywords: []string{"parathyroid adenoma"}, ImageRef: articleBase + "parathyroid-adenoma", Description: "a benign growth of a parathyroid gland"},
	{Name: "adrenal adenoma", Category: "Endocrine", Keywords: []string{"adrenal adenoma", "adrenal nodule"}, ImageRef: articleBase + "adrenal-adenoma", Description: "a benign growth of an adrenal gland"},
	{Name: "pheochromocytoma", Category: "Endocrine", Keywords: []string{"pheochromocytoma", "phaeochromocytoma"}, ImageRef: articleBase + "phaeochromocytoma", Description: "a rare adrenal gland tumor"},
	{Name: "pituitary adenoma", Category: "Endocrine", Keywords: []string{"pituitary adenoma", "pituitary mass"}, ImageRef: articleBase + "pituitary-adenoma", Description: "a benign growth of the pituitary gland"},

	// Reproductive
	{Name: "ovarian cyst", Category: "Reproductive", Keywords: []string{"ovarian cyst", "adnexal cyst"}, ImageRef: articleBase + "ovarian-cyst", Description: "a fluid-filled sac on an ovary"},
	{Name: "uterine fibroids", Category: "Reproductive", Keywords: []string{"fibroid", "leiomyoma"}, ImageRef: articleBase + "uterine-fibroids", Description: "benign growths of the womb muscle"},
	{Name: "prostate enlargement", Category: "Reproductive", Keywords: []string{"prostatic hyperplasia", "enlarged prostate", "prostatomegaly"}, ImageRef: articleBase + "benign-prostatic-hyperplasia", Description: "a benign enlarged prostate gland"},
	{Name: "testicular torsion", Category: "Reproductive", Keywords: []string{"testicular torsion"}, ImageRef: articleBase + "testicular-torsion", Description: "a twisted testicle cutting off its blood supply"},

	// Oncology/Cancer
	{Name: "lymphoma", Category: "Oncology/Cancer", Keywords: []string{"lymphoma"}, ImageRef: articleBase + "lymphoma", Description: "a cancer of the lymph system"},
	{Name: "metastases", Category: "Oncology/Cancer", Keywords: []string{"metasta"}, ImageRef: articleBase + "metastases", Description: "cancer that has spread from where it started"},
	{Name: "breast cancer", Category: "Oncology/Cancer", Keywords: []string{"breast cancer", "breast carcinoma", "breast mass"}, ImageRef: articleBase + "breast-cancer", Description: "a cancer that starts in the breast"},
	{Name: "pancreatic cancer", Category: "Oncology/Cancer", Keywords: []string{"pancreatic adenocarcinoma", "pancreatic cancer", "pancreatic mass"}, ImageRef: articleBase + "pancreatic-adenocarcinoma", Description: "a cancer of the pancreas"},

	// Other Organs
	{Name: "splenomegaly", Category: "Other Organs", Keywords: []string{"splenomegaly", "enlarged spleen"}, ImageRef: articleBase + "splenomegaly", Description: "a spleen that is bigger than normal"},
	{Name: "splenic rupture", Category: "Other Organs", Keywords: []string{"splenic rupture", "splenic laceration", "splenic injury"}, ImageRef: articleBase + "splenic-injury", Description: "a torn spleen, often after an injury"},
	{Name: "ascites", Category: "Other Organs", Keywords: []string{"ascites"}, ImageRef: articleBase + "ascites", Description: "fluid collecting in the belly cavity"},
	{Name: "sinusitis", Category: "Other Organs", Keywords: []string{"sinusitis", "sinus disease", "mucosal thickening"}, ImageRef: articleBase + "acute-sinusitis", Description: "inflamed sinuses in the face"},
	{Name: "pancreatitis", Category: "Other Organs", Keywords: []string{"pancreatitis"}, ImageRef: articleBase + "acute-pancreatitis", Description: "an inflamed pancreas"},
	{Name: "pyelonephritis", Category: "Other Organs", Keywords: []string{"pyelonephritis"}, ImageRef: articleBase + "pyelonephritis", Description: "a kidney infection"},
	{Name: "inguinal hernia", Category: "Other Organs", Keywords: []string{"inguinal hernia"}, ImageRef: articleBase + "inguinal-hernia", Description: "tissue pushing through a weak spot in the groin"},
	{Name: "aortic calcification", Category: "Other Organs", Keywords: []string{"aortic calcification", "vascular calcification", "atherosclerotic calcification"}, ImageRef: articleBase + "aortic-calcification", Description: "hardened deposits in the wall of the main artery"},
}
