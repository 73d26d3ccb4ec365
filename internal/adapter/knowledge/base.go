package knowledge

import "legalqa/internal/domain"

const (
	digitalSecurityAct = "Digital Security Act 2018"
	oppressionAct      = "Prevention of Oppression Against Women and Children Act 2000"
	childrenAct        = "Children Act 2013"
)

var entries = map[string]Entry{
	"unauthorized_access": {
		Category:    domain.CategoryCyberCrime,
		Description: "Unauthorized access to computer systems or networks",
		Sections:    []string{"Section 32", "Section 54"},
		Penalties:   "Up to 5 years imprisonment and/or fine up to 10 lakh taka",
		Act:         digitalSecurityAct,
		Procedures: []string{
			"File complaint with local police cyber crime unit",
			"Preserve digital evidence (screenshots, logs, etc.)",
			"Contact nearest Digital Security Agency office",
			"Gather witness statements if available",
		},
	},
	"hacking": {
		Category:    domain.CategoryCyberCrime,
		Description: "Unauthorized intrusion into computer systems with intent to damage or steal data",
		Sections:    []string{"Section 32", "Section 33", "Section 43"},
		Penalties:   "Up to 7 years imprisonment and/or fine up to 25 lakh taka",
		Act:         digitalSecurityAct,
		Procedures: []string{
			"Immediately change all passwords and secure accounts",
			"Document the intrusion with timestamps and evidence",
			"File FIR at cyber crime police station",
			"Report to Bangladesh Computer Emergency Response Team (BD-CERT)",
		},
	},
	"data_breach": {
		Category:    domain.CategoryCyberCrime,
		Description: "Unauthorized access to or disclosure of personal data",
		Sections:    []string{"Section 26", "Section 32"},
		Penalties:   "Up to 3 years imprisonment and/or fine up to 5 lakh taka",
		Act:         digitalSecurityAct,
		Procedures: []string{
			"Report to Data Protection Authority",
			"File complaint with ICT Division",
			"Preserve evidence of data compromise",
			"Notify affected parties if required",
		},
	},
	"identity_theft": {
		Category:    domain.CategoryCyberCrime,
		Description: "Using someone else's digital identity without authorization",
		Sections:    []string{"Section 28", "Section 57"},
		Penalties:   "Up to 5 years imprisonment and/or fine up to 10 lakh taka",
		Act:         digitalSecurityAct,
		Procedures: []string{
			"File complaint with local police",
			"Report to relevant online platforms",
			"Gather evidence of misuse",
			"Contact financial institutions if applicable",
		},
	},
	"computer_fraud": {
		Category:    domain.CategoryCyberCrime,
		Description: "Using computer systems to commit fraud or financial crimes",
		Sections:    []string{"Section 35", "Section 36"},
		Penalties:   "Up to 10 years imprisonment and/or fine up to 50 lakh taka",
		Act:         digitalSecurityAct,
		Procedures: []string{
			"File FIR with cyber crime police",
			"Report to Bangladesh Bank if financial fraud",
			"Preserve transaction records and communications",
			"Contact legal counsel for complex cases",
		},
	},

	"domestic_violence": {
		Category:    domain.CategoryWomensRights,
		Description: "Physical, mental, or sexual abuse against women or children within domestic relationships",
		Sections:    []string{"Prevention of Oppression Against Women and Children Act, Sections 9, 10, 11"},
		Penalties:   "Up to 14 years imprisonment depending on severity and/or fine",
		Act:         oppressionAct,
		Procedures: []string{
			"File complaint with nearest police station or Women and Children Repression Prevention Tribunal",
			"Preserve medical evidence if there are physical injuries",
			"Contact legal aid for assistance",
			"Apply for protective orders if needed",
		},
	},
	"sexual_harassment": {
		Category:    domain.CategoryWomensRights,
		Description: "Unwanted sexual behavior including physical advances, remarks, or requests for sexual favors",
		Sections:    []string{"Prevention of Oppression Against Women and Children Act, Sections 9, 10"},
		Penalties:   "Up to 10 years imprisonment and/or fine",
		Act:         oppressionAct,
		Procedures: []string{
			"Report to police station or Women and Children Repression Prevention Tribunal",
			"Document all incidents with dates and times",
			"Identify witnesses if available",
			"Seek support from women's rights organizations",
		},
	},
	"dowry_related_crimes": {
		Category:    domain.CategoryWomensRights,
		Description: "Demanding, giving, or taking dowry; violence or death related to dowry demands",
		Sections:    []string{"Dowry Prohibition Act 1980", "Prevention of Oppression Against Women and Children Act, Section 11"},
		Penalties:   "Up to life imprisonment for dowry deaths and 1-5 years for demanding dowry",
		Act:         "Dowry Prohibition Act 1980",
		Procedures: []string{
			"File complaint with nearest police station",
			"Report to Women and Children Repression Prevention Tribunal",
			"Preserve evidence of dowry demands (messages, witnesses)",
			"Seek protection orders if facing threats",
		},
	},
	"human_trafficking": {
		Category:    domain.CategoryWomensRights,
		Description: "Trafficking of women and children for sexual exploitation, labor, or other purposes",
		Sections:    []string{"Prevention and Suppression of Human Trafficking Act 2012"},
		Penalties:   "Up to life imprisonment or death penalty in severe cases",
		Act:         "Prevention and Suppression of Human Trafficking Act 2012",
		Procedures: []string{
			"Report to Anti-Human Trafficking Offence Tribunal",
			"Contact specialized NGOs working with trafficking victims",
			"Victim is entitled to protection, rehabilitation, and compensation",
			"Government provides legal aid and protective custody",
		},
	},

	"child_abuse": {
		Category:    domain.CategoryChildrensRights,
		Description: "Physical, emotional, or sexual abuse of children, including exploitation and neglect",
		Sections:    []string{"Children Act 2013, Sections 70-76", "Prevention of Oppression Against Women and Children Act"},
		Penalties:   "Up to 14 years imprisonment depending on severity and/or fine",
		Act:         childrenAct,
		Procedures: []string{
			"Report to Child Affairs Police Officer or nearest police station",
			"Contact Department of Social Services or Child Welfare Board",
			"Ensure child receives medical examination if needed",
			"Child may be placed in protective custody during investigation",
		},
	},
	"child_marriage": {
		Category:    domain.CategoryChildrensRights,
		Description: "Marriage of girls under 18 years and boys under 21 years of age",
		Sections:    []string{"Child Marriage Restraint Act 2017"},
		Penalties:   "Imprisonment up to 2 years and/or fine up to 50,000 taka",
		Act:         "Child Marriage Restraint Act 2017",
		Procedures: []string{
			"Report to local government officials or police",
			"Contact Child Welfare Board",
			"Provide information about the child and family",
			"Legal action can be taken against parents, guardians and marriage officiators",
		},
	},
	"child_labor": {
		Category:    domain.CategoryChildrensRights,
		Description: "Employment of children below the minimum working age or in hazardous work",
		Sections:    []string{"Bangladesh Labour Act 2006, Sections 34-44", "Children Act 2013, Section 79"},
		Penalties:   "Fine up to 5,000 taka under the Labour Act; imprisonment up to 5 years for exploitative employment under the Children Act",
		Act:         "Bangladesh Labour Act 2006",
		Procedures: []string{
			"Report to the Department of Inspection for Factories and Establishments",
			"Contact the Child Helpline 1098 or nearest police station",
			"Inform the Child Welfare Board or a Probation Officer",
			"Seek rehabilitation support from social services",
		},
	},
	"child_education": {
		Category:    domain.CategoryChildrensRights,
		Description: "Denial of a child's right to free and compulsory primary education",
		Sections:    []string{"Primary Education (Compulsory) Act 1990", "Children Act 2013"},
		Penalties:   "Fine against guardians who fail to send a child to primary school without reasonable cause",
		Act:         "Primary Education (Compulsory) Act 1990",
		Procedures: []string{
			"Contact the local Upazila Education Office",
			"Raise the issue with the school management committee",
			"Inform the Child Welfare Board if the child is kept from school for work or marriage",
			"Seek help from legal aid services if admission is refused",
		},
	},
}

var helplines = map[domain.Category][]Helpline{
	domain.CategoryCyberCrime: {
		{Name: "Police Emergency", Contact: "999"},
		{Name: "Bangladesh Computer Emergency Response Team (BD-CERT)", Contact: "cirt.gov.bd"},
		{Name: "National Legal Aid Services Organization", Contact: "16430"},
	},
	domain.CategoryWomensRights: {
		{Name: "National Helpline for Violence Against Women and Children", Contact: "109"},
		{Name: "Police Emergency", Contact: "999"},
		{Name: "National Legal Aid Services Organization", Contact: "16430"},
		{Name: "Bangladesh National Woman Lawyers' Association", Contact: "+880-2-8321461"},
		{Name: "Ain o Salish Kendra (ASK)", Contact: "+880-2-8614954"},
	},
	domain.CategoryChildrensRights: {
		{Name: "Child Helpline", Contact: "1098"},
		{Name: "National Helpline for Violence Against Women and Children", Contact: "109"},
		{Name: "Police Emergency", Contact: "999"},
		{Name: "National Legal Aid Services Organization", Contact: "16430"},
	},
}

var disclaimers = map[domain.Category]string{
	domain.CategoryCyberCrime: "This information is based on available legal documents and general legal principles. " +
		"For your specific case, especially with evidence and known perpetrator, consult with a qualified lawyer " +
		"or visit the nearest cyber crime police station for immediate assistance.",
	domain.CategoryWomensRights: "This information is provided as general guidance only. For your specific situation, " +
		"please consult with a qualified legal professional or contact a women's support organization.",
	domain.CategoryChildrensRights: "This information is provided as general guidance only. For child protection matters, " +
		"please consult with a qualified legal professional or contact the Department of Social Services or Child Welfare Board.",
}

const defaultDisclaimer = "This information is based on available legal documents and general legal principles. " +
	"It is not legal advice. For your specific situation, consult with a qualified lawyer."
