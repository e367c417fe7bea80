// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package catalog

// FormOptions are the suggestion lists offered to candidates filling in a profile.
type FormOptions struct {
	Education       []string `json:"education"`
	Skills          []string `json:"skills"`
	Locations       []string `json:"locations"`
	Sectors         []string `json:"sectors"`
	EmploymentTypes []string `json:"employmentTypes"`
}

// DefaultFormOptions returns the suggestion lists matching the bundled fixture.
func DefaultFormOptions() FormOptions {
	sectors := make([]string, len(Sectors))
	for i, s := range Sectors {
		sectors[i] = s.String()
	}

	types := make([]string, len(EmploymentTypes))
	for i, t := range EmploymentTypes {
		types[i] = t.String()
	}

	return FormOptions{
		Education: []string{
			"B.Tech", "BCA", "B.Sc Computer Science", "MCA", "B.Sc IT",
			"MBA", "B.Com", "BBA", "B.Des", "BFA", "BA English",
			"Journalism", "Mass Communication", "B.Sc Statistics",
			"B.Sc Mathematics", "CA", "CMA", "B.A Psychology",
			"Diploma in Design", AnyGraduate, "12th Pass",
		},
		Skills: []string{
			"JavaScript", "React", "Node.js", "HTML", "CSS", "Python", "Java",
			"SQL", "Excel", "Data Analysis", "Social Media", "Content Writing",
			"SEO", "Figma", "Adobe XD", "Photoshop", "Writing", "Communication",
			"Sales", "Marketing", "Finance", "Accounting", "HR", "Design",
			"Flutter", "React Native", "Kotlin", "Swift", "Analytics",
		},
		Locations: []string{
			"Mumbai, Maharashtra", "Delhi, Delhi", "Bangalore, Karnataka",
			"Pune, Maharashtra", "Hyderabad, Telangana", "Chennai, Tamil Nadu",
			"Kolkata, West Bengal", "Noida, Uttar Pradesh", "Ahmedabad, Gujarat",
			"Jaipur, Rajasthan", "Lucknow, Uttar Pradesh", "Bhopal, Madhya Pradesh",
			"Indore, Madhya Pradesh", "Nagpur, Maharashtra", "Surat, Gujarat",
			"Coimbatore, Tamil Nadu", "Kochi, Kerala", "Chandigarh, Punjab",
		},
		Sectors:         sectors,
		EmploymentTypes: types,
	}
}
