// Internmatch - Internship Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package catalog

// DefaultPostings returns the bundled internship fixture.
// Each call returns fresh slices.
func DefaultPostings() []Posting {
	return []Posting{
		{
			ID:           1,
			Title:        "Software Development Intern",
			Company:      "Tech Solutions Pvt Ltd",
			Location:     "Mumbai, Maharashtra",
			Sector:       SectorTechnology,
			Duration:     "6 months",
			Stipend:      "₹15,000/month",
			Skills:       []string{"JavaScript", "React", "Node.js", "HTML", "CSS"},
			Education:    []string{"B.Tech", "BCA", "B.Sc Computer Science"},
			Description:  "Develop web applications using modern JavaScript frameworks",
			Requirements: []string{"Basic programming knowledge", "Problem-solving skills"},
			Type:         TypeFullTime,
		},
		{
			ID:           2,
			Title:        "Digital Marketing Intern",
			Company:      "MarketPro Agency",
			Location:     "Delhi, Delhi",
			Sector:       SectorMarketing,
			Duration:     "4 months",
			Stipend:      "₹12,000/month",
			Skills:       []string{"Social Media", "Content Writing", "SEO", "Analytics"},
			Education:    []string{"MBA", "B.Com", "BBA", AnyGraduate},
			Description:  "Assist in digital marketing campaigns and social media management",
			Requirements: []string{"Creative thinking", "Communication skills"},
			Type:         TypeFullTime,
		},
		{
			ID:           3,
			Title:        "Data Analytics Intern",
			Company:      "DataInsights Corp",
			Location:     "Bangalore, Karnataka",
			Sector:       SectorAnalytics,
			Duration:     "6 months",
			Stipend:      "₹18,000/month",
			Skills:       []string{"Python", "SQL", "Excel", "Statistics", "Data Visualization"},
			Education:    []string{"B.Tech", "B.Sc Statistics", "B.Sc Mathematics", "MCA"},
			Description:  "Analyze business data and create insights for decision making",
			Requirements: []string{"Analytical mindset", "Attention to detail"},
			Type:         TypeFullTime,
		},
		{
			ID:           4,
			Title:        "UI/UX Design Intern",
			Company:      "Creative Studios",
			Location:     "Pune, Maharashtra",
			Sector:       SectorDesign,
			Duration:     "5 months",
			Stipend:      "₹14,000/month",
			Skills:       []string{"Figma", "Adobe XD", "Photoshop", "User Research", "Prototyping"},
			Education:    []string{"B.Des", "BFA", "B.Tech", AnyGraduate},
			Description:  "Design user interfaces and improve user experience",
			Requirements: []string{"Creative skills", "Design thinking"},
			Type:         TypeFullTime,
		},
		{
			ID:           5,
			Title:        "Content Writing Intern",
			Company:      "WordCraft Media",
			Location:     "Hyderabad, Telangana",
			Sector:       SectorMedia,
			Duration:     "4 months",
			Stipend:      "₹10,000/month",
			Skills:       []string{"Writing", "Research", "SEO Writing", "Content Strategy"},
			Education:    []string{"BA English", "Journalism", "Mass Communication", AnyGraduate},
			Description:  "Create engaging content for various digital platforms",
			Requirements: []string{"Excellent writing skills", "Research abilities"},
			Type:         TypePartTime,
		},
		{
			ID:           6,
			Title:        "Finance Intern",
			Company:      "FinServ Solutions",
			Location:     "Chennai, Tamil Nadu",
			Sector:       SectorFinance,
			Duration:     "6 months",
			Stipend:      "₹16,000/month",
			Skills:       []string{"Excel", "Financial Analysis", "Accounting", "Taxation"},
			Education:    []string{"B.Com", "BBA Finance", "CA", "CMA"},
			Description:  "Assist in financial analysis and reporting",
			Requirements: []string{"Numerical skills", "Attention to detail"},
			Type:         TypeFullTime,
		},
		{
			ID:           7,
			Title:        "HR Intern",
			Company:      "PeopleFirst HR",
			Location:     "Kolkata, West Bengal",
			Sector:       SectorHumanResources,
			Duration:     "5 months",
			Stipend:      "₹11,000/month",
			Skills:       []string{"Communication", "Recruitment", "Employee Relations", "HR Policies"},
			Education:    []string{"MBA HR", "BBA", "B.A Psychology", AnyGraduate},
			Description:  "Support HR operations and recruitment processes",
			Requirements: []string{"Interpersonal skills", "Organizational abilities"},
			Type:         TypeFullTime,
		},
		{
			ID:           8,
			Title:        "Mobile App Development Intern",
			Company:      "AppMakers Inc",
			Location:     "Noida, Uttar Pradesh",
			Sector:       SectorTechnology,
			Duration:     "6 months",
			Stipend:      "₹17,000/month",
			Skills:       []string{"Flutter", "React Native", "Java", "Kotlin", "Swift"},
			Education:    []string{"B.Tech", "MCA", "B.Sc IT"},
			Description:  "Develop mobile applications for Android and iOS",
			Requirements: []string{"Mobile development interest", "Problem-solving"},
			Type:         TypeFullTime,
		},
		{
			ID:           9,
			Title:        "Business Development Intern",
			Company:      "GrowthMax Consulting",
			Location:     "Ahmedabad, Gujarat",
			Sector:       SectorBusinessDevelopment,
			Duration:     "4 months",
			Stipend:      "₹13,000/month",
			Skills:       []string{"Sales", "Market Research", "Client Relations", "Presentation"},
			Education:    []string{"MBA", "BBA", "B.Com", AnyGraduate},
			Description:  "Identify business opportunities and support client acquisition",
			Requirements: []string{"Communication skills", "Business acumen"},
			Type:         TypeFullTime,
		},
		{
			ID:           10,
			Title:        "Graphic Design Intern",
			Company:      "Visual Arts Studio",
			Location:     "Jaipur, Rajasthan",
			Sector:       SectorDesign,
			Duration:     "5 months",
			Stipend:      "₹12,500/month",
			Skills:       []string{"Photoshop", "Illustrator", "InDesign", "Branding", "Typography"},
			Education:    []string{"B.Des", "BFA", "Diploma in Design", AnyGraduate},
			Description:  "Create visual designs for marketing materials and branding",
			Requirements: []string{"Creative skills", "Visual design sense"},
			Type:         TypePartTime,
		},
	}
}

// Default returns a catalog built from DefaultPostings.
// It panics if the fixture is invalid, which a unit test guards against.
func Default() *Catalog {
	c, err := New(DefaultPostings())
	if err != nil {
		panic("catalog: invalid default fixture: " + err.Error())
	}
	return c
}
