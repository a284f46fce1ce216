package model

// DefaultSections returns the canonical section list: one descriptor per
// content-section type, achievements hidden by default.
func DefaultSections() []Section {
	return []Section{
		{ID: "personalInfo", Type: SectionPersonalInfo, Title: "Personal Information", Visible: true, Order: 0},
		{ID: "summary", Type: SectionSummary, Title: "Professional Summary", Visible: true, Order: 1},
		{ID: "experience", Type: SectionExperience, Title: "Work Experience", Visible: true, Order: 2},
		{ID: "education", Type: SectionEducation, Title: "Education", Visible: true, Order: 3},
		{ID: "skills", Type: SectionSkills, Title: "Skills", Visible: true, Order: 4},
		{ID: "projects", Type: SectionProjects, Title: "Projects", Visible: true, Order: 5},
		{ID: "achievements", Type: SectionAchievements, Title: "Achievements", Visible: false, Order: 6},
	}
}

// DefaultResume returns the built-in sample document used when no stored
// snapshot exists and after a reset.
func DefaultResume() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			FullName: "John Doe",
			Email:    "john.doe@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "New York, NY",
			Website:  "https://johndoe.dev",
			LinkedIn: "linkedin.com/in/johndoe",
			GitHub:   "github.com/johndoe",
		},
		Summary: "Experienced software developer with expertise in React, Node.js, and cloud technologies. " +
			"Passionate about creating scalable web applications and leading development teams.",
		Experience: []Experience{
			{
				ID:        "1",
				Company:   "Tech Corp",
				Position:  "Senior Frontend Developer",
				StartDate: "2022-01",
				Current:   true,
				Description: `• Led development of React-based dashboard serving 10,000+ users\n` +
					`• Improved application performance by 40% through optimization\n` +
					`• Mentored junior developers and established coding standards`,
				Location: "New York, NY",
			},
			{
				ID:        "2",
				Company:   "StartupXYZ",
				Position:  "Full Stack Developer",
				StartDate: "2020-03",
				EndDate:   "2021-12",
				Description: `• Built and maintained RESTful APIs using Node.js and Express\n` +
					`• Developed responsive web applications with React and TypeScript\n` +
					`• Collaborated with design team to implement pixel-perfect UIs`,
				Location: "San Francisco, CA",
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "University of Technology",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				StartDate:   "2016-09",
				EndDate:     "2020-05",
				GPA:         "3.8",
			},
		},
		Skills: []Skill{
			{ID: "1", Name: "React", Level: LevelExpert, Category: "Frontend"},
			{ID: "2", Name: "TypeScript", Level: LevelAdvanced, Category: "Programming"},
			{ID: "3", Name: "Node.js", Level: LevelAdvanced, Category: "Backend"},
			{ID: "4", Name: "Python", Level: LevelIntermediate, Category: "Programming"},
			{ID: "5", Name: "AWS", Level: LevelIntermediate, Category: "Cloud"},
		},
		Projects: []Project{
			{
				ID:   "1",
				Name: "E-commerce Platform",
				Description: "Full-stack e-commerce solution with React frontend and Node.js backend, " +
					"supporting 1000+ concurrent users.",
				Technologies: []string{"React", "Node.js", "PostgreSQL", "AWS"},
				URL:          "https://demo-ecommerce.com",
				GitHub:       "https://github.com/johndoe/ecommerce",
				StartDate:    "2023-01",
				EndDate:      "2023-06",
			},
		},
		Achievements: []Achievement{
			{
				ID:          "1",
				Title:       "AWS Certified Developer",
				Description: "Amazon Web Services Certified Developer - Associate",
				Date:        "2023-03",
				Issuer:      "Amazon Web Services",
			},
		},
		Sections: DefaultSections(),
	}
}

// DefaultSettings returns the initial app settings.
func DefaultSettings() Settings {
	return Settings{
		CurrentTemplate: "professional",
		CurrentTheme:    "professional",
		DarkMode:        false,
		AutoSave:        true,
		ExportFormat:    "pdf",
	}
}
