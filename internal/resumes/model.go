package resumes

import "time"

// Resume is a resume document owned by exactly one user.
type Resume struct {
	ID              string
	UserID          string
	Title           string
	Content         Content
	Completion      int
	ThumbnailKey    string
	ProfileImageKey string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Content is the structured body of a resume.
type Content struct {
	Profile        Profile         `json:"profile"`
	ContactInfo    ContactInfo     `json:"contactInfo"`
	WorkExperience []Experience    `json:"workExperience"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Languages      []Skill         `json:"languages"`
	Interests      []string        `json:"interests"`
	Template       Template        `json:"template"`
}

// Profile is the headline section of a resume.
type Profile struct {
	FullName    string `json:"fullName"`
	Designation string `json:"designation"`
	Summary     string `json:"summary"`
}

// ContactInfo carries ways to reach the resume owner.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// Experience is a single work-history entry.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Skill is a named skill or language with a 0-100 proficiency.
type Skill struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// Project is a portfolio entry.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHub      string `json:"github"`
	LiveDemo    string `json:"liveDemo"`
}

// Certification is a single certification entry.
type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// Template selects the render theme chosen in the editor.
type Template struct {
	Theme        string   `json:"theme"`
	ColorPalette []string `json:"colorPalette"`
}
