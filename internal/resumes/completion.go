package resumes

// Section weights sum to 100. Repeating sections score proportionally to how
// many of their entries are filled in.
const (
	profileWeight        = 20
	contactWeight        = 10
	experienceWeight     = 25
	educationWeight      = 15
	skillsWeight         = 15
	projectsWeight       = 10
	certificationsWeight = 5
)

// completionPercent derives the completion percentage from the content. It is
// recomputed on every write so stored rows never go stale.
func completionPercent(c Content) int {
	score := 0

	score += fractionOf(profileWeight, countFilled(c.Profile.FullName, c.Profile.Designation, c.Profile.Summary), 3)
	score += fractionOf(contactWeight, countFilled(c.ContactInfo.Email, c.ContactInfo.Phone), 2)

	score += ratioScore(experienceWeight, len(c.WorkExperience), func(i int) bool {
		e := c.WorkExperience[i]
		return e.Company != "" && e.Role != "" && e.StartDate != ""
	})
	score += ratioScore(educationWeight, len(c.Education), func(i int) bool {
		e := c.Education[i]
		return e.Degree != "" && e.Institution != ""
	})
	score += ratioScore(skillsWeight, len(c.Skills), func(i int) bool {
		return c.Skills[i].Name != ""
	})
	score += ratioScore(projectsWeight, len(c.Projects), func(i int) bool {
		return c.Projects[i].Title != ""
	})
	score += ratioScore(certificationsWeight, len(c.Certifications), func(i int) bool {
		e := c.Certifications[i]
		return e.Title != "" && e.Issuer != ""
	})

	if score > 100 {
		score = 100
	}
	return score
}

func countFilled(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}

func fractionOf(weight, filled, total int) int {
	if total <= 0 {
		return 0
	}
	return weight * filled / total
}

func ratioScore(weight, count int, complete func(i int) bool) int {
	if count == 0 {
		return 0
	}
	filled := 0
	for i := 0; i < count; i++ {
		if complete(i) {
			filled++
		}
	}
	return weight * filled / count
}
