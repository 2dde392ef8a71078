package orgscout

// CategoryRule maps a category label to the keywords that select it.
type CategoryRule struct {
	Category Category
	Keywords []string
}

// DefaultCategoryRules returns the classification table in priority order.
// The first rule with any keyword hit wins, so the order is significant:
// "honor" makes a Greek-lettered honor society Academic, not Greek Life.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{CategoryAcademic, []string{
			"academic", "honor society", "honor", "scholarship", "study", "research",
			"education", "phi theta kappa", "national honor", "dean's list",
		}},
		{CategoryArts, []string{
			"art", "music", "theater", "theatre", "dance", "creative", "band", "choir",
			"drama", "visual", "performing",
		}},
		{CategoryAthletics, []string{
			"sport", "athletic", "team", "recreation", "fitness", "basketball",
			"football", "soccer", "baseball", "volleyball",
		}},
		{CategoryCultural, []string{
			"cultural", "international", "heritage", "ethnic", "diversity",
			"multicultural", "african american", "hispanic", "asian",
		}},
		{CategoryGreekLife, []string{
			"fraternity", "sorority", "greek", "alpha", "beta", "gamma", "delta",
			"theta", "phi", "sigma",
		}},
		{CategoryProfessional, []string{
			"professional", "career", "business", "engineering", "medical", "law",
			"nursing", "technology",
		}},
		{CategoryReligious, []string{
			"christian", "muslim", "jewish", "faith", "religious", "ministry",
			"chapel", "church", "bible", "spiritual",
		}},
		{CategoryService, []string{
			"service", "volunteer", "community", "outreach", "charity", "help",
			"support", "humanitarian", "social service",
		}},
		{CategoryStudentGovernment, []string{
			"student government", "sga", "student association", "student council",
			"government", "leadership",
		}},
		{CategorySpecialInterest, []string{
			"gaming", "anime", "computer", "environment", "outdoor", "photography",
			"cooking", "debate", "chess", "robotics",
		}},
	}
}
