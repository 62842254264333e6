package domain

// SearchCriteria holds the structured search filters. Absent/empty fields
// impose no constraint.
type SearchCriteria struct {
	// Subject is matched case-insensitively against the review subject
	// (exact match). Empty means no subject constraint.
	Subject string
	// MinRating is an inclusive lower bound on stars. Nil means no bound.
	MinRating *float64
	// Keywords are matched case-insensitively as substrings of the review
	// text with OR semantics. Empty means no keyword constraint.
	Keywords []string
}

// HasSubject reports whether the subject filter is set.
func (c *SearchCriteria) HasSubject() bool { return c.Subject != "" }

// HasMinRating reports whether the minimum rating filter is set.
func (c *SearchCriteria) HasMinRating() bool { return c.MinRating != nil }

// HasKeywords reports whether the keyword filter is set.
func (c *SearchCriteria) HasKeywords() bool { return len(c.Keywords) > 0 }
