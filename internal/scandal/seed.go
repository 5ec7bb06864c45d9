package scandal

// Seed returns the static fallback dataset: fully populated example events
// served when every live provider came back empty. No external dependency is
// involved, so this path always succeeds.
func Seed() []Event {
	events := []Event{
		{
			ID:         "evt-001",
			EntityName: "Brand A",
			Title:      "Misleading Environmental Claims in Ad Campaign",
			Date:       "2023-05-14",
			Description: "Brand A faced backlash for overstating the eco-friendliness " +
				"of its products in a widely distributed campaign.",
			Categories: []string{"advertising", "greenwashing"},
			Sources: []SourceLink{
				{URL: "https://newsroom.example.com/a", Publisher: "Example News", ReliabilityScore: 82},
				{URL: "https://investigate.example.org/a", Publisher: "Investigate Org", ReliabilityScore: 90},
			},
			BaseScore:       62,
			IdeologicalTilt: -20,
		},
		{
			ID:         "evt-002",
			EntityName: "Public Figure B",
			Title:      "Donation to Politically Controversial PAC",
			Date:       "2024-01-08",
			Description: "Public Figure B donated to a PAC associated with policies " +
				"that are polarizing across the ideological spectrum.",
			Categories: []string{"politics", "finance"},
			Sources: []SourceLink{
				{URL: "https://paper.example.net/b", Publisher: "Daily Paper", ReliabilityScore: 78},
				{URL: "https://records.example.gov/b", Publisher: "Public Records", ReliabilityScore: 95},
			},
			BaseScore:       70,
			IdeologicalTilt: 35,
		},
		{
			ID:         "evt-003",
			EntityName: "Brand C",
			Title:      "Labor Practice Violations at Supplier",
			Date:       "2022-11-27",
			Description: "Investigations revealed labor violations at a supplier " +
				"facility within Brand C's supply chain.",
			Categories: []string{"labor", "supply-chain"},
			Sources: []SourceLink{
				{URL: "https://globalwatch.example.com/c", Publisher: "Global Watch", ReliabilityScore: 88},
				{URL: "https://journal.example.com/c", Publisher: "Investigative Journal", ReliabilityScore: 84},
			},
			BaseScore:       75,
			IdeologicalTilt: -5,
		},
		{
			ID:         "evt-004",
			EntityName: "Public Figure D",
			Title:      "Controversial Comments on Social Media",
			Date:       "2025-03-03",
			Description: "A series of posts led to controversy and boycotts among " +
				"certain audience segments.",
			Categories: []string{"social", "speech"},
			Sources: []SourceLink{
				{URL: "https://platform.example/social-d", Publisher: "Social Platform", ReliabilityScore: 70},
				{URL: "https://factcheck.example/d", Publisher: "FactCheck", ReliabilityScore: 90},
			},
			BaseScore:       55,
			IdeologicalTilt: 50,
		},
		{
			ID:         "evt-005",
			EntityName: "Brand E",
			Title:      "Data Privacy Breach Affecting Customers",
			Date:       "2023-09-16",
			Description: "Data breach exposed user information due to inadequate " +
				"security configurations.",
			Categories: []string{"privacy", "security"},
			Sources: []SourceLink{
				{URL: "https://technews.example/e", Publisher: "Tech News", ReliabilityScore: 80},
				{URL: "https://regulator.example.gov/e", Publisher: "Regulator", ReliabilityScore: 92},
			},
			BaseScore:       68,
			IdeologicalTilt: 0,
		},
		{
			ID:         "evt-006",
			EntityName: "Brand A",
			Title:      "Sponsorship of Polarizing Event",
			Date:       "2024-07-22",
			Description: "Brand A sponsored an event that is positively received by " +
				"conservatives but criticized by liberals.",
			Categories: []string{"sponsorship", "politics"},
			Sources: []SourceLink{
				{URL: "https://localpaper.example/a", Publisher: "Local Paper", ReliabilityScore: 72},
				{URL: "https://ngo.example/a", Publisher: "NGO Watch", ReliabilityScore: 87},
			},
			BaseScore:       58,
			IdeologicalTilt: 60,
		},
	}

	return events
}
