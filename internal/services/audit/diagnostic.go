package audit

import "leadfair/internal/domain"

// DiagnosticAudit is the general business diagnostic: five categories, three
// assessment questions each, scored 0-10.
var DiagnosticAudit = &Audit{
	Variant: Diagnostic,
	Categories: []domain.Category{
		{
			Key:         "lead-generation",
			Name:        "Lead Generation",
			Description: "How effectively you attract and capture new potential customers.",
			Service:     "AI Receptionist",
			ServiceDesc: "Never miss a call, text, or inquiry again. An AI that answers 24/7, captures lead info, and sends booking links — so every potential customer gets a response in seconds.",
		},
		{
			Key:         "sales-conversion",
			Name:        "Sales & Conversion",
			Description: "How well you turn interested people into paying customers.",
			Service:     "AI Receptionist + Automations",
			ServiceDesc: "Automated follow-up sequences, instant booking links, and an AI that handles the back-and-forth so leads don't go cold while you're busy.",
		},
		{
			Key:         "customer-retention",
			Name:        "Customer Retention",
			Description: "How well you keep existing customers engaged and coming back.",
			Service:     "Automations",
			ServiceDesc: "Automated check-ins, reminders, and re-engagement sequences that keep your customers coming back — without you having to remember to follow up.",
		},
		{
			Key:         "marketing-visibility",
			Name:        "Marketing & Visibility",
			Description: "How easily people can find your business when they're looking.",
			Service:     "Visibility",
			ServiceDesc: "Get found on Google, show up when people ask AI tools like ChatGPT for recommendations, and make sure your online presence actually drives business.",
		},
		{
			Key:         "operations",
			Name:        "Operations & Efficiency",
			Description: "How streamlined and automated your day-to-day business processes are.",
			Service:     "Company Companion",
			ServiceDesc: "An AI trained on your business knowledge that your team can ask anything — policies, procedures, pricing, how-to. Stops you from being the bottleneck for every question.",
		},
	},
	Discovery: []domain.Question{
		{ID: "business-name", Phase: domain.PhaseDiscovery, Text: "What's your business name?", Kind: domain.KindText},
		{
			ID: "industry", Phase: domain.PhaseDiscovery, Text: "What industry are you in?", Kind: domain.KindSelect,
			Options: industryOptions,
		},
		{
			ID: "team-size", Phase: domain.PhaseDiscovery, Text: "How big is your team?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Just me", Value: "1"},
				{Label: "2–5 people", Value: "2-5"},
				{Label: "6–15 people", Value: "6-15"},
				{Label: "16–50 people", Value: "16-50"},
				{Label: "50+", Value: "50+"},
			},
		},
		{
			ID: "years", Phase: domain.PhaseDiscovery, Text: "How long have you been in business?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Less than a year", Value: "<1"},
				{Label: "1–3 years", Value: "1-3"},
				{Label: "3–5 years", Value: "3-5"},
				{Label: "5–10 years", Value: "5-10"},
				{Label: "10+ years", Value: "10+"},
			},
		},
		{
			ID: "challenge", Phase: domain.PhaseDiscovery, Text: "What's your biggest challenge right now?",
			Subtext: "No wrong answers — just tell us what's on your mind.", Kind: domain.KindTextarea,
		},
	},
	Assessment: []domain.Question{
		// Lead Generation
		{
			ID: "lead-consistency", Phase: domain.PhaseAssessment, Category: "lead-generation",
			Text:    "How consistently do new leads come into your business?",
			Subtext: "0 = We have no idea where leads come from. 10 = Steady, predictable flow every week.",
			Kind:    domain.KindSlider,
		},
		{
			ID: "lead-channels", Phase: domain.PhaseAssessment, Category: "lead-generation",
			Text: "How do most potential customers find you?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Word of mouth only", Value: 2},
				{Label: "Some online presence, but mostly referrals", Value: 4},
				{Label: "Active marketing across a few channels", Value: 7},
				{Label: "Multiple channels driving leads consistently", Value: 10},
			},
		},
		{
			ID: "lead-afterhours", Phase: domain.PhaseAssessment, Category: "lead-generation",
			Text: "When someone contacts your business after hours, what happens?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "They get voicemail or nothing", Value: 1},
				{Label: "Sometimes we catch them, sometimes we don't", Value: 3},
				{Label: "We have a system but it's inconsistent", Value: 6},
				{Label: "Every inquiry gets a response within minutes", Value: 10},
			},
		},
		// Sales & Conversion
		{
			ID: "conversion-rate", Phase: domain.PhaseAssessment, Category: "sales-conversion",
			Text: "What percentage of your leads become paying customers?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Less than 10%", Value: 2},
				{Label: "10–25%", Value: 4},
				{Label: "25–50%", Value: 7},
				{Label: "Over 50%", Value: 10},
			},
		},
		{
			ID: "sales-process", Phase: domain.PhaseAssessment, Category: "sales-conversion",
			Text:    "How structured is your sales process?",
			Subtext: "0 = No real process, we wing it. 10 = Clear steps from first contact to close.",
			Kind:    domain.KindSlider,
		},
		{
			ID: "lead-followup", Phase: domain.PhaseAssessment, Category: "sales-conversion",
			Text: "When a lead doesn't buy right away, what happens next?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Nothing — we move on", Value: 1},
				{Label: "We follow up manually when we remember", Value: 3},
				{Label: "We have a follow-up process but it's manual", Value: 6},
				{Label: "Automated sequences handle it", Value: 10},
			},
		},
		// Customer Retention
		{
			ID: "customer-outreach", Phase: domain.PhaseAssessment, Category: "customer-retention",
			Text: "How often do you proactively reach out to existing customers?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Rarely or never", Value: 1},
				{Label: "A few times a year", Value: 3},
				{Label: "Monthly", Value: 7},
				{Label: "Weekly or more", Value: 10},
			},
		},
		{
			ID: "retention-rating", Phase: domain.PhaseAssessment, Category: "customer-retention",
			Text:    "How well do you retain your customers over time?",
			Subtext: "0 = Most are one-and-done. 10 = Customers stay for years.",
			Kind:    domain.KindSlider,
		},
		{
			ID: "upsell-referral", Phase: domain.PhaseAssessment, Category: "customer-retention",
			Text: "Do you have systems for upselling or getting referrals from happy customers?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "No, not really", Value: 1},
				{Label: "We ask sometimes but it's ad hoc", Value: 3},
				{Label: "We have a process for it", Value: 7},
				{Label: "It's automated and consistent", Value: 10},
			},
		},
		// Marketing & Visibility
		{
			ID: "findability", Phase: domain.PhaseAssessment, Category: "marketing-visibility",
			Text:    "If someone searched for your type of business in your area, how easily would they find you?",
			Subtext: "0 = We're invisible online. 10 = We're the first result.",
			Kind:    domain.KindSlider,
		},
		{
			ID: "gbp-management", Phase: domain.PhaseAssessment, Category: "marketing-visibility",
			Text: "Do you actively manage your Google Business Profile?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "What's that?", Value: 1},
				{Label: "We set it up but don't maintain it", Value: 3},
				{Label: "We update it occasionally", Value: 6},
				{Label: "We actively manage it — posts, photos, reviews", Value: 10},
			},
		},
		{
			ID: "content-consistency", Phase: domain.PhaseAssessment, Category: "marketing-visibility",
			Text:    "How consistent is your online content or social media presence?",
			Subtext: "0 = We haven't posted in months. 10 = We publish regularly and it drives business.",
			Kind:    domain.KindSlider,
		},
		// Operations & Efficiency
		{
			ID: "process-docs", Phase: domain.PhaseAssessment, Category: "operations",
			Text:    "How well are your business processes documented?",
			Subtext: "0 = Nothing is written down, it's all in my head. 10 = Everything is documented and accessible.",
			Kind:    domain.KindSlider,
		},
		{
			ID: "automation-level", Phase: domain.PhaseAssessment, Category: "operations",
			Text: "How much of your repetitive work is automated?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Almost nothing — it's all manual", Value: 1},
				{Label: "A few things here and there", Value: 3},
				{Label: "About half of routine tasks", Value: 6},
				{Label: "Most routine tasks run on autopilot", Value: 10},
			},
		},
		{
			ID: "repeated-questions", Phase: domain.PhaseAssessment, Category: "operations",
			Text: "How often do you or your team answer the same questions over and over?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Constantly — it eats up our day", Value: 1},
				{Label: "Several times a day", Value: 3},
				{Label: "Occasionally", Value: 7},
				{Label: "Rarely — we have systems for that", Value: 10},
			},
		},
	},
}

// industryOptions is shared by every audit's discovery phase.
var industryOptions = []domain.Option{
	{Label: "Home Services (plumbing, HVAC, electrical, etc.)", Value: "home-services"},
	{Label: "Health & Wellness (med spa, chiro, dental, etc.)", Value: "health-wellness"},
	{Label: "Professional Services (law, accounting, consulting)", Value: "professional-services"},
	{Label: "Fitness & Recreation", Value: "fitness"},
	{Label: "Education & Tutoring", Value: "education"},
	{Label: "Food & Hospitality", Value: "food-hospitality"},
	{Label: "Real Estate", Value: "real-estate"},
	{Label: "Retail", Value: "retail"},
	{Label: "Auto (repair, detail, sales)", Value: "auto"},
	{Label: "Other", Value: "other"},
}
