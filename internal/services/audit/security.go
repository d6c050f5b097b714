package audit

import "leadfair/internal/domain"

// SecurityAudit is the business security checkup: four categories, three
// assessment questions each.
var SecurityAudit = &Audit{
	Variant: Security,
	Categories: []domain.Category{
		{
			Key:         "data-protection",
			Name:        "Data Protection",
			Description: "How well you protect customer and business data from loss or exposure.",
			Service:     "Automated Backups + Encryption",
			ServiceDesc: "LeadFair encrypts all data at rest and in transit. Customer info, messages, and payment data are protected automatically — no setup required from you.",
		},
		{
			Key:         "access-control",
			Name:        "Access & Passwords",
			Description: "How securely your team accesses business tools and accounts.",
			Service:     "Role-Based Access Control",
			ServiceDesc: "LeadFair gives each team member their own login with only the permissions they need. No shared passwords, no accidental access to sensitive data.",
		},
		{
			Key:         "payment-security",
			Name:        "Payment Security",
			Description: "How safely you handle customer payments and financial information.",
			Service:     "Stripe-Powered Payments",
			ServiceDesc: "LeadFair handles payments through Stripe — PCI compliant, encrypted, and secure. You never see or store credit card numbers directly.",
		},
		{
			Key:         "incident-readiness",
			Name:        "Incident Readiness",
			Description: "How prepared you are if something goes wrong — a breach, data loss, or scam.",
			Service:     "AI Security Monitoring",
			ServiceDesc: "LeadFair runs proprietary AI security monitoring that watches for emerging threats and vulnerabilities — so your business stays protected without you having to think about it.",
		},
	},
	Discovery: []domain.Question{
		{ID: "business-name", Phase: domain.PhaseDiscovery, Text: "What's your business name?", Kind: domain.KindText},
		{ID: "industry", Phase: domain.PhaseDiscovery, Text: "What industry are you in?", Kind: domain.KindSelect, Options: industryOptions},
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
			ID: "biggest-fear", Phase: domain.PhaseDiscovery, Text: "When it comes to security, what worries you most?",
			Subtext: "Could be data loss, getting hacked, scams — whatever comes to mind.", Kind: domain.KindTextarea,
		},
	},
	Assessment: []domain.Question{
		// Data Protection
		{
			ID: "backup-situation", Phase: domain.PhaseAssessment, Category: "data-protection",
			Text: "If your computer died right now, how much business data would you lose?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Everything — it's all on one device", Value: 1},
				{Label: "Most of it — some stuff is backed up", Value: 3},
				{Label: "Not much — we use cloud tools for most things", Value: 7},
				{Label: "Nothing — everything is backed up and recoverable", Value: 10},
			},
		},
		{
			ID: "customer-data-storage", Phase: domain.PhaseAssessment, Category: "data-protection",
			Text: "Where do you store customer information (names, emails, phone numbers)?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Spreadsheets, notes, or on paper", Value: 1},
				{Label: "A mix of tools — some organized, some not", Value: 3},
				{Label: "A CRM or dedicated business software", Value: 7},
				{Label: "A secure system with controlled access", Value: 10},
			},
		},
		{
			ID: "data-protection-confidence", Phase: domain.PhaseAssessment, Category: "data-protection",
			Text:    "How confident are you that customer data in your business is protected?",
			Subtext: "0 = No idea, honestly. 10 = Very confident — we've got it locked down.",
			Kind:    domain.KindSlider,
		},
		// Access & Passwords
		{
			ID: "password-sharing", Phase: domain.PhaseAssessment, Category: "access-control",
			Text: "Does your team share passwords for any business tools or accounts?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Yes — most accounts are shared", Value: 1},
				{Label: "A few shared accounts, but we're mostly separate", Value: 4},
				{Label: "Everyone has their own login", Value: 7},
				{Label: "Separate logins plus two-factor authentication", Value: 10},
			},
		},
		{
			ID: "ex-employee-access", Phase: domain.PhaseAssessment, Category: "access-control",
			Text: "When someone leaves your team, how quickly do you remove their access to business accounts?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "We don't really track that", Value: 1},
				{Label: "Eventually, when we remember", Value: 3},
				{Label: "Within a few days", Value: 7},
				{Label: "Same day — we have a process for it", Value: 10},
			},
		},
		{
			ID: "password-strength", Phase: domain.PhaseAssessment, Category: "access-control",
			Text:    "How strong are the passwords used across your business accounts?",
			Subtext: "0 = Same simple password everywhere. 10 = Unique strong passwords with a password manager.",
			Kind:    domain.KindSlider,
		},
		// Payment Security
		{
			ID: "payment-method", Phase: domain.PhaseAssessment, Category: "payment-security",
			Text: "How do you collect payments from customers?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Cash, checks, or Venmo/Zelle", Value: 2},
				{Label: "We take cards but sometimes manually enter numbers", Value: 4},
				{Label: "Online payments through a proper processor (Stripe, Square, etc.)", Value: 8},
				{Label: "Secure online payments — we never see card numbers", Value: 10},
			},
		},
		{
			ID: "financial-data-access", Phase: domain.PhaseAssessment, Category: "payment-security",
			Text: "How many people on your team have access to financial accounts or payment info?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Anyone can access them", Value: 1},
				{Label: "A few people, but no real controls", Value: 3},
				{Label: "Only 1-2 trusted people", Value: 7},
				{Label: "Restricted access with audit trails", Value: 10},
			},
		},
		{
			ID: "payment-security-confidence", Phase: domain.PhaseAssessment, Category: "payment-security",
			Text:    "How confident are you that your payment process is secure?",
			Subtext: "0 = Not sure at all. 10 = Fully secure and compliant.",
			Kind:    domain.KindSlider,
		},
		// Incident Readiness
		{
			ID: "scam-awareness", Phase: domain.PhaseAssessment, Category: "incident-readiness",
			Text: "Has your business ever been targeted by a scam, phishing email, or suspicious activity?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Yes, and we fell for it", Value: 1},
				{Label: "Yes, but we caught it in time", Value: 5},
				{Label: "Not that we know of", Value: 6},
				{Label: "Yes, and we have training to prevent it", Value: 10},
			},
		},
		{
			ID: "breach-plan", Phase: domain.PhaseAssessment, Category: "incident-readiness",
			Text: "If customer data was compromised tomorrow, would you know what to do?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "No idea — I'd panic", Value: 1},
				{Label: "I'd figure it out, but no plan exists", Value: 3},
				{Label: "I have a rough idea of the steps", Value: 6},
				{Label: "We have a documented response plan", Value: 10},
			},
		},
		{
			ID: "security-updates", Phase: domain.PhaseAssessment, Category: "incident-readiness",
			Text: "How often do you update software, plugins, or tools your business uses?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Never — if it works, we don't touch it", Value: 1},
				{Label: "When something breaks", Value: 3},
				{Label: "Every few months", Value: 6},
				{Label: "Regularly — updates happen automatically or on a schedule", Value: 10},
			},
		},
	},
}
