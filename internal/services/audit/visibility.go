package audit

import "leadfair/internal/domain"

// VisibilityAudit is the online-visibility audit: three categories, five
// assessment questions each. It is the only variant that tracks weak
// questions and carries per-category action lists.
var VisibilityAudit = &Audit{
	Variant:   Visibility,
	TrackWeak: true,
	Categories: []domain.Category{
		{
			Key:         "search-visibility",
			Name:        "Search Visibility",
			Color:       "#10b981",
			Description: "How well your business shows up when people search on Google.",
			Service:     "SEO & Website Optimization",
			ServiceDesc: "Get your website ranking higher on Google with proper SEO, mobile optimization, and structured data — so customers find you instead of your competitors.",
			Actions: []string{
				"Optimize your website for mobile and page speed",
				"Add structured data (schema markup) so Google understands your business",
				"Create service-specific landing pages targeting your city",
				"Start publishing helpful content that answers what your customers search for",
				"Set up Google Search Console to track your rankings",
			},
		},
		{
			Key:         "ai-visibility",
			Name:        "AI Visibility",
			Color:       "#3b82f6",
			Description: "How well AI tools like ChatGPT and Perplexity know about your business.",
			Service:     "AI Search Optimization",
			ServiceDesc: "Make sure AI assistants recommend your business by building the online presence, directory listings, and content depth that AI models use to form their answers.",
			Actions: []string{
				"Claim and complete your profiles on major directories (Yelp, BBB, industry-specific)",
				"Ensure your business name, address, and phone are consistent everywhere online",
				"Create in-depth content about your services, process, and expertise",
				"Get mentioned on local blogs, news sites, and industry publications",
				"Add FAQ content that mirrors how people ask AI tools for recommendations",
			},
		},
		{
			Key:         "local-presence",
			Name:        "Local Presence",
			Color:       "#f97316",
			Description: "How strong your business looks in your local area — reviews, maps, and directories.",
			Service:     "Local Presence Management",
			ServiceDesc: "Build a dominant local presence with an optimized Google Business Profile, a steady flow of reviews, and consistent directory listings that make you the obvious local choice.",
			Actions: []string{
				"Fully optimize your Google Business Profile with photos, posts, and services",
				"Set up an automated review request system after every job or visit",
				"Respond to every Google review — positive and negative — within 24 hours",
				"List your business in the top 10 local directories for your industry",
				"Add local content and community involvement to your online presence",
			},
		},
	},
	Discovery: []domain.Question{
		{ID: "business-name", Phase: domain.PhaseDiscovery, Text: "What's your business name?", Kind: domain.KindText},
		{
			ID: "website-url", Phase: domain.PhaseDiscovery, Text: "What's your website URL?",
			Subtext: `If you don't have one, just type "none".`, Kind: domain.KindText,
		},
		{ID: "city", Phase: domain.PhaseDiscovery, Text: "What city do you primarily serve?", Kind: domain.KindText},
		{ID: "industry", Phase: domain.PhaseDiscovery, Text: "What industry are you in?", Kind: domain.KindSelect, Options: industryOptions},
	},
	Assessment: []domain.Question{
		// Search Visibility
		{
			ID: "google-ranking", Phase: domain.PhaseAssessment, Category: "search-visibility",
			Text:    "When you Google your main service + your city, where does your business show up?",
			Subtext: `For example: "plumber Huntsville" or "dentist Madison".`,
			Kind:    domain.KindRadio,
			Options: []domain.Option{
				{Label: "I don't show up at all", Value: 0},
				{Label: "Page 2 or beyond", Value: 3},
				{Label: "Bottom half of page 1", Value: 6},
				{Label: "Top 3 results", Value: 10},
			},
		},
		{
			ID: "website-quality", Phase: domain.PhaseAssessment, Category: "search-visibility",
			Text: "How would you describe your website?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "I don't have a website", Value: 0},
				{Label: "It exists but it's outdated or basic", Value: 3},
				{Label: "It looks decent but could use work", Value: 6},
				{Label: "Professional, fast, and regularly updated", Value: 10},
			},
		},
		{
			ID: "mobile-friendly", Phase: domain.PhaseAssessment, Category: "search-visibility",
			Text: "How does your website look on a phone?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "No website / I haven't checked", Value: 0},
				{Label: "It works but it's not great", Value: 3},
				{Label: "It looks fine on mobile", Value: 7},
				{Label: "Fully optimized — fast and easy to use on any device", Value: 10},
			},
		},
		{
			ID: "content-publishing", Phase: domain.PhaseAssessment, Category: "search-visibility",
			Text: "Do you publish content on your website (blog posts, service pages, FAQs)?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "No, just a basic homepage", Value: 1},
				{Label: "A few pages but nothing recent", Value: 3},
				{Label: "Some content, updated occasionally", Value: 6},
				{Label: "Regular content that targets what our customers search for", Value: 10},
			},
		},
		{
			ID: "structured-data", Phase: domain.PhaseAssessment, Category: "search-visibility",
			Text:    "Does your website have structured data (schema markup) that tells Google your business type, hours, and services?",
			Subtext: "If you're not sure, the answer is probably no.",
			Kind:    domain.KindRadio,
			Options: []domain.Option{
				{Label: "I don't know what that is", Value: 0},
				{Label: "I don't think so", Value: 2},
				{Label: "I think we have some basics", Value: 6},
				{Label: "Yes, fully implemented", Value: 10},
			},
		},
		// AI Visibility
		{
			ID: "ai-recommendation", Phase: domain.PhaseAssessment, Category: "ai-visibility",
			Text:    "Have you ever asked ChatGPT or Perplexity to recommend a business like yours in your area?",
			Subtext: `Try it — ask "recommend a [your service] in [your city]" and see what comes up.`,
			Kind:    domain.KindRadio,
			Options: []domain.Option{
				{Label: "Haven't tried it", Value: 2},
				{Label: "Tried it — my business was not mentioned", Value: 1},
				{Label: "Found, but with wrong or outdated info", Value: 5},
				{Label: "Recommended accurately", Value: 10},
			},
		},
		{
			ID: "directory-listings", Phase: domain.PhaseAssessment, Category: "ai-visibility",
			Text: "How many online directories is your business listed on (Yelp, BBB, Angi, industry-specific sites)?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "None that I know of / I haven't set any up", Value: 1},
				{Label: "Just Google Business Profile", Value: 3},
				{Label: "A handful (3-5 directories)", Value: 6},
				{Label: "10+ directories with complete, consistent info", Value: 10},
			},
		},
		{
			ID: "content-depth", Phase: domain.PhaseAssessment, Category: "ai-visibility",
			Text:    "How much detailed information about your business exists online (beyond your own website)?",
			Subtext: "Think: mentions in articles, interviews, directory descriptions, social media.",
			Kind:    domain.KindRadio,
			Options: []domain.Option{
				{Label: "Almost nothing", Value: 1},
				{Label: "A few basic listings", Value: 3},
				{Label: "Some mentions and profiles across the web", Value: 6},
				{Label: "Extensive presence — articles, features, active social, and detailed profiles", Value: 10},
			},
		},
		{
			ID: "online-mentions", Phase: domain.PhaseAssessment, Category: "ai-visibility",
			Text: "Has your business been mentioned on local blogs, news sites, or industry publications?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Never", Value: 0},
				{Label: "Maybe once or twice", Value: 3},
				{Label: "A few times", Value: 6},
				{Label: "Regularly — we actively pursue coverage", Value: 10},
			},
		},
		{
			ID: "nap-consistency", Phase: domain.PhaseAssessment, Category: "ai-visibility",
			Text:    "Is your business name, address, and phone number exactly the same across every online listing?",
			Subtext: `Even small differences (like "St" vs "Street") can confuse search engines and AI tools.`,
			Kind:    domain.KindRadio,
			Options: []domain.Option{
				{Label: "I have no idea", Value: 1},
				{Label: "Probably not — I've never checked", Value: 2},
				{Label: "Mostly consistent but there might be some differences", Value: 6},
				{Label: "100% consistent — I've verified it", Value: 10},
			},
		},
		// Local Presence
		{
			ID: "gbp-status", Phase: domain.PhaseAssessment, Category: "local-presence",
			Text: "How complete is your Google Business Profile?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "I don't have one / not sure", Value: 0},
				{Label: "It's claimed but barely filled out", Value: 3},
				{Label: "Most info is there but I rarely update it", Value: 6},
				{Label: "Fully complete — photos, posts, services, hours, and updated regularly", Value: 10},
			},
		},
		{
			ID: "review-count", Phase: domain.PhaseAssessment, Category: "local-presence",
			Text: "How many Google reviews does your business have?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Less than 5", Value: 1},
				{Label: "5–20", Value: 4},
				{Label: "21–50", Value: 7},
				{Label: "50+", Value: 10},
			},
		},
		{
			ID: "review-rating", Phase: domain.PhaseAssessment, Category: "local-presence",
			Text: "What's your average Google review rating?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "No reviews yet / I don't know", Value: 0},
				{Label: "Below 4.0 stars", Value: 3},
				{Label: "4.0–4.4 stars", Value: 6},
				{Label: "4.5+ stars", Value: 10},
			},
		},
		{
			ID: "review-responses", Phase: domain.PhaseAssessment, Category: "local-presence",
			Text: "Do you respond to your Google reviews?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "Never", Value: 0},
				{Label: "Only negative ones", Value: 3},
				{Label: "Sometimes", Value: 5},
				{Label: "Every single one, within a day or two", Value: 10},
			},
		},
		{
			ID: "local-directories", Phase: domain.PhaseAssessment, Category: "local-presence",
			Text: "Are you listed in local directories and community sites (Chamber of Commerce, local business associations)?", Kind: domain.KindRadio,
			Options: []domain.Option{
				{Label: "No / I haven't looked into it", Value: 0},
				{Label: "Maybe one or two", Value: 3},
				{Label: "A few local listings", Value: 6},
				{Label: "Yes, fully listed with consistent info", Value: 10},
			},
		},
	},
	Recommendations: map[string]string{
		"google-ranking":     "You're not showing up when people search for your services. Local SEO work — optimized service pages, proper keywords, and Google Business Profile improvements — can move you onto page 1.",
		"website-quality":    "Your website is your 24/7 salesperson. A modern, fast website with clear calls-to-action and service descriptions builds trust and converts visitors into leads.",
		"mobile-friendly":    "Over 60% of local searches happen on phones. A slow or clunky mobile experience means you're losing leads before they even call.",
		"content-publishing": "Publishing helpful content (FAQs, how-to guides, service explanations) tells Google you're an authority in your field and gives you more chances to show up in search results.",
		"structured-data":    "Structured data helps Google display rich results for your business — star ratings, hours, service areas. Without it, you're leaving free visibility on the table.",
		"ai-recommendation":  "AI tools are becoming the new search. If ChatGPT and Perplexity don't know about your business, you're invisible to a growing number of potential customers.",
		"directory-listings": "Directory listings are how AI tools and search engines verify your business exists. More complete, consistent listings = more trust signals = higher visibility.",
		"content-depth":      "AI tools form recommendations from what they can find online. The more detailed, high-quality content about your business that exists across the web, the more likely AI will recommend you.",
		"online-mentions":    "Third-party mentions (press, blogs, features) are powerful trust signals. They tell both Google and AI tools that your business is established and worth recommending.",
		"nap-consistency":    "Inconsistent business info across the web confuses search engines and AI tools. A NAP (Name, Address, Phone) audit and cleanup can boost your visibility significantly.",
		"gbp-status":         "Your Google Business Profile is often the first thing people see. An incomplete profile signals that your business might not be active or trustworthy.",
		"review-count":       "Businesses with more reviews rank higher in local search and get chosen more often. An automated review request system after each job can build your count quickly.",
		"review-rating":      "Your star rating is the first filter customers use. If you're below 4.5, focus on delivering great experiences and making it easy for happy customers to leave reviews.",
		"review-responses":   "Responding to every review — good and bad — shows Google you're active and shows customers you care. It directly impacts your local search ranking.",
		"local-directories":  "Local directories and community sites build your authority in your area. Chamber of Commerce listings and local business association memberships signal legitimacy.",
	},
}
