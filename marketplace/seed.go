package marketplace

// seedAgents is the built-in catalog used to populate the store on first
// run: 25 agents spanning the 8 categories.
func seedAgents() []Agent {
	return []Agent{
		{
			ID:               1,
			Name:             "DeFi Portfolio Analyzer",
			Description:      "Comprehensive analysis of your DeFi investments across multiple protocols with real-time yield optimization suggestions.",
			Category:         CategoryWeb3,
			Tags:             []string{"DeFi", "Portfolio", "Yield", "Analytics"},
			Rating:           4.8,
			Reviews:          342,
			Users:            15420,
			Capabilities:     "Multi-chain portfolio tracking, yield farming optimization, impermanent loss calculation, gas fee estimation",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               2,
			Name:             "Smart Contract Auditor",
			Description:      "AI-powered smart contract security analysis that identifies vulnerabilities and suggests improvements.",
			Category:         CategoryWeb3,
			Tags:             []string{"Security", "Audit", "Smart Contracts", "Ethereum"},
			Rating:           4.9,
			Reviews:          156,
			Users:            8760,
			Capabilities:     "Vulnerability detection, gas optimization, best practices checking, detailed security reports",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               3,
			Name:             "NFT Market Tracker",
			Description:      "Track NFT collections, floor prices, and market trends with AI-powered price predictions.",
			Category:         CategoryWeb3,
			Tags:             []string{"NFT", "Market", "Analytics", "Trading"},
			Rating:           4.6,
			Reviews:          289,
			Users:            23450,
			Capabilities:     "Real-time floor price tracking, rarity analysis, market trend prediction, collection comparison",
			Pricing:          PricingFree,
			InferenceEnabled: true,
		},
		{
			ID:               4,
			Name:             "DAO Governance Assistant",
			Description:      "Streamline DAO participation with proposal analysis, voting recommendations, and governance insights.",
			Category:         CategoryWeb3,
			Tags:             []string{"DAO", "Governance", "Voting", "Community"},
			Rating:           4.7,
			Reviews:          98,
			Users:            5630,
			Capabilities:     "Proposal summarization, voting impact analysis, governance token management, participation tracking",
			Pricing:          PricingFree,
			InferenceEnabled: true,
		},
		{
			ID:               5,
			Name:             "Smart Price Comparison",
			Description:      "Find the best deals across thousands of online stores with real-time price tracking and alerts.",
			Category:         CategoryShopping,
			Tags:             []string{"Price", "Comparison", "Deals", "Alerts"},
			Rating:           4.7,
			Reviews:          1456,
			Users:            45780,
			Capabilities:     "Multi-store price comparison, price history tracking, deal alerts, coupon integration",
			Pricing:          PricingFree,
			InferenceEnabled: true,
		},
		{
			ID:               6,
			Name:             "Personal Shopping Assistant",
			Description:      "AI-powered personal shopper that understands your style and budget to recommend perfect products.",
			Category:         CategoryShopping,
			Tags:             []string{"Personal", "Style", "Recommendations", "Fashion"},
			Rating:           4.8,
			Reviews:          892,
			Users:            32150,
			Capabilities:     "Style profiling, budget optimization, trend analysis, personalized recommendations",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               7,
			Name:             "Sustainable Shopping Guide",
			Description:      "Discover eco-friendly alternatives and sustainable brands with environmental impact scoring.",
			Category:         CategoryShopping,
			Tags:             []string{"Sustainable", "Eco-friendly", "Environment", "Ethics"},
			Rating:           4.6,
			Reviews:          567,
			Users:            19840,
			Capabilities:     "Sustainability scoring, eco-alternative suggestions, brand ethics analysis, carbon footprint tracking",
			Pricing:          PricingFree,
			InferenceEnabled: true,
		},
		{
			ID:               8,
			Name:             "Document AI Assistant",
			Description:      "Extract, analyze, and summarize information from any document type with high accuracy.",
			Category:         CategoryUtility,
			Tags:             []string{"Documents", "OCR", "Analysis", "Productivity"},
			Rating:           4.9,
			Reviews:          2134,
			Users:            67890,
			Capabilities:     "Multi-format document processing, intelligent text extraction, content summarization, data structuring",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               9,
			Name:             "Smart Calendar Scheduler",
			Description:      "Intelligent meeting scheduling that optimizes your calendar across multiple platforms and time zones.",
			Category:         CategoryUtility,
			Tags:             []string{"Calendar", "Scheduling", "Productivity", "Time Management"},
			Rating:           4.6,
			Reviews:          987,
			Users:            43210,
			Capabilities:     "Cross-platform calendar sync, intelligent conflict resolution, time zone optimization, meeting preparation",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               10,
			Name:             "Code Review Assistant",
			Description:      "Automated code review and improvement suggestions for multiple programming languages.",
			Category:         CategoryUtility,
			Tags:             []string{"Code", "Review", "Programming", "Quality"},
			Rating:           4.8,
			Reviews:          756,
			Users:            29540,
			Capabilities:     "Multi-language code analysis, bug detection, performance optimization, best practices enforcement",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               11,
			Name:             "Investment Advisor AI",
			Description:      "Personalized investment recommendations based on your risk profile and financial goals.",
			Category:         CategoryFinance,
			Tags:             []string{"Investment", "Portfolio", "Risk", "Planning"},
			Rating:           4.7,
			Reviews:          1234,
			Users:            34560,
			Capabilities:     "Portfolio analysis, risk assessment, market trend prediction, diversification recommendations",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               12,
			Name:             "Expense Tracker Pro",
			Description:      "Smart expense categorization and budgeting with AI-powered spending insights.",
			Category:         CategoryFinance,
			Tags:             []string{"Budgeting", "Expenses", "Analytics", "Savings"},
			Rating:           4.5,
			Reviews:          892,
			Users:            28900,
			Capabilities:     "Automatic categorization, budget optimization, spending pattern analysis, savings recommendations",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               13,
			Name:             "Tax Optimization Bot",
			Description:      "Maximize your tax savings with intelligent deduction discovery and filing assistance.",
			Category:         CategoryFinance,
			Tags:             []string{"Tax", "Optimization", "Deductions", "Filing"},
			Rating:           4.6,
			Reviews:          567,
			Users:            19200,
			Capabilities:     "Deduction discovery, tax strategy optimization, document organization, compliance checking",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               14,
			Name:             "Health Symptom Checker",
			Description:      "AI-powered symptom analysis and health recommendations with medical knowledge base.",
			Category:         CategoryHealth,
			Tags:             []string{"Symptoms", "Health", "Medical", "Diagnosis"},
			Rating:           4.4,
			Reviews:          2345,
			Users:            56780,
			Capabilities:     "Symptom analysis, health risk assessment, treatment suggestions, medical resource recommendations",
			Pricing:          PricingFree,
			InferenceEnabled: true,
		},
		{
			ID:               15,
			Name:             "Fitness Coach AI",
			Description:      "Personalized workout plans and nutrition guidance based on your fitness goals and preferences.",
			Category:         CategoryHealth,
			Tags:             []string{"Fitness", "Workout", "Nutrition", "Goals"},
			Rating:           4.7,
			Reviews:          1678,
			Users:            41230,
			Capabilities:     "Personalized workout generation, nutrition planning, progress tracking, goal optimization",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               16,
			Name:             "Mental Wellness Companion",
			Description:      "AI companion for mental health support, mood tracking, and stress management techniques.",
			Category:         CategoryHealth,
			Tags:             []string{"Mental Health", "Wellness", "Mood", "Stress"},
			Rating:           4.8,
			Reviews:          987,
			Users:            32100,
			Capabilities:     "Mood tracking, stress assessment, coping strategies, mindfulness guidance",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               17,
			Name:             "Language Learning Tutor",
			Description:      "Personalized language learning with conversational practice and grammar correction.",
			Category:         CategoryEducation,
			Tags:             []string{"Language", "Learning", "Conversation", "Grammar"},
			Rating:           4.9,
			Reviews:          3456,
			Users:            78900,
			Capabilities:     "Conversational practice, grammar correction, vocabulary building, pronunciation training",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               18,
			Name:             "Study Buddy AI",
			Description:      "Intelligent study companion that helps with note-taking, quiz generation, and learning optimization.",
			Category:         CategoryEducation,
			Tags:             []string{"Study", "Notes", "Quiz", "Learning"},
			Rating:           4.6,
			Reviews:          2234,
			Users:            45670,
			Capabilities:     "Note organization, quiz generation, study schedule optimization, knowledge gap identification",
			Pricing:          PricingFree,
			InferenceEnabled: true,
		},
		{
			ID:               19,
			Name:             "Research Assistant Pro",
			Description:      "Advanced research capabilities with paper analysis, citation management, and insight generation.",
			Category:         CategoryEducation,
			Tags:             []string{"Research", "Papers", "Citations", "Analysis"},
			Rating:           4.7,
			Reviews:          890,
			Users:            23450,
			Capabilities:     "Paper summarization, citation analysis, research gap identification, insight synthesis",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               20,
			Name:             "Movie Recommendation Engine",
			Description:      "Personalized movie and TV show recommendations based on your viewing history and preferences.",
			Category:         CategoryEntertainment,
			Tags:             []string{"Movies", "TV Shows", "Recommendations", "Streaming"},
			Rating:           4.5,
			Reviews:          1789,
			Users:            67890,
			Capabilities:     "Personalized recommendations, mood-based suggestions, streaming platform integration, watchlist management",
			Pricing:          PricingFree,
			InferenceEnabled: true,
		},
		{
			ID:               21,
			Name:             "Music Discovery AI",
			Description:      "Discover new music tailored to your taste with AI-powered playlist generation and artist recommendations.",
			Category:         CategoryEntertainment,
			Tags:             []string{"Music", "Discovery", "Playlists", "Artists"},
			Rating:           4.6,
			Reviews:          2345,
			Users:            89012,
			Capabilities:     "Music discovery, playlist generation, mood-based recommendations, artist analysis",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
		{
			ID:               22,
			Name:             "Game Strategy Coach",
			Description:      "AI coach for various games providing strategy tips, move analysis, and skill improvement guidance.",
			Category:         CategoryEntertainment,
			Tags:             []string{"Gaming", "Strategy", "Coaching", "Analysis"},
			Rating:           4.4,
			Reviews:          1234,
			Users:            34567,
			Capabilities:     "Strategy analysis, move optimization, skill assessment, training recommendations",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               23,
			Name:             "Market Research Analyst",
			Description:      "Comprehensive market analysis and competitor research with trend identification and opportunity mapping.",
			Category:         CategoryBusiness,
			Tags:             []string{"Market Research", "Competitors", "Trends", "Analysis"},
			Rating:           4.8,
			Reviews:          567,
			Users:            12345,
			Capabilities:     "Market trend analysis, competitor profiling, opportunity identification, industry insights",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               24,
			Name:             "Sales Lead Generator",
			Description:      "Intelligent lead generation and qualification with automated outreach and follow-up strategies.",
			Category:         CategoryBusiness,
			Tags:             []string{"Sales", "Leads", "Outreach", "CRM"},
			Rating:           4.7,
			Reviews:          890,
			Users:            23456,
			Capabilities:     "Lead generation, qualification scoring, outreach automation, conversion optimization",
			Pricing:          PricingPaid,
			InferenceEnabled: true,
		},
		{
			ID:               25,
			Name:             "Content Marketing Assistant",
			Description:      "AI-powered content creation, SEO optimization, and social media management for marketing campaigns.",
			Category:         CategoryBusiness,
			Tags:             []string{"Content", "Marketing", "SEO", "Social Media"},
			Rating:           4.6,
			Reviews:          1345,
			Users:            45678,
			Capabilities:     "Content generation, SEO optimization, social media scheduling, campaign analytics",
			Pricing:          PricingFreemium,
			InferenceEnabled: true,
		},
	}
}

// demoRoster is the fixed set of selectable demo identities. There is no
// real authentication; login just picks one of these.
func demoRoster() []User {
	return []User{
		{
			ID:     1,
			Name:   "Alex Chen",
			Email:  "alex@example.com",
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
			Role:   "Developer",
			Bio:    "AI enthusiast and blockchain developer",
		},
		{
			ID:     2,
			Name:   "Sarah Williams",
			Email:  "sarah@example.com",
			Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=100&h=100&fit=crop&crop=face",
			Role:   "Product Manager",
			Bio:    "Building the future of AI-powered commerce",
		},
		{
			ID:     3,
			Name:   "Marcus Johnson",
			Email:  "marcus@example.com",
			Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop&crop=face",
			Role:   "Data Scientist",
			Bio:    "Specializing in utility AI agents",
		},
		{
			ID:     4,
			Name:   "Emma Davis",
			Email:  "emma@example.com",
			Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop&crop=face",
			Role:   "UX Designer",
			Bio:    "Designing intuitive AI experiences",
		},
	}
}
