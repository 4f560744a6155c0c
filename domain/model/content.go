package model

// Marketing page content. These catalogs are static presentational data;
// the translatable entries carry i18n keys resolved at render time.

// MarketingFeature is one entry of the home page key-features grid.
type MarketingFeature struct {
	TitleKey       string
	DescriptionKey string
	Image          string
	Gradient       string
}

// AITool is one entry of the AI tools and integrations grid.
type AITool struct {
	Title       string
	Description string
}

// PricingPlan is one column of the pricing table.
type PricingPlan struct {
	Name        string
	Price       string
	Description string
	Features    []string
	ButtonText  string
	Popular     bool
}

// Testimonial is one avatar shown under the hero headline.
type Testimonial struct {
	Name   string
	Avatar string
	Rating int
}

func HomeFeatures() []MarketingFeature {
	return []MarketingFeature{
		{TitleKey: "autoClipping", DescriptionKey: "autoClippingDesc", Image: "https://images.pexels.com/photos/7818237/pexels-photo-7818237.jpeg", Gradient: "from-blue-500 to-cyan-500"},
		{TitleKey: "autoFaceTracking", DescriptionKey: "autoFaceTrackingDesc", Image: "https://images.unsplash.com/photo-1511903979581-3f1d3afb4372", Gradient: "from-purple-500 to-pink-500"},
		{TitleKey: "autoCaptioning", DescriptionKey: "autoCaptioningDesc", Image: "https://images.pexels.com/photos/11158021/pexels-photo-11158021.jpeg", Gradient: "from-green-500 to-teal-500"},
		{TitleKey: "captionTranslation", DescriptionKey: "captionTranslationDesc", Image: "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b", Gradient: "from-orange-500 to-red-500"},
	}
}

func AITools() []AITool {
	return []AITool{
		{Title: "Auto Hook Generator", Description: "Generate compelling hooks that grab attention in the first 3 seconds"},
		{Title: "Smart B-Roll Integration", Description: "Automatically add relevant B-roll footage to enhance your storytelling"},
		{Title: "Voice Creator", Description: "Convert text to natural-sounding voiceovers with AI voices"},
		{Title: "Background Remover", Description: "Remove or replace video backgrounds with AI precision"},
		{Title: "YouTube Analytics", Description: "Analyze top-performing creators and optimize your content strategy"},
		{Title: "Auto Scheduler", Description: "Schedule posts across TikTok, YouTube, and Instagram automatically"},
	}
}

func PricingPlans() []PricingPlan {
	return []PricingPlan{
		{
			Name:        "Free",
			Price:       "0",
			Description: "Perfect for getting started",
			Features:    []string{"5 clips per month", "720p export quality", "Basic AI features", "Community support"},
			ButtonText:  "Get Started",
		},
		{
			Name:        "Pro",
			Price:       "19",
			Description: "For serious content creators",
			Features:    []string{"Unlimited clips", "4K export quality", "All AI features", "Priority support", "Custom branding", "Team collaboration"},
			ButtonText:  "Start Pro Trial",
			Popular:     true,
		},
		{
			Name:        "Enterprise",
			Price:       "99",
			Description: "For teams and agencies",
			Features:    []string{"Everything in Pro", "White-label solution", "API access", "Dedicated support", "Custom integrations", "Analytics dashboard"},
			ButtonText:  "Contact Sales",
		},
	}
}

func Testimonials() []Testimonial {
	return []Testimonial{
		{Name: "Alex M.", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=50&h=50&fit=crop&crop=face", Rating: 5},
		{Name: "Sarah K.", Avatar: "https://images.unsplash.com/photo-1494790108755-2616b612b1e0?w=50&h=50&fit=crop&crop=face", Rating: 5},
		{Name: "Mike R.", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=50&h=50&fit=crop&crop=face", Rating: 5},
		{Name: "Lisa T.", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=50&h=50&fit=crop&crop=face", Rating: 5},
	}
}
