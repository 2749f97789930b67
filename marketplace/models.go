package marketplace

import "time"

// Agent categories. The catalog filter list additionally carries the
// pseudo-category "ALL" which matches every agent.
const (
	CategoryAll           = "ALL"
	CategoryWeb3          = "WEB3"
	CategoryShopping      = "SHOPPING"
	CategoryUtility       = "UTILITY"
	CategoryFinance       = "FINANCE"
	CategoryHealth        = "HEALTH"
	CategoryEducation     = "EDUCATION"
	CategoryEntertainment = "ENTERTAINMENT"
	CategoryBusiness      = "BUSINESS"
)

// Pricing tiers
const (
	PricingFree     = "free"
	PricingFreemium = "freemium"
	PricingPaid     = "paid"
)

// Agent listing status
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// Agent represents a single marketplace listing
type Agent struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Tags             []string  `json:"tags"`
	Capabilities     string    `json:"capabilities"`
	Pricing          string    `json:"pricing"`
	Rating           float64   `json:"rating"` // 0 means unrated
	Reviews          int       `json:"reviews"`
	Users            int       `json:"users"`
	Creator          string    `json:"creator,omitempty"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
	Status           string    `json:"status,omitempty"`
	InferenceEnabled bool      `json:"inference_enabled"`
}

// Draft holds the user-supplied fields for a new agent submission
type Draft struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Capabilities string   `json:"capabilities"`
	Pricing      string   `json:"pricing"`
	Creator      string   `json:"creator"`
}

// Filter narrows a catalog listing. Zero value matches everything.
type Filter struct {
	Category string // "" or "ALL" match every category
	Query    string // case-insensitive substring over name, description, tags
}

// User represents a demo roster identity
type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
	Bio    string `json:"bio"`
}

// ApiKey represents a user-created access key scoped to one agent.
// AgentID may dangle if the agent is later removed; that is accepted.
type ApiKey struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Key       string     `json:"key"`
	AgentID   int64      `json:"agent_id"`
	AgentName string     `json:"agent_name"`
	CreatedAt time.Time  `json:"created_at"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
	IsActive  bool       `json:"is_active"`
}

// Categories returns the fixed category filter list, leading with ALL.
func Categories() []string {
	return []string{
		CategoryAll,
		CategoryWeb3,
		CategoryShopping,
		CategoryUtility,
		CategoryFinance,
		CategoryHealth,
		CategoryEducation,
		CategoryEntertainment,
		CategoryBusiness,
	}
}
