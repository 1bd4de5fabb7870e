package keyword

// Category is the topical bucket a keyword falls into.
type Category string

const (
	CategoryScanner    Category = "scanner"
	CategoryPrinting   Category = "printing"
	CategoryDigital    Category = "digital"
	CategoryDesign     Category = "design"
	CategoryNetworking Category = "networking"
	CategoryComparison Category = "comparison"
	CategoryQuestion   Category = "question"
	CategoryBrand      Category = "brand"
	CategoryOther      Category = "other"
)

// Intent describes what the searcher is trying to do.
type Intent string

const (
	IntentInformational Intent = "informational"
	IntentTransactional Intent = "transactional"
	IntentNavigational  Intent = "navigational"
	IntentCommercial    Intent = "commercial"
)

// Audience is the reader segment a keyword targets.
type Audience string

const (
	AudienceEntrepreneurs     Audience = "entrepreneurs"
	AudienceSmallBusiness     Audience = "small_business"
	AudienceProfessionals     Audience = "professionals"
	AudienceNetworkingFocused Audience = "networking_focused"
	AudienceDIYCreators       Audience = "diy_creators"
	AudienceGeneral           Audience = "general"
)

// Record is one row of keyword research data with derived SEO
// classification and a computed blog-worthiness score. The keyword text is
// the identity key for deduplication.
type Record struct {
	ID               string   `json:"id,omitempty"`
	Text             string   `json:"text"`
	MonthlySearches  int      `json:"monthly_searches"`
	CompetitionIndex *int     `json:"competition_index,omitempty"`
	Competition      string   `json:"competition,omitempty"`
	ThreeMonthChange string   `json:"three_month_change,omitempty"`
	YoYChange        string   `json:"yoy_change,omitempty"`
	TopBidLow        *float64 `json:"top_bid_low,omitempty"`
	TopBidHigh       *float64 `json:"top_bid_high,omitempty"`
	Category         Category `json:"category"`
	Intent           Intent   `json:"intent"`
	IsQuestion       bool     `json:"is_question"`
	IsBranded        bool     `json:"is_branded"`
	Audience         Audience `json:"audience"`
	BlogScore        int      `json:"blog_score"`
}

// Attrs carries caller-supplied fields for creating or updating a Record.
// Nil / empty classification fields are derived from the keyword text;
// explicit values always win over auto-detection.
type Attrs struct {
	Text             string
	MonthlySearches  *int
	CompetitionIndex *int
	Competition      string
	ThreeMonthChange string
	YoYChange        string
	TopBidLow        *float64
	TopBidHigh       *float64
	Category         Category
	Intent           Intent
	IsQuestion       *bool
	IsBranded        *bool
	Audience         Audience
}
