package core

// Intent is the coarse category a parsed command falls into
type Intent string

const (
	IntentSearch         Intent = "search"
	IntentEnrich         Intent = "enrich"
	IntentVerify         Intent = "verify"
	IntentCampaign       Intent = "campaign"
	IntentAnalytics      Intent = "analytics"
	IntentDeliverability Intent = "deliverability"
	IntentReply          Intent = "reply"
	IntentWorkflow       Intent = "workflow"
	IntentExport         Intent = "export"
	IntentOther          Intent = "other"
)

// ParsedCommand represents a structured command extracted from natural language
type ParsedCommand struct {
	Action     string         `json:"action"`
	Parameters map[string]any `json:"parameters"`
	Source     string         `json:"source,omitempty"`
	Intent     Intent         `json:"intent"`
	Confidence float64        `json:"confidence"`
}

// ValidationResult represents the outcome of validating a parsed command
// against its parameter schema and the session context
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// SessionContext describes what the current interactive session already has.
// It is owned by the caller and never mutated by the core.
type SessionContext struct {
	HasCurrentLeads    bool
	AvailableCampaigns []string
	Integrations       []string
}

// CostEstimate represents the estimated cost of a simulated operation
type CostEstimate struct {
	Service  string  `json:"service"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// SimulationResult represents the result of an executed command
type SimulationResult struct {
	Success      bool           `json:"success"`
	Message      string         `json:"message"`
	Data         any            `json:"data,omitempty"`
	CostEstimate []CostEstimate `json:"costEstimate,omitempty"`
	SandboxMode  bool           `json:"sandboxMode"`
}

// CommandOutcome is what the pipeline hands back to the presentation layer:
// the echoed command, its validation result, and the simulation result. When
// validation blocks execution, Result carries a failed payload listing the
// errors so callers always have something to render.
type CommandOutcome struct {
	Command    *ParsedCommand    `json:"command"`
	Validation *ValidationResult `json:"validation"`
	Result     *SimulationResult `json:"result"`
}

// Lead represents one synthetic prospect generated by the sandbox
type Lead struct {
	ID                 string   `json:"id"`
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	FullName           string   `json:"full_name"`
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	CompanyDomain      string   `json:"company_domain"`
	Industry           string   `json:"industry"`
	EmployeeCount      int      `json:"employee_count"`
	RevenueRange       string   `json:"revenue_range"`
	LocationCity       string   `json:"location_city"`
	LocationState      string   `json:"location_state"`
	LocationCountry    string   `json:"location_country"`
	Email              string   `json:"email"`
	EmailStatus        string   `json:"email_status"`
	Phone              string   `json:"phone"`
	LinkedInURL        string   `json:"linkedin_url"`
	LinkedInAbout      string   `json:"linkedin_about"`
	Technologies       []string `json:"technologies"`
	EnrichmentStatus   string   `json:"enrichment_status"`
	EnrichmentSource   string   `json:"enrichment_source"`
	VerificationStatus string   `json:"verification_status"`
	VerificationSource string   `json:"verification_source"`
	CreatedAt          string   `json:"created_at"`
	LastActivity       string   `json:"last_activity"`
	Tags               []string `json:"tags"`
}

// Email validity categories
const (
	EmailStatusValid    = "valid"
	EmailStatusRisky    = "risky"
	EmailStatusInvalid  = "invalid"
	EmailStatusCatchall = "catchall"
)

// DayRecord is one day of simulated campaign activity
type DayRecord struct {
	Day       int `json:"day"`
	Sent      int `json:"sent"`
	Delivered int `json:"delivered"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
	Replied   int `json:"replied"`
	Bounced   int `json:"bounced"`
}

// CampaignStats holds cumulative campaign counters. Every counter equals the
// running sum of its daily deltas, and positive+neutral+negative == replied.
type CampaignStats struct {
	Sent            int `json:"sent"`
	Delivered       int `json:"delivered"`
	Opened          int `json:"opened"`
	Clicked         int `json:"clicked"`
	Replied         int `json:"replied"`
	PositiveReplies int `json:"positive_replies"`
	NeutralReplies  int `json:"neutral_replies"`
	NegativeReplies int `json:"negative_replies"`
	Bounced         int `json:"bounced"`
	MeetingsBooked  int `json:"meetings_booked"`
}

// Campaign represents a sandbox campaign with its aggregate stats and history
type Campaign struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          string        `json:"status"`
	LeadsTotal      int           `json:"leads_total"`
	LeadsContacted  int           `json:"leads_contacted"`
	LeadsRemaining  int           `json:"leads_remaining"`
	SequenceSteps   int           `json:"sequence_steps"`
	DailySendVolume int           `json:"daily_send_volume"`
	StartedAt       string        `json:"started_at"`
	Stats           CampaignStats `json:"stats"`
	DailyHistory    []DayRecord   `json:"daily_history"`
}

// Campaign statuses
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusDraft     = "draft"
	CampaignStatusCompleted = "completed"
)

// ClientContract is one client's engagement record, keyed by client name
type ClientContract struct {
	Name          string `json:"name"`
	ContractStart string `json:"contractStart"`
	TotalSent     int    `json:"totalSent"`
}

// OverallCampaignStats is the all-time reporting view for one client.
// The rate fields are always recomputed from the counts, never stored.
type OverallCampaignStats struct {
	ClientName           string  `json:"clientName"`
	ContractStartDate    string  `json:"contractStartDate"`
	TotalEmailSent       int     `json:"totalEmailSent"`
	TotalDelivered       int     `json:"totalDelivered"`
	TotalOpened          int     `json:"totalOpened"`
	TotalClicked         int     `json:"totalClicked"`
	TotalReplied         int     `json:"totalReplied"`
	TotalPositiveReplies int     `json:"totalPositiveReplies"`
	TotalBounced         int     `json:"totalBounced"`
	TotalMeetingsBooked  int     `json:"totalMeetingsBooked"`
	OpenRate             float64 `json:"openRate"`
	ReplyRate            float64 `json:"replyRate"`
	ClickRate            float64 `json:"clickRate"`
	BounceRate           float64 `json:"bounceRate"`
	PositiveReplyRate    float64 `json:"positiveReplyRate"`
}

// MeetingRecord is one booked meeting in the reporting dataset
type MeetingRecord struct {
	ID           string `json:"id"`
	ProspectName string `json:"prospectName"`
	Email        string `json:"email"`
	Company      string `json:"company"`
	Title        string `json:"title"`
	CampaignName string `json:"campaignName"`
	MeetingDate  string `json:"meetingDate"`
	MeetingTime  string `json:"meetingTime"`
	Status       string `json:"status"`
	BookedDate   string `json:"bookedDate"`
	Source       string `json:"source"`
}

// Meeting statuses
const (
	MeetingStatusAttended    = "attended"
	MeetingStatusNoShow      = "no-show"
	MeetingStatusCancelled   = "cancelled"
	MeetingStatusRescheduled = "rescheduled"
)

// ACTLClientRow is one client row of the ACTL & Booked Meeting Tracker.
// MeetingsBooked is -1 when no meetings were booked (rendered as "-"), and
// PositiveReplyToMeeting is -1 when it cannot be derived (rendered as
// "#VALUE!", matching the upstream spreadsheet).
type ACTLClientRow struct {
	ClientName             string  `json:"clientName"`
	CompletionRate         float64 `json:"completionRate"`
	PositiveReplies        int     `json:"positiveReplies"`
	TotalReplies           int     `json:"totalReplies"`
	TotalEmailSent         int     `json:"totalEmailSent"`
	MeetingsBooked         int     `json:"meetingsBooked"`
	ReplyRate              float64 `json:"replyRate"`
	PositiveReplyRate      float64 `json:"positiveReplyRate"`
	PositiveReplyToMeeting float64 `json:"positiveReplyToMeeting"`
	HealthScore            string  `json:"healthScore"`
	Notes                  string  `json:"notes"`
}

// NoMeetings marks ACTLClientRow fields that have no derivable value
const NoMeetings = -1

// ACTLTotals aggregates tracker rows. Rates are recomputed from the summed
// counts at read time so they can never drift from the row-level data.
type ACTLTotals struct {
	CompletionRate         float64 `json:"completionRate"`
	PositiveReplies        int     `json:"positiveReplies"`
	TotalReplies           int     `json:"totalReplies"`
	TotalEmailSent         int     `json:"totalEmailSent"`
	MeetingsBooked         int     `json:"meetingsBooked"`
	ReplyRate              float64 `json:"replyRate"`
	PositiveReplyRate      float64 `json:"positiveReplyRate"`
	PositiveReplyToMeeting float64 `json:"positiveReplyToMeeting"`
}

// ACTLTrackerData is the full tracker report for a given date
type ACTLTrackerData struct {
	Date    string          `json:"date"`
	Clients []ACTLClientRow `json:"clients"`
	Totals  ACTLTotals      `json:"totals"`
}
