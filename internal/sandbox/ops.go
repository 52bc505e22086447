package sandbox

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
)

// SearchParams carry the lead search request
type SearchParams struct {
	Count   int
	Filters SearchFilters
}

// SearchResultData is the payload returned by a lead search
type SearchResultData struct {
	Leads []core.Lead `json:"leads"`
	Count int         `json:"count"`
}

// SearchLeads generates a fresh lead set matching the filters and holds it
// for downstream verify/enrich/load operations
func (s *Simulator) SearchLeads(ctx context.Context, params SearchParams) *core.SimulationResult {
	s.simulateDelay(ctx)

	count := params.Count
	if count > maxSearchResults {
		count = maxSearchResults
	}
	if count < 0 {
		count = 0
	}

	s.mu.Lock()
	leads := s.gen.Leads(count, params.Filters)
	s.leads = leads
	s.mu.Unlock()

	s.log.Info("lead search simulated",
		zap.Int("count", len(leads)),
		zap.String("industry", params.Filters.Industry))

	return &core.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Found %d leads matching criteria", len(leads)),
		Data:    SearchResultData{Leads: leads, Count: len(leads)},
		CostEstimate: []core.CostEstimate{
			{Service: "Apollo", Amount: float64(count) * apolloCostPerLead, Currency: "USD"},
		},
		SandboxMode: true,
	}
}

// VerificationData summarizes an email verification pass
type VerificationData struct {
	Total           int    `json:"total"`
	Valid           int    `json:"valid"`
	Risky           int    `json:"risky"`
	Invalid         int    `json:"invalid"`
	Catchall        int    `json:"catchall"`
	ValidPercentage string `json:"validPercentage"`
}

// VerifyLeads tallies the email statuses of the held leads. The statuses were
// already sampled at generation time, so verification only reports them.
func (s *Simulator) VerifyLeads(ctx context.Context) *core.SimulationResult {
	s.simulateDelay(ctx)

	s.mu.Lock()
	leads := s.leads
	s.mu.Unlock()

	if len(leads) == 0 {
		return failure("No leads available. Search for leads first.")
	}

	var data VerificationData
	data.Total = len(leads)
	for _, lead := range leads {
		switch lead.EmailStatus {
		case core.EmailStatusValid:
			data.Valid++
		case core.EmailStatusRisky:
			data.Risky++
		case core.EmailStatusInvalid:
			data.Invalid++
		case core.EmailStatusCatchall:
			data.Catchall++
		}
	}
	data.ValidPercentage = pctString(data.Valid, data.Total)

	return &core.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Verified %d emails", data.Total),
		Data:    data,
		CostEstimate: []core.CostEstimate{
			{Service: "MillionVerifier", Amount: float64(data.Total) * verifierCostPerEmail, Currency: "USD"},
		},
		SandboxMode: true,
	}
}

// EnrichmentData summarizes what an enrichment pass filled in
type EnrichmentData struct {
	LeadsEnriched  int `json:"leadsEnriched"`
	PhoneNumbers   int `json:"phoneNumbers"`
	LinkedInFound  int `json:"linkedinFound"`
	CompanyData    int `json:"companyData"`
	TechStackFound int `json:"techStackFound"`
}

// EnrichLeads reports enrichment coverage over the held leads. Generated
// leads already carry full enrichment, so coverage is derived from the data
// they hold rather than re-sampled.
func (s *Simulator) EnrichLeads(ctx context.Context) *core.SimulationResult {
	s.simulateDelay(ctx)

	s.mu.Lock()
	leads := s.leads
	s.mu.Unlock()

	if len(leads) == 0 {
		return failure("No leads available. Search for leads first.")
	}

	data := EnrichmentData{LeadsEnriched: len(leads), CompanyData: len(leads)}
	for _, lead := range leads {
		if lead.Phone != "" {
			data.PhoneNumbers++
		}
		if lead.LinkedInURL != "" {
			data.LinkedInFound++
		}
		if len(lead.Technologies) > 0 {
			data.TechStackFound++
		}
	}

	return &core.SimulationResult{
		Success:     true,
		Message:     fmt.Sprintf("Enriched %d leads with additional data", len(leads)),
		Data:        data,
		SandboxMode: true,
	}
}

// CampaignLoadData describes the campaign a lead set was loaded into
type CampaignLoadData struct {
	CampaignName  string `json:"campaignName"`
	LeadsCount    int    `json:"leadsCount"`
	DailyVolume   int    `json:"dailyVolume"`
	EstimatedDays int    `json:"estimatedDays"`
	Inboxes       int    `json:"inboxes"`
}

// LoadCampaign loads the held leads into a campaign, creating it when the
// name is new
func (s *Simulator) LoadCampaign(ctx context.Context, campaignName string) *core.SimulationResult {
	s.simulateDelay(ctx)

	if campaignName == "" {
		campaignName = "New Campaign"
	}

	s.mu.Lock()
	leadCount := len(s.leads)
	if s.findCampaign(campaignName) == nil {
		s.campaigns = append(s.campaigns, core.Campaign{
			ID:              fmt.Sprintf("camp_demo_%03d", len(s.campaigns)+1),
			Name:            campaignName,
			Status:          core.CampaignStatusActive,
			LeadsTotal:      leadCount,
			LeadsRemaining:  leadCount,
			SequenceSteps:   4,
			DailySendVolume: defaultCampaignVolume,
			StartedAt:       s.now().Format("2006-01-02"),
		})
	}
	s.mu.Unlock()

	estimatedDays := int(math.Ceil(float64(leadCount) / float64(defaultCampaignVolume)))

	return &core.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Campaign %q created with %d leads", campaignName, leadCount),
		Data: CampaignLoadData{
			CampaignName:  campaignName,
			LeadsCount:    leadCount,
			DailyVolume:   defaultCampaignVolume,
			EstimatedDays: estimatedDays,
			Inboxes:       campaignInboxCount,
		},
		CostEstimate: []core.CostEstimate{},
		SandboxMode:  true,
	}
}

// ProgressionSummary aggregates a simulated window with display-ready rates
type ProgressionSummary struct {
	Sent      int    `json:"sent"`
	Delivered int    `json:"delivered"`
	Opened    int    `json:"opened"`
	Clicked   int    `json:"clicked"`
	Replied   int    `json:"replied"`
	Bounced   int    `json:"bounced"`
	OpenRate  string `json:"openRate"`
	ReplyRate string `json:"replyRate"`
	ClickRate string `json:"clickRate"`
}

// ProgressionData is the payload of a time progression simulation
type ProgressionData struct {
	Days    int                `json:"days"`
	History []core.DayRecord   `json:"history"`
	Summary ProgressionSummary `json:"summary"`
}

// SimulateProgression fast-forwards campaign activity by the given number of
// days. When a named campaign exists, its own volume and lead pool drive the
// funnel; otherwise the configured defaults apply.
func (s *Simulator) SimulateProgression(ctx context.Context, days int, campaignName string) *core.SimulationResult {
	s.simulateDelay(ctx)

	if days <= 0 {
		days = 7
	}

	volume := s.progressionVolume
	leads := s.progressionLeads

	s.mu.Lock()
	if campaign := s.findCampaign(campaignName); campaign != nil {
		volume = campaign.DailySendVolume
		if campaign.LeadsRemaining > 0 {
			leads = campaign.LeadsRemaining
		}
	}
	history := CampaignHistory(s.rng, days, volume, leads)
	s.mu.Unlock()

	summary := ProgressionSummary{}
	for _, day := range history {
		summary.Sent += day.Sent
		summary.Delivered += day.Delivered
		summary.Opened += day.Opened
		summary.Clicked += day.Clicked
		summary.Replied += day.Replied
		summary.Bounced += day.Bounced
	}
	summary.OpenRate = pctString(summary.Opened, summary.Sent)
	summary.ReplyRate = pctString(summary.Replied, summary.Sent)
	summary.ClickRate = pctString(summary.Clicked, summary.Sent)

	return &core.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Simulated %d days of campaign activity", days),
		Data: ProgressionData{
			Days:    days,
			History: history,
			Summary: summary,
		},
		SandboxMode: true,
	}
}

// findCampaign resolves a campaign by case-insensitive substring match.
// Callers must hold the mutex.
func (s *Simulator) findCampaign(name string) *core.Campaign {
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	for i := range s.campaigns {
		if strings.Contains(strings.ToLower(s.campaigns[i].Name), lower) {
			return &s.campaigns[i]
		}
	}
	return nil
}

// EmailParams identify the two parties of a generated email. "name at
// company" strings split into both fields.
type EmailParams struct {
	Sender          string
	Receiver        string
	SenderWebsite   string
	ReceiverWebsite string
}

// EmailParty is one side of a generated email
type EmailParty struct {
	Name             string `json:"name"`
	Title            string `json:"title,omitempty"`
	Company          string `json:"company"`
	Website          string `json:"website"`
	ValueProposition string `json:"valueProposition,omitempty"`
	Industry         string `json:"industry,omitempty"`
}

// GeneratedEmail is a drafted cold email with its reasoning trail
type GeneratedEmail struct {
	Subject         string `json:"subject"`
	Body            string `json:"body"`
	Personalization string `json:"personalization"`
	Reasoning       string `json:"reasoning"`
}

// EmailData is the payload of an email generation
type EmailData struct {
	Email    GeneratedEmail `json:"email"`
	Sender   EmailParty     `json:"sender"`
	Receiver EmailParty     `json:"receiver"`
}

func splitParty(raw, defaultName, defaultCompany string) (name, company string) {
	name, company = defaultName, defaultCompany
	if raw == "" {
		return name, company
	}
	if idx := strings.Index(raw, " at "); idx >= 0 {
		return raw[:idx], raw[idx+len(" at "):]
	}
	return raw, company
}

// GenerateEmail drafts a templated cold email for the given parties
func (s *Simulator) GenerateEmail(ctx context.Context, params EmailParams) *core.SimulationResult {
	s.simulateDelay(ctx)

	senderName, senderCompany := splitParty(params.Sender, "John Doe", "TechFlow Solutions")
	receiverName, receiverCompany := splitParty(params.Receiver, "Sarah Chen", "CloudStack Inc")

	sender := EmailParty{
		Name:             senderName,
		Company:          senderCompany,
		Website:          params.SenderWebsite,
		ValueProposition: "AI-powered sales automation platform",
		Industry:         "SaaS",
	}
	if sender.Website == "" {
		sender.Website = "techflow-demo.com"
	}
	receiver := EmailParty{
		Name:     receiverName,
		Title:    "VP of Marketing",
		Company:  receiverCompany,
		Website:  params.ReceiverWebsite,
		Industry: "SaaS",
	}
	if receiver.Website == "" {
		receiver.Website = "cloudstack-demo.com"
	}

	personalization := fmt.Sprintf("I noticed %s is doing great work in the %s space.",
		receiver.Company, receiver.Industry)
	body := fmt.Sprintf(`Hi %s,

%s As %s, you're probably dealing with the challenge of scaling demand generation efficiently.

%s helps companies like yours automate their sales outreach and improve conversion rates. We've helped similar SaaS companies increase their reply rates by 3x while saving 10+ hours per week.

Would you be open to a quick 15-minute call to see if there's a fit? No pressure at all.

Best,
%s
%s`, receiver.Name, personalization, receiver.Title, sender.Company, sender.Name, sender.Company)

	return &core.SimulationResult{
		Success: true,
		Message: "Email generated successfully",
		Data: EmailData{
			Email: GeneratedEmail{
				Subject:         fmt.Sprintf("Quick question about %s's demand gen", receiver.Company),
				Body:            body,
				Personalization: personalization,
				Reasoning:       "Personalized opening with clear value proposition connecting to their role and industry.",
			},
			Sender:   sender,
			Receiver: receiver,
		},
		SandboxMode: true,
	}
}

// DomainHealth is the deliverability posture of one sending domain
type DomainHealth struct {
	Name            string `json:"name"`
	Health          int    `json:"health"`
	InboxPlacement  int    `json:"inboxPlacement"`
	SPF             bool   `json:"spf"`
	DKIM            bool   `json:"dkim"`
	DMARC           bool   `json:"dmarc"`
	BlacklistStatus string `json:"blacklistStatus"`
	AgeDays         int    `json:"ageDays"`
}

// InboxHealth is the warmup state of one sending inbox
type InboxHealth struct {
	Email       string  `json:"email"`
	WarmupScore int     `json:"warmupScore"`
	SentToday   int     `json:"sentToday"`
	Limit       int     `json:"limit"`
	Reputation  float64 `json:"reputation"`
}

// DeliverabilityIssue flags something degrading inbox placement
type DeliverabilityIssue struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Impact   string `json:"impact"`
}

// DeliverabilityData is the full infrastructure health report
type DeliverabilityData struct {
	OverallHealth int                   `json:"overallHealth"`
	Domains       []DomainHealth        `json:"domains"`
	Inboxes       []InboxHealth         `json:"inboxes"`
	Issues        []DeliverabilityIssue `json:"issues"`
}

// CheckDeliverability reports the sandbox sending infrastructure health
func (s *Simulator) CheckDeliverability(ctx context.Context) *core.SimulationResult {
	s.simulateDelay(ctx)

	domains := []DomainHealth{
		{Name: "outreach-demo.com", Health: 94, InboxPlacement: 94, SPF: true, DKIM: true, DMARC: true, BlacklistStatus: "clean", AgeDays: 180},
		{Name: "company-demo.com", Health: 67, InboxPlacement: 67, SPF: true, DKIM: true, DMARC: false, BlacklistStatus: "clean", AgeDays: 90},
		{Name: "growth-demo.com", Health: 89, InboxPlacement: 89, SPF: true, DKIM: true, DMARC: true, BlacklistStatus: "clean", AgeDays: 120},
	}
	inboxes := []InboxHealth{
		{Email: "john@outreach-demo.com", WarmupScore: 92, SentToday: 23, Limit: 45, Reputation: 9.2},
		{Email: "sales@company-demo.com", WarmupScore: 78, SentToday: 30, Limit: 30, Reputation: 7.8},
		{Email: "mike@growth-demo.com", WarmupScore: 100, SentToday: 0, Limit: 50, Reputation: 9.5},
	}

	healthSum := 0
	for _, d := range domains {
		healthSum += d.Health
	}
	overall := int(math.Round(float64(healthSum) / float64(len(domains))))

	return &core.SimulationResult{
		Success: true,
		Message: "Deliverability check completed",
		Data: DeliverabilityData{
			OverallHealth: overall,
			Domains:       domains,
			Inboxes:       inboxes,
			Issues: []DeliverabilityIssue{
				{Severity: "warning", Message: "company-demo.com missing DMARC record", Impact: "Inbox rate at risk"},
				{Severity: "info", Message: "sales@ at daily limit", Impact: "Consider adding inbox"},
			},
		},
		SandboxMode: true,
	}
}

// ExportData describes a simulated lead export
type ExportData struct {
	Format    string `json:"format"`
	LeadCount int    `json:"leadCount"`
	FileName  string `json:"fileName"`
}

// ExportLeads simulates exporting the held leads to a file
func (s *Simulator) ExportLeads(ctx context.Context, format string) *core.SimulationResult {
	s.simulateDelay(ctx)

	if format == "" {
		format = "csv"
	}

	s.mu.Lock()
	count := len(s.leads)
	s.mu.Unlock()

	if count == 0 {
		return failure("No leads available. Search for leads first.")
	}

	fileName := fmt.Sprintf("leads_export_%s.%s", s.now().Format("20060102"), format)
	return &core.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Exported %d leads to %s", count, fileName),
		Data: ExportData{
			Format:    format,
			LeadCount: count,
			FileName:  fileName,
		},
		SandboxMode: true,
	}
}
