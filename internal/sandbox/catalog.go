package sandbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/mikey/coldflow-core/internal/core"
)

// CampaignSummary is one row of the campaign list view
type CampaignSummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Sent           int    `json:"sent"`
	OpenRate       string `json:"openRate"`
	ReplyRate      string `json:"replyRate"`
	MeetingsBooked int    `json:"meetingsBooked"`
}

// CampaignListData is the payload of a campaign list query
type CampaignListData struct {
	Campaigns []CampaignSummary `json:"campaigns"`
	Active    int               `json:"active"`
	Paused    int               `json:"paused"`
	Draft     int               `json:"draft"`
	Completed int               `json:"completed"`
}

// ShowCampaigns lists every campaign with headline rates
func (s *Simulator) ShowCampaigns(ctx context.Context) *core.SimulationResult {
	s.simulateDelay(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	data := CampaignListData{Campaigns: make([]CampaignSummary, 0, len(s.campaigns))}
	for _, c := range s.campaigns {
		data.Campaigns = append(data.Campaigns, CampaignSummary{
			ID:             c.ID,
			Name:           c.Name,
			Status:         c.Status,
			Sent:           c.Stats.Sent,
			OpenRate:       pctString(c.Stats.Opened, c.Stats.Sent),
			ReplyRate:      pctString(c.Stats.Replied, c.Stats.Sent),
			MeetingsBooked: c.Stats.MeetingsBooked,
		})
		switch c.Status {
		case core.CampaignStatusActive:
			data.Active++
		case core.CampaignStatusPaused:
			data.Paused++
		case core.CampaignStatusDraft:
			data.Draft++
		case core.CampaignStatusCompleted:
			data.Completed++
		}
	}

	return &core.SimulationResult{
		Success:     true,
		Message:     fmt.Sprintf("Showing %d campaigns", len(data.Campaigns)),
		Data:        data,
		SandboxMode: true,
	}
}

// PerformanceData aggregates the active campaigns into a single view. The
// totals are summed from campaign counters and the rates recomputed, so the
// overview always agrees with the per-campaign numbers.
type PerformanceData struct {
	TotalCampaigns int               `json:"totalCampaigns"`
	Active         int               `json:"active"`
	TotalSent      int               `json:"totalSent"`
	OpenRate       string            `json:"openRate"`
	ReplyRate      string            `json:"replyRate"`
	ClickRate      string            `json:"clickRate"`
	MeetingsBooked int               `json:"meetingsBooked"`
	TopCampaign    string            `json:"topCampaign"`
	TopReplyRate   string            `json:"topReplyRate"`
	Period         string            `json:"period,omitempty"`
	Breakdown      []CampaignSummary `json:"breakdown,omitempty"`
}

// CampaignPerformance reports aggregate performance across active campaigns.
// compare adds a per-campaign breakdown; period narrows each campaign to the
// tail of its daily history.
func (s *Simulator) CampaignPerformance(ctx context.Context, compare bool, period string) *core.SimulationResult {
	s.simulateDelay(ctx)

	windowDays := 0
	switch period {
	case "week":
		windowDays = 7
	case "month":
		windowDays = 30
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := PerformanceData{Period: period}
	var sent, opened, clicked, replied, meetings int
	topRate := -1.0
	for _, c := range s.campaigns {
		data.TotalCampaigns++
		if c.Status != core.CampaignStatusActive {
			continue
		}
		data.Active++

		stats := c.Stats
		if windowDays > 0 {
			stats = windowStats(c.DailyHistory, windowDays)
		}
		sent += stats.Sent
		opened += stats.Opened
		clicked += stats.Clicked
		replied += stats.Replied
		meetings += c.Stats.MeetingsBooked

		if rate := pct(stats.Replied, stats.Sent); stats.Sent > 0 && rate > topRate {
			topRate = rate
			data.TopCampaign = c.Name
		}
		if compare {
			data.Breakdown = append(data.Breakdown, CampaignSummary{
				ID:             c.ID,
				Name:           c.Name,
				Status:         c.Status,
				Sent:           stats.Sent,
				OpenRate:       pctString(stats.Opened, stats.Sent),
				ReplyRate:      pctString(stats.Replied, stats.Sent),
				MeetingsBooked: c.Stats.MeetingsBooked,
			})
		}
	}

	data.TotalSent = sent
	data.OpenRate = pctString(opened, sent)
	data.ReplyRate = pctString(replied, sent)
	data.ClickRate = pctString(clicked, sent)
	data.MeetingsBooked = meetings
	if topRate >= 0 {
		data.TopReplyRate = fmt.Sprintf("%.1f", topRate)
	}

	return &core.SimulationResult{
		Success:     true,
		Message:     fmt.Sprintf("Performance across %d active campaigns", data.Active),
		Data:        data,
		SandboxMode: true,
	}
}

// windowStats folds only the last windowDays of history into counters
func windowStats(history []core.DayRecord, windowDays int) core.CampaignStats {
	start := len(history) - windowDays
	if start < 0 {
		start = 0
	}
	var stats core.CampaignStats
	for _, day := range history[start:] {
		stats.Sent += day.Sent
		stats.Delivered += day.Delivered
		stats.Opened += day.Opened
		stats.Clicked += day.Clicked
		stats.Replied += day.Replied
		stats.Bounced += day.Bounced
	}
	return stats
}

// SetCampaignStatus pauses or resumes a campaign by name
func (s *Simulator) SetCampaignStatus(ctx context.Context, campaignName, status string) *core.SimulationResult {
	s.simulateDelay(ctx)

	display := campaignName
	if display == "" {
		display = "campaign"
	}

	s.mu.Lock()
	if campaign := s.findCampaign(campaignName); campaign != nil {
		campaign.Status = status
		display = campaign.Name
	}
	s.mu.Unlock()

	var message string
	if status == core.CampaignStatusPaused {
		message = fmt.Sprintf("Campaign %q has been paused. No new emails will be sent until you resume.", display)
	} else {
		message = fmt.Sprintf("Campaign %q has been resumed. Emails will continue sending according to schedule.", display)
	}

	return &core.SimulationResult{
		Success: true,
		Message: message,
		Data: map[string]any{
			"campaignName": display,
			"status":       status,
		},
		SandboxMode: true,
	}
}

// ReplyPreview is one line of the recent-replies list
type ReplyPreview struct {
	From      string `json:"from"`
	Company   string `json:"company"`
	Sentiment string `json:"sentiment"`
}

// ReplyInboxData summarizes the sandbox reply inbox
type ReplyInboxData struct {
	Filter   string         `json:"filter,omitempty"`
	Total    int            `json:"total"`
	Unread   int            `json:"unread"`
	Positive int            `json:"positive"`
	Negative int            `json:"negative"`
	Neutral  int            `json:"neutral"`
	Recent   []ReplyPreview `json:"recent"`
}

// ShowReplies reports the reply inbox summary, optionally labeled with the
// requested filter
func (s *Simulator) ShowReplies(ctx context.Context, filter string) *core.SimulationResult {
	s.simulateDelay(ctx)

	data := ReplyInboxData{
		Filter:   filter,
		Total:    127,
		Unread:   23,
		Positive: 8,
		Negative: 3,
		Neutral:  116,
		Recent: []ReplyPreview{
			{From: "Sarah Chen", Company: "CloudStack", Sentiment: "positive"},
			{From: "Marcus Johnson", Company: "TechFlow", Sentiment: "positive"},
			{From: "Emily Rodriguez", Company: "SaaSify", Sentiment: "neutral"},
		},
	}

	message := "Reply inbox summary"
	if filter != "" {
		message = fmt.Sprintf("Reply inbox summary (%s)", filter)
	}

	return &core.SimulationResult{
		Success:     true,
		Message:     message,
		Data:        data,
		SandboxMode: true,
	}
}

// HelpTopic is one category of command examples
type HelpTopic struct {
	Category string   `json:"category"`
	Examples []string `json:"examples"`
}

// HelpData is the help catalog payload
type HelpData struct {
	Intro  string      `json:"intro"`
	Topics []HelpTopic `json:"topics"`
}

// Help returns the command catalog
func (s *Simulator) Help() *core.SimulationResult {
	data := HelpData{
		Intro: "You can type anything in natural language. No specific format needed.",
		Topics: []HelpTopic{
			{Category: "Finding Leads", Examples: []string{
				`"I need 200 marketing directors"`,
				`"Find me CTOs at SaaS companies"`,
				`"Show me VP of Sales in California"`,
			}},
			{Category: "Email Verification", Examples: []string{
				`"Verify these emails"`,
				`"Check if these are valid"`,
				`"Are these emails good?"`,
			}},
			{Category: "Campaigns", Examples: []string{
				`"Create a campaign called Q1 Outreach"`,
				`"Load leads into my campaign"`,
				`"Show me all campaigns"`,
				`"Pause the Healthcare campaign"`,
			}},
			{Category: "Email Generation", Examples: []string{
				`"Generate an email to Sarah Chen at CloudStack"`,
				`"Write a cold email for marketing directors"`,
			}},
			{Category: "Deliverability", Examples: []string{
				`"Check my domain health"`,
				`"What's my deliverability status?"`,
			}},
			{Category: "Analytics", Examples: []string{
				`"How are my campaigns doing?"`,
				`"Show me campaign stats"`,
				`"Give me ACTL & Booked Meeting Tracker for December 5 2024"`,
				`"Overall campaign stats for Adaline"`,
				`"How many meetings were booked for Privy?"`,
			}},
			{Category: "Simulation", Examples: []string{
				`"Simulate 7 days"`,
				`"Fast forward 2 weeks"`,
			}},
		},
	}

	return &core.SimulationResult{
		Success:     true,
		Message:     "ColdFlow command help",
		Data:        data,
		SandboxMode: true,
	}
}

// UnknownCommand produces the guidance payload for unrecognized input
func (s *Simulator) UnknownCommand(original string) *core.SimulationResult {
	message := "Unknown command. Try typing what you want in plain English, or type \"help\" for examples."
	if original != "" {
		message = fmt.Sprintf("Unknown command: %q. Try typing what you want in plain English, or type \"help\" for examples.", strings.TrimSpace(original))
	}
	return &core.SimulationResult{
		Success:     false,
		Message:     message,
		Data:        map[string]any{"originalCommand": original},
		SandboxMode: true,
	}
}
