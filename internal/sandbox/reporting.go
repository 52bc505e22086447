package sandbox

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
)

var fullMonthNames = map[string]string{
	"jan": "January", "january": "January",
	"feb": "February", "february": "February",
	"mar": "March", "march": "March",
	"apr": "April", "april": "April",
	"may": "May",
	"jun": "June", "june": "June",
	"jul": "July", "july": "July",
	"aug": "August", "august": "August",
	"sep": "September", "september": "September",
	"oct": "October", "october": "October",
	"nov": "November", "november": "November",
	"dec": "December", "december": "December",
}

// normalizeMonth maps abbreviations and any casing to the full month name.
// Unrecognized input is title-cased as given.
func normalizeMonth(month string) string {
	lower := strings.ToLower(month)
	if full, ok := fullMonthNames[lower]; ok {
		return full
	}
	if month == "" {
		return ""
	}
	return strings.ToUpper(month[:1]) + lower[1:]
}

// ACTLTracker assembles the ACTL & Booked Meeting Tracker report for the
// requested date. Missing date parts default to today. Totals are recomputed
// from the row counts so they can never disagree with the rows.
func (s *Simulator) ACTLTracker(ctx context.Context, month string, day, year int) *core.SimulationResult {
	s.simulateDelay(ctx)

	clients, err := s.store.ACTLClients(ctx)
	if err != nil {
		s.log.Error("loading tracker rows failed", zap.Error(err))
		return failure("Tracker data is unavailable right now.")
	}

	now := s.now()
	reportMonth := normalizeMonth(month)
	if reportMonth == "" {
		reportMonth = now.Month().String()
	}
	if day <= 0 {
		day = now.Day()
	}
	if year <= 0 {
		year = now.Year()
	}
	dateString := fmt.Sprintf("%s %d, %d", reportMonth, day, year)

	var totals core.ACTLTotals
	completionSum := 0.0
	for _, c := range clients {
		completionSum += c.CompletionRate
		totals.PositiveReplies += c.PositiveReplies
		totals.TotalReplies += c.TotalReplies
		totals.TotalEmailSent += c.TotalEmailSent
		if c.MeetingsBooked != core.NoMeetings {
			totals.MeetingsBooked += c.MeetingsBooked
		}
	}
	if len(clients) > 0 {
		totals.CompletionRate = completionSum / float64(len(clients))
	}
	if totals.TotalEmailSent > 0 {
		totals.ReplyRate = float64(totals.TotalReplies) / float64(totals.TotalEmailSent) * 100
	}
	if totals.TotalReplies > 0 {
		totals.PositiveReplyRate = float64(totals.PositiveReplies) / float64(totals.TotalReplies) * 100
	}
	if totals.PositiveReplies > 0 {
		totals.PositiveReplyToMeeting = float64(totals.MeetingsBooked) / float64(totals.PositiveReplies) * 100
	}

	return &core.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("ACTL & Booked Meeting Tracker generated for %s", dateString),
		Data: core.ACTLTrackerData{
			Date:    dateString,
			Clients: clients,
			Totals:  totals,
		},
		SandboxMode: true,
	}
}

// resolveContract finds the client contract best matching the given name:
// exact match, then containment in either direction, then prefix, then the
// first client as the default.
func resolveContract(contracts []core.ClientContract, clientName string) core.ClientContract {
	if len(contracts) == 0 {
		return core.ClientContract{}
	}
	if clientName == "" {
		return contracts[0]
	}
	lower := strings.ToLower(clientName)
	for _, c := range contracts {
		name := strings.ToLower(c.Name)
		if name == lower || strings.Contains(name, lower) || strings.Contains(lower, name) {
			return c
		}
	}
	for _, c := range contracts {
		if strings.HasPrefix(strings.ToLower(c.Name), lower) {
			return c
		}
	}
	return contracts[0]
}

// OverallStats derives the all-time reporting view for one client from its
// contract's total send volume. Every downstream count is a fixed ratio of
// the send volume, and the rates are recomputed from the derived counts.
func (s *Simulator) OverallStats(ctx context.Context, clientName string) *core.SimulationResult {
	s.simulateDelay(ctx)

	contracts, err := s.store.ClientContracts(ctx)
	if err != nil {
		s.log.Error("loading client contracts failed", zap.Error(err))
		return failure("Client stats are unavailable right now.")
	}

	client := resolveContract(contracts, clientName)
	sent := client.TotalSent
	delivered := sent * 97 / 100
	opened := sent * 55 / 100
	clicked := opened * 12 / 100
	replied := sent * 35 / 1000
	positive := replied * 65 / 100
	bounced := sent * 2 / 100
	meetings := positive * 15 / 100

	stats := core.OverallCampaignStats{
		ClientName:           client.Name,
		ContractStartDate:    client.ContractStart,
		TotalEmailSent:       sent,
		TotalDelivered:       delivered,
		TotalOpened:          opened,
		TotalClicked:         clicked,
		TotalReplied:         replied,
		TotalPositiveReplies: positive,
		TotalBounced:         bounced,
		TotalMeetingsBooked:  meetings,
		OpenRate:             pct(opened, sent),
		ReplyRate:            pct(replied, sent),
		ClickRate:            pct(clicked, opened),
		BounceRate:           pct(bounced, sent),
		PositiveReplyRate:    pct(positive, replied),
	}

	return &core.SimulationResult{
		Success:     true,
		Message:     fmt.Sprintf("Overall campaign stats for %s", stats.ClientName),
		Data:        stats,
		SandboxMode: true,
	}
}

// clientToCompany maps the tracker client names onto the company names that
// appear in meeting records
var clientToCompany = map[string]string{
	"privy":          "Privy",
	"adaline":        "Adaline",
	"rocketreach":    "RocketReach",
	"vibes":          "Vibes",
	"uplead":         "Uplead",
	"humanly":        "Humanly",
	"consumer optix": "Consumer Optix",
	"superstaff":     "Superstaff",
	"evil genius":    "Evil Genius",
}

func filterMeetings(all []core.MeetingRecord, clientName, campaignName string) []core.MeetingRecord {
	filtered := all
	if clientName != "" {
		lower := strings.ToLower(clientName)
		if company, ok := clientToCompany[lower]; ok {
			filtered = nil
			for _, m := range all {
				if m.Company == company {
					filtered = append(filtered, m)
				}
			}
		} else {
			filtered = nil
			for _, m := range all {
				if strings.Contains(strings.ToLower(m.Company), lower) ||
					strings.Contains(strings.ToLower(m.ProspectName), lower) {
					filtered = append(filtered, m)
				}
			}
		}
	}
	if campaignName != "" {
		lower := strings.ToLower(campaignName)
		narrowed := make([]core.MeetingRecord, 0, len(filtered))
		for _, m := range filtered {
			if strings.Contains(strings.ToLower(m.CampaignName), lower) {
				narrowed = append(narrowed, m)
			}
		}
		filtered = narrowed
	}
	if filtered == nil {
		filtered = []core.MeetingRecord{}
	}
	return filtered
}

// MeetingsCountData is the payload of a meetings count query
type MeetingsCountData struct {
	Count        int    `json:"count"`
	ClientName   string `json:"clientName,omitempty"`
	CampaignName string `json:"campaignName,omitempty"`
}

// MeetingsDetailsData is the payload of a meetings details query
type MeetingsDetailsData struct {
	Count        int                  `json:"count"`
	Meetings     []core.MeetingRecord `json:"meetings"`
	ClientName   string               `json:"clientName,omitempty"`
	CampaignName string               `json:"campaignName,omitempty"`
}

// MeetingsCount answers "how many meetings" queries, optionally scoped to a
// client and campaign
func (s *Simulator) MeetingsCount(ctx context.Context, clientName, campaignName string) *core.SimulationResult {
	s.simulateDelay(ctx)

	all, err := s.store.Meetings(ctx)
	if err != nil {
		s.log.Error("loading meetings failed", zap.Error(err))
		return failure("Meeting data is unavailable right now.")
	}

	filtered := filterMeetings(all, clientName, campaignName)
	plural := "s"
	if len(filtered) == 1 {
		plural = ""
	}

	return &core.SimulationResult{
		Success: true,
		Message: fmt.Sprintf("Found %d meeting%s booked", len(filtered), plural),
		Data: MeetingsCountData{
			Count:        len(filtered),
			ClientName:   clientName,
			CampaignName: campaignName,
		},
		SandboxMode: true,
	}
}

// MeetingsDetails returns the full meeting records matching the filters
func (s *Simulator) MeetingsDetails(ctx context.Context, clientName, campaignName string) *core.SimulationResult {
	s.simulateDelay(ctx)

	all, err := s.store.Meetings(ctx)
	if err != nil {
		s.log.Error("loading meetings failed", zap.Error(err))
		return failure("Meeting data is unavailable right now.")
	}

	filtered := filterMeetings(all, clientName, campaignName)

	scope := clientName
	if scope == "" {
		scope = "all clients"
	}
	message := fmt.Sprintf("Meeting details for %s", scope)
	if campaignName != "" {
		message += " - " + campaignName
	}

	return &core.SimulationResult{
		Success: true,
		Message: message,
		Data: MeetingsDetailsData{
			Count:        len(filtered),
			Meetings:     filtered,
			ClientName:   clientName,
			CampaignName: campaignName,
		},
		SandboxMode: true,
	}
}
