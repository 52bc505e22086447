package sandbox

import (
	"math"
	"math/rand"

	"github.com/mikey/coldflow-core/internal/core"
)

// CampaignHistory simulates a day-by-day sending funnel. Each day sends up to
// dailyVolume emails with ±10% jitter, capped by the leads still uncontacted,
// and derives the downstream funnel counts from per-day sampled rates. The
// loop stops early once every lead has been contacted.
func CampaignHistory(rng *rand.Rand, days, dailyVolume, totalLeads int) []core.DayRecord {
	history := make([]core.DayRecord, 0, days)
	totalSent := 0
	for day := 1; day <= days; day++ {
		remaining := totalLeads - totalSent
		if remaining <= 0 {
			break
		}
		sent := int(math.Floor(float64(dailyVolume) * (0.9 + rng.Float64()*0.2)))
		if sent > remaining {
			sent = remaining
		}

		openRate := 0.45 + rng.Float64()*0.25
		clickRate := 0.12 + rng.Float64()*0.08
		replyRate := 0.02 + rng.Float64()*0.04

		rec := core.DayRecord{
			Day:       day,
			Sent:      sent,
			Delivered: int(math.Floor(float64(sent) * 0.97)),
			Opened:    int(math.Floor(float64(sent) * openRate)),
			Clicked:   int(math.Floor(float64(sent) * openRate * clickRate)),
			Replied:   int(math.Floor(float64(sent) * replyRate)),
			Bounced:   int(math.Floor(float64(sent) * 0.02)),
		}
		history = append(history, rec)
		totalSent += sent
	}
	return history
}

// statsFromHistory folds daily records into cumulative counters, splitting the
// replies into sentiments so that positive+neutral+negative == replied.
func statsFromHistory(history []core.DayRecord, positiveShare, negativeShare, meetingShare float64) core.CampaignStats {
	var stats core.CampaignStats
	for _, day := range history {
		stats.Sent += day.Sent
		stats.Delivered += day.Delivered
		stats.Opened += day.Opened
		stats.Clicked += day.Clicked
		stats.Replied += day.Replied
		stats.Bounced += day.Bounced
	}
	stats.PositiveReplies = int(math.Floor(float64(stats.Replied) * positiveShare))
	stats.NegativeReplies = int(math.Floor(float64(stats.Replied) * negativeShare))
	stats.NeutralReplies = stats.Replied - stats.PositiveReplies - stats.NegativeReplies
	stats.MeetingsBooked = int(math.Floor(float64(stats.PositiveReplies) * meetingShare))
	return stats
}

func sumSent(history []core.DayRecord) int {
	total := 0
	for _, day := range history {
		total += day.Sent
	}
	return total
}

// DemoCampaigns builds the workspace's seeded campaign roster. Stats are
// always derived from each campaign's own daily history so cumulative
// counters match the sum of their daily deltas.
func DemoCampaigns(rng *rand.Rand) []core.Campaign {
	type seed struct {
		id, name, status   string
		days, daily, leads int
		startedAt          string
		positive, negative float64
		meeting            float64
	}
	seeds := []seed{
		{"camp_demo_001", "Q4 SaaS Outreach", core.CampaignStatusActive, 30, 120, 2340, "2025-07-28", 0.66, 0.11, 0.15},
		{"camp_demo_002", "Fintech Decision Makers", core.CampaignStatusActive, 20, 60, 890, "2025-08-08", 0.60, 0.10, 0.12},
		{"camp_demo_003", "Agency Partnership", core.CampaignStatusActive, 15, 40, 312, "2025-08-14", 0.70, 0.10, 0.18},
		{"camp_demo_004", "Healthcare Outreach", core.CampaignStatusPaused, 4, 50, 200, "2025-08-22", 0.65, 0.12, 0.15},
		{"camp_demo_005", "E-commerce Q1", core.CampaignStatusDraft, 0, 45, 450, "", 0, 0, 0},
		{"camp_demo_006", "Founder Warm Intro", core.CampaignStatusCompleted, 25, 50, 890, "2025-06-20", 0.65, 0.10, 0.14},
	}

	campaigns := make([]core.Campaign, 0, len(seeds))
	for _, s := range seeds {
		var history []core.DayRecord
		var stats core.CampaignStats
		if s.days > 0 {
			history = CampaignHistory(rng, s.days, s.daily, s.leads)
			stats = statsFromHistory(history, s.positive, s.negative, s.meeting)
		}
		contacted := sumSent(history)
		campaigns = append(campaigns, core.Campaign{
			ID:              s.id,
			Name:            s.name,
			Status:          s.status,
			LeadsTotal:      s.leads,
			LeadsContacted:  contacted,
			LeadsRemaining:  s.leads - contacted,
			SequenceSteps:   4,
			DailySendVolume: s.daily,
			StartedAt:       s.startedAt,
			Stats:           stats,
			DailyHistory:    history,
		})
	}
	return campaigns
}
