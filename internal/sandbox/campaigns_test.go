package sandbox

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/coldflow-core/internal/core"
)

func TestCampaignHistoryFunnelBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	history := CampaignHistory(rng, 30, 120, 10000)
	require.NotEmpty(t, history)
	for _, day := range history {
		assert.LessOrEqual(t, day.Delivered, day.Sent)
		assert.LessOrEqual(t, day.Opened, day.Sent)
		assert.LessOrEqual(t, day.Clicked, day.Opened)
		assert.LessOrEqual(t, day.Replied, day.Sent)
		assert.LessOrEqual(t, day.Bounced, day.Sent)
		assert.GreaterOrEqual(t, day.Sent, 0)
	}
}

func TestCampaignHistoryStopsWhenLeadsExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	history := CampaignHistory(rng, 365, 120, 171)
	assert.Less(t, len(history), 365)
	assert.Equal(t, 171, sumSent(history))
}

func TestCampaignHistoryNeverOversends(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		history := CampaignHistory(rand.New(rand.NewSource(seed)), 60, 45, 1000)
		assert.LessOrEqual(t, sumSent(history), 1000)
	}
}

func TestCampaignHistoryDayNumbering(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	history := CampaignHistory(rng, 10, 50, 10000)
	require.Len(t, history, 10)
	for i, day := range history {
		assert.Equal(t, i+1, day.Day)
	}
}

func TestStatsFromHistorySentimentSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	history := CampaignHistory(rng, 30, 120, 5000)
	stats := statsFromHistory(history, 0.66, 0.11, 0.15)

	assert.Equal(t, stats.Replied, stats.PositiveReplies+stats.NeutralReplies+stats.NegativeReplies)
	assert.GreaterOrEqual(t, stats.NeutralReplies, 0)
	assert.LessOrEqual(t, stats.MeetingsBooked, stats.PositiveReplies)
}

func TestStatsFromHistoryMatchesDailySums(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	history := CampaignHistory(rng, 20, 60, 2000)
	stats := statsFromHistory(history, 0.5, 0.2, 0.1)

	var sent, delivered, opened, clicked, replied, bounced int
	for _, day := range history {
		sent += day.Sent
		delivered += day.Delivered
		opened += day.Opened
		clicked += day.Clicked
		replied += day.Replied
		bounced += day.Bounced
	}
	assert.Equal(t, sent, stats.Sent)
	assert.Equal(t, delivered, stats.Delivered)
	assert.Equal(t, opened, stats.Opened)
	assert.Equal(t, clicked, stats.Clicked)
	assert.Equal(t, replied, stats.Replied)
	assert.Equal(t, bounced, stats.Bounced)
}

func TestDemoCampaignsRoster(t *testing.T) {
	campaigns := DemoCampaigns(rand.New(rand.NewSource(7)))
	require.Len(t, campaigns, 6)

	statuses := map[string]int{}
	for _, c := range campaigns {
		statuses[c.Status]++
		assert.Equal(t, c.LeadsTotal, c.LeadsContacted+c.LeadsRemaining, c.Name)
		assert.Equal(t, sumSent(c.DailyHistory), c.Stats.Sent, c.Name)
		assert.Equal(t, c.Stats.Replied, c.Stats.PositiveReplies+c.Stats.NeutralReplies+c.Stats.NegativeReplies, c.Name)
	}
	assert.Equal(t, 3, statuses[core.CampaignStatusActive])
	assert.Equal(t, 1, statuses[core.CampaignStatusPaused])
	assert.Equal(t, 1, statuses[core.CampaignStatusDraft])
	assert.Equal(t, 1, statuses[core.CampaignStatusCompleted])
}

func TestDemoCampaignsDraftHasNoHistory(t *testing.T) {
	campaigns := DemoCampaigns(rand.New(rand.NewSource(8)))

	var draft *core.Campaign
	for i := range campaigns {
		if campaigns[i].Status == core.CampaignStatusDraft {
			draft = &campaigns[i]
		}
	}
	require.NotNil(t, draft)
	assert.Empty(t, draft.DailyHistory)
	assert.Zero(t, draft.Stats.Sent)
	assert.Equal(t, draft.LeadsTotal, draft.LeadsRemaining)
}
