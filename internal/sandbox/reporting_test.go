package sandbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/coldflow-core/internal/adapters/refdata"
	"github.com/mikey/coldflow-core/internal/core"
)

func TestACTLTrackerBuildsReport(t *testing.T) {
	s := newTestSimulator(1)

	result := runCommand(t, s, "actl_tracker", map[string]any{
		"month": "December",
		"date":  5,
		"year":  2024,
	})
	require.True(t, result.Success)
	assert.Equal(t, "ACTL & Booked Meeting Tracker generated for December 5, 2024", result.Message)

	data, ok := result.Data.(core.ACTLTrackerData)
	require.True(t, ok)
	assert.Equal(t, "December 5, 2024", data.Date)
	assert.Len(t, data.Clients, 15)
}

func TestACTLTrackerTotalsRecomputedFromRows(t *testing.T) {
	s := newTestSimulator(2)

	result := runCommand(t, s, "actl_tracker", map[string]any{"month": "dec", "date": 1, "year": 2024})
	require.True(t, result.Success)
	data := result.Data.(core.ACTLTrackerData)

	var replies, sent, positive, meetings int
	completion := 0.0
	for _, c := range data.Clients {
		completion += c.CompletionRate
		replies += c.TotalReplies
		sent += c.TotalEmailSent
		positive += c.PositiveReplies
		if c.MeetingsBooked != core.NoMeetings {
			meetings += c.MeetingsBooked
		}
	}

	assert.Equal(t, replies, data.Totals.TotalReplies)
	assert.Equal(t, sent, data.Totals.TotalEmailSent)
	assert.Equal(t, positive, data.Totals.PositiveReplies)
	assert.Equal(t, meetings, data.Totals.MeetingsBooked)
	assert.InDelta(t, completion/float64(len(data.Clients)), data.Totals.CompletionRate, 0.001)
	assert.InDelta(t, float64(replies)/float64(sent)*100, data.Totals.ReplyRate, 0.001)
	assert.InDelta(t, float64(positive)/float64(replies)*100, data.Totals.PositiveReplyRate, 0.001)
	assert.InDelta(t, float64(meetings)/float64(positive)*100, data.Totals.PositiveReplyToMeeting, 0.001)
}

func TestACTLTrackerDefaultsToToday(t *testing.T) {
	s := newTestSimulator(3)
	s.now = func() time.Time {
		return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	}

	result := runCommand(t, s, "actl_tracker", nil)
	require.True(t, result.Success)
	assert.Equal(t, "ACTL & Booked Meeting Tracker generated for March 10, 2025", result.Message)
}

func TestNormalizeMonth(t *testing.T) {
	assert.Equal(t, "December", normalizeMonth("dec"))
	assert.Equal(t, "December", normalizeMonth("DECEMBER"))
	assert.Equal(t, "May", normalizeMonth("may"))
	assert.Equal(t, "", normalizeMonth(""))
	assert.Equal(t, "Brumaire", normalizeMonth("brumaire"))
}

func TestResolveContractCascade(t *testing.T) {
	contracts := refdata.SeedClientContracts()

	// Exact match
	assert.Equal(t, "Privy", resolveContract(contracts, "Privy").Name)
	// Case-insensitive match
	assert.Equal(t, "Privy", resolveContract(contracts, "privy").Name)
	// Query contained in a client name
	assert.Equal(t, "Consumer Optix", resolveContract(contracts, "optix").Name)
	// Client name contained in the query
	assert.Equal(t, "Uplead", resolveContract(contracts, "uplead stats please").Name)
	// No match falls back to the first client
	assert.Equal(t, contracts[0].Name, resolveContract(contracts, "nonexistent").Name)
	// Empty query means the first client
	assert.Equal(t, contracts[0].Name, resolveContract(contracts, "").Name)
}

func TestOverallStatsDerivation(t *testing.T) {
	s := newTestSimulator(4)

	result := runCommand(t, s, "overall_campaign_stats", map[string]any{"clientName": "privy"})
	require.True(t, result.Success)
	assert.Equal(t, "Overall campaign stats for Privy", result.Message)

	stats, ok := result.Data.(core.OverallCampaignStats)
	require.True(t, ok)
	assert.Equal(t, 18192, stats.TotalEmailSent)
	assert.Equal(t, 18192*97/100, stats.TotalDelivered)
	assert.Equal(t, 18192*55/100, stats.TotalOpened)
	assert.Equal(t, stats.TotalOpened*12/100, stats.TotalClicked)
	assert.Equal(t, 18192*35/1000, stats.TotalReplied)
	assert.Equal(t, stats.TotalReplied*65/100, stats.TotalPositiveReplies)
	assert.Equal(t, stats.TotalPositiveReplies*15/100, stats.TotalMeetingsBooked)

	assert.InDelta(t, float64(stats.TotalOpened)/float64(stats.TotalEmailSent)*100, stats.OpenRate, 0.001)
	assert.InDelta(t, float64(stats.TotalReplied)/float64(stats.TotalEmailSent)*100, stats.ReplyRate, 0.001)
	assert.InDelta(t, float64(stats.TotalPositiveReplies)/float64(stats.TotalReplied)*100, stats.PositiveReplyRate, 0.001)
}

func TestFilterMeetingsByKnownClient(t *testing.T) {
	all := refdata.SeedMeetings()

	filtered := filterMeetings(all, "privy", "")
	require.Len(t, filtered, 3)
	for _, m := range filtered {
		assert.Equal(t, "Privy", m.Company)
	}
}

func TestFilterMeetingsByClientAndCampaign(t *testing.T) {
	all := refdata.SeedMeetings()

	filtered := filterMeetings(all, "privy", "q4")
	require.Len(t, filtered, 2)
	for _, m := range filtered {
		assert.Equal(t, "Q4 SaaS Outreach", m.CampaignName)
	}
}

func TestFilterMeetingsPartialMatchOnUnknownClient(t *testing.T) {
	all := refdata.SeedMeetings()

	// "sarah" is not a tracker client, so the partial match covers prospect
	// names too
	filtered := filterMeetings(all, "sarah", "")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Sarah Chen", filtered[0].ProspectName)
}

func TestFilterMeetingsNoMatchesYieldsEmptySlice(t *testing.T) {
	filtered := filterMeetings(refdata.SeedMeetings(), "nobody", "")
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestMeetingsCountMessagePluralization(t *testing.T) {
	s := newTestSimulator(5)

	result := runCommand(t, s, "meetings_count", map[string]any{"clientName": "privy"})
	require.True(t, result.Success)
	assert.Equal(t, "Found 3 meetings booked", result.Message)

	result = runCommand(t, s, "meetings_count", map[string]any{"clientName": "sarah"})
	require.True(t, result.Success)
	assert.Equal(t, "Found 1 meeting booked", result.Message)
}

func TestMeetingsDetailsScopesMessage(t *testing.T) {
	s := newTestSimulator(6)

	result := runCommand(t, s, "meetings_details", nil)
	require.True(t, result.Success)
	assert.Equal(t, "Meeting details for all clients", result.Message)
	data := result.Data.(MeetingsDetailsData)
	assert.Len(t, data.Meetings, 13)

	result = runCommand(t, s, "meetings_details", map[string]any{
		"clientName":   "adaline",
		"campaignName": "agency",
	})
	require.True(t, result.Success)
	assert.Equal(t, "Meeting details for adaline - agency", result.Message)
	data = result.Data.(MeetingsDetailsData)
	require.Len(t, data.Meetings, 1)
	assert.Equal(t, "Patricia Brown", data.Meetings[0].ProspectName)
}
