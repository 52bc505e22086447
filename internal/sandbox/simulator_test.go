package sandbox

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/adapters/refdata"
	"github.com/mikey/coldflow-core/internal/core"
)

func newTestSimulator(seed int64) *Simulator {
	return New(
		rand.New(rand.NewSource(seed)),
		refdata.NewMemoryStore(zap.NewNop()),
		zap.NewNop(),
	)
}

func runCommand(t *testing.T, s *Simulator, action string, params map[string]any) *core.SimulationResult {
	t.Helper()
	if params == nil {
		params = map[string]any{}
	}
	return s.Run(context.Background(), &core.ParsedCommand{Action: action, Parameters: params})
}

func TestSearchLeadsHoldsResults(t *testing.T) {
	s := newTestSimulator(1)

	result := runCommand(t, s, "find", map[string]any{"count": 50})
	require.True(t, result.Success)
	assert.Equal(t, "Found 50 leads matching criteria", result.Message)
	assert.True(t, result.SandboxMode)

	data, ok := result.Data.(SearchResultData)
	require.True(t, ok)
	assert.Len(t, data.Leads, 50)
	assert.Equal(t, 50, data.Count)
	assert.True(t, s.HasLeads())

	require.Len(t, result.CostEstimate, 1)
	assert.Equal(t, "Apollo", result.CostEstimate[0].Service)
	assert.InDelta(t, 2.50, result.CostEstimate[0].Amount, 0.001)
}

func TestSearchLeadsCapped(t *testing.T) {
	s := newTestSimulator(2)

	result := runCommand(t, s, "find", map[string]any{"count": 5000})
	require.True(t, result.Success)
	data := result.Data.(SearchResultData)
	assert.Len(t, data.Leads, 500)
}

func TestSearchLeadsAppliesFilters(t *testing.T) {
	s := newTestSimulator(3)

	result := runCommand(t, s, "find", map[string]any{
		"count":    10,
		"titles":   []string{"marketing director"},
		"industry": "saas",
		"location": map[string]any{"state": "California", "country": "USA"},
	})
	require.True(t, result.Success)
	for _, lead := range result.Data.(SearchResultData).Leads {
		assert.Equal(t, "marketing director", lead.Title)
		assert.Equal(t, "saas", lead.Industry)
		assert.Equal(t, "California", lead.LocationState)
	}
}

func TestVerifyWithoutLeadsFails(t *testing.T) {
	s := newTestSimulator(4)

	result := runCommand(t, s, "verify", nil)
	require.False(t, result.Success)
	assert.Equal(t, "No leads available. Search for leads first.", result.Message)
}

func TestVerifyTalliesHeldLeads(t *testing.T) {
	s := newTestSimulator(5)

	runCommand(t, s, "find", map[string]any{"count": 100})
	result := runCommand(t, s, "verify", nil)
	require.True(t, result.Success)
	assert.Equal(t, "Verified 100 emails", result.Message)

	data, ok := result.Data.(VerificationData)
	require.True(t, ok)
	assert.Equal(t, 100, data.Total)
	assert.Equal(t, data.Total, data.Valid+data.Risky+data.Invalid+data.Catchall)

	require.Len(t, result.CostEstimate, 1)
	assert.Equal(t, "MillionVerifier", result.CostEstimate[0].Service)
	assert.InDelta(t, 0.12, result.CostEstimate[0].Amount, 0.001)
}

func TestEnrichDerivesCoverageFromLeads(t *testing.T) {
	s := newTestSimulator(6)

	runCommand(t, s, "find", map[string]any{"count": 40})
	result := runCommand(t, s, "enrich", nil)
	require.True(t, result.Success)

	data, ok := result.Data.(EnrichmentData)
	require.True(t, ok)
	assert.Equal(t, 40, data.LeadsEnriched)
	assert.LessOrEqual(t, data.PhoneNumbers, data.LeadsEnriched)
	assert.LessOrEqual(t, data.LinkedInFound, data.LeadsEnriched)
	// Generated leads always carry phone, LinkedIn and tech data
	assert.Equal(t, 40, data.PhoneNumbers)
	assert.Equal(t, 40, data.TechStackFound)
}

func TestLoadCampaignCreatesNewCampaign(t *testing.T) {
	s := newTestSimulator(7)

	runCommand(t, s, "find", map[string]any{"count": 90})
	result := runCommand(t, s, "load_into_campaign", map[string]any{"campaign_name": "Spring Push"})
	require.True(t, result.Success)
	assert.Equal(t, `Campaign "Spring Push" created with 90 leads`, result.Message)

	data, ok := result.Data.(CampaignLoadData)
	require.True(t, ok)
	assert.Equal(t, 90, data.LeadsCount)
	assert.Equal(t, 45, data.DailyVolume)
	assert.Equal(t, 2, data.EstimatedDays)
	assert.Equal(t, 3, data.Inboxes)

	assert.Contains(t, s.CampaignNames(), "Spring Push")
}

func TestLoadCampaignDefaultsName(t *testing.T) {
	s := newTestSimulator(8)

	result := runCommand(t, s, "create_campaign", map[string]any{})
	require.True(t, result.Success)
	data := result.Data.(CampaignLoadData)
	assert.Equal(t, "New Campaign", data.CampaignName)
}

func TestSimulateProgressionSummaryMatchesHistory(t *testing.T) {
	s := newTestSimulator(9)

	result := runCommand(t, s, "simulate", map[string]any{"days": 14})
	require.True(t, result.Success)
	assert.Equal(t, "Simulated 14 days of campaign activity", result.Message)

	data, ok := result.Data.(ProgressionData)
	require.True(t, ok)
	assert.Equal(t, 14, data.Days)

	var sent, opened, replied int
	for _, day := range data.History {
		sent += day.Sent
		opened += day.Opened
		replied += day.Replied
	}
	assert.Equal(t, sent, data.Summary.Sent)
	assert.Equal(t, opened, data.Summary.Opened)
	assert.Equal(t, replied, data.Summary.Replied)
}

func TestSimulateProgressionDefaultsToWeek(t *testing.T) {
	s := newTestSimulator(10)

	result := runCommand(t, s, "simulate", nil)
	require.True(t, result.Success)
	assert.Equal(t, "Simulated 7 days of campaign activity", result.Message)
}

func TestSimulateProgressionLeadPoolExhaustion(t *testing.T) {
	// Defaults are 120 sends/day over a 171-lead pool, so a long window must
	// stop after the pool is contacted
	s := newTestSimulator(11)

	result := runCommand(t, s, "simulate", map[string]any{"days": 30})
	require.True(t, result.Success)
	data := result.Data.(ProgressionData)
	assert.LessOrEqual(t, len(data.History), 3)
	assert.Equal(t, 171, data.Summary.Sent)
}

func TestPauseAndResumeCampaign(t *testing.T) {
	s := newTestSimulator(12)

	result := runCommand(t, s, "pause_campaign", map[string]any{"campaign_name": "healthcare"})
	require.True(t, result.Success)
	assert.Equal(t, `Campaign "Healthcare Outreach" has been paused. No new emails will be sent until you resume.`, result.Message)

	result = runCommand(t, s, "resume_campaign", map[string]any{"campaign_name": "healthcare"})
	require.True(t, result.Success)
	assert.Equal(t, `Campaign "Healthcare Outreach" has been resumed. Emails will continue sending according to schedule.`, result.Message)

	s.mu.Lock()
	campaign := s.findCampaign("healthcare")
	s.mu.Unlock()
	require.NotNil(t, campaign)
	assert.Equal(t, core.CampaignStatusActive, campaign.Status)
}

func TestExportWithoutLeadsFails(t *testing.T) {
	s := newTestSimulator(13)

	result := runCommand(t, s, "export", map[string]any{"format": "csv"})
	require.False(t, result.Success)
	assert.Equal(t, "No leads available. Search for leads first.", result.Message)
}

func TestExportDefaultsToCSV(t *testing.T) {
	s := newTestSimulator(14)

	runCommand(t, s, "find", map[string]any{"count": 10})
	result := runCommand(t, s, "export", nil)
	require.True(t, result.Success)
	data := result.Data.(ExportData)
	assert.Equal(t, "csv", data.Format)
	assert.Equal(t, 10, data.LeadCount)
	assert.Contains(t, data.FileName, "leads_export_")
}

func TestGenerateEmailDefaults(t *testing.T) {
	s := newTestSimulator(15)

	result := runCommand(t, s, "generate_email", nil)
	require.True(t, result.Success)
	assert.Equal(t, "Email generated successfully", result.Message)

	data, ok := result.Data.(EmailData)
	require.True(t, ok)
	assert.Equal(t, "John Doe", data.Sender.Name)
	assert.Equal(t, "TechFlow Solutions", data.Sender.Company)
	assert.Equal(t, "Sarah Chen", data.Receiver.Name)
	assert.Equal(t, "CloudStack Inc", data.Receiver.Company)
	assert.Equal(t, "Quick question about CloudStack Inc's demand gen", data.Email.Subject)
	assert.Contains(t, data.Email.Body, "Hi Sarah Chen,")
}

func TestGenerateEmailSplitsPartyAtCompany(t *testing.T) {
	s := newTestSimulator(16)

	result := runCommand(t, s, "generate_email", map[string]any{
		"sender":   "jane at acme",
		"receiver": "bob at globex",
	})
	require.True(t, result.Success)
	data := result.Data.(EmailData)
	assert.Equal(t, "jane", data.Sender.Name)
	assert.Equal(t, "acme", data.Sender.Company)
	assert.Equal(t, "bob", data.Receiver.Name)
	assert.Equal(t, "globex", data.Receiver.Company)
}

func TestCheckDeliverabilityOverallHealth(t *testing.T) {
	s := newTestSimulator(17)

	result := runCommand(t, s, "check_deliverability", nil)
	require.True(t, result.Success)
	assert.Equal(t, "Deliverability check completed", result.Message)

	data, ok := result.Data.(DeliverabilityData)
	require.True(t, ok)
	require.Len(t, data.Domains, 3)
	// Overall health is the rounded mean of the domain scores
	assert.Equal(t, 83, data.OverallHealth)
	assert.NotEmpty(t, data.Issues)
}

func TestUnknownCommandEchoesInput(t *testing.T) {
	s := newTestSimulator(18)

	result := runCommand(t, s, "unknown", map[string]any{"originalCommand": "do the thing"})
	require.False(t, result.Success)
	assert.Equal(t, `Unknown command: "do the thing". Try typing what you want in plain English, or type "help" for examples.`, result.Message)
}

func TestRunRecoversFromPanic(t *testing.T) {
	// A nil store makes the reporting path dereference nil; the dispatcher
	// must convert the panic into a failed result
	s := New(rand.New(rand.NewSource(19)), nil, zap.NewNop())

	result := runCommand(t, s, "actl_tracker", nil)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.Equal(t, "Command failed unexpectedly. Try rephrasing or type 'help'.", result.Message)
}

func TestHeldLeadsReturnsCopy(t *testing.T) {
	s := newTestSimulator(20)

	runCommand(t, s, "find", map[string]any{"count": 5})
	held := s.HeldLeads()
	require.Len(t, held, 5)
	held[0].FullName = "mutated"
	assert.NotEqual(t, "mutated", s.HeldLeads()[0].FullName)
}

func TestCampaignNamesListsSeededRoster(t *testing.T) {
	s := newTestSimulator(21)

	names := s.CampaignNames()
	assert.Contains(t, names, "Q4 SaaS Outreach")
	assert.Contains(t, names, "Fintech Decision Makers")
	assert.Len(t, names, 6)
}
