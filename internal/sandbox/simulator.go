package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
)

const (
	maxSearchResults = 500

	apolloCostPerLead     = 0.05
	verifierCostPerEmail  = 0.0012
	defaultCampaignVolume = 45
	campaignInboxCount    = 3
)

// Simulator executes parsed commands against synthetic data instead of live
// providers. All state mutations go through the mutex so a single instance
// can serve concurrent sessions.
type Simulator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	gen       *Generator
	store     core.ReferenceStore
	log       *zap.Logger
	now       func() time.Time
	latencyLo time.Duration
	latencyHi time.Duration

	// progression defaults, overridable through config
	progressionVolume int
	progressionLeads  int

	leads     []core.Lead
	campaigns []core.Campaign
}

// Option configures a Simulator
type Option func(*Simulator)

// WithLatency sets the simulated provider latency window. A zero window
// disables the artificial delay, which tests rely on.
func WithLatency(lo, hi time.Duration) Option {
	return func(s *Simulator) {
		s.latencyLo = lo
		s.latencyHi = hi
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		s.now = now
	}
}

// WithProgressionDefaults overrides the daily volume and lead pool used by
// time progression when no campaign context is given
func WithProgressionDefaults(dailyVolume, totalLeads int) Option {
	return func(s *Simulator) {
		s.progressionVolume = dailyVolume
		s.progressionLeads = totalLeads
	}
}

// New creates a simulator over the given random source and reference store
func New(rng *rand.Rand, store core.ReferenceStore, log *zap.Logger, opts ...Option) *Simulator {
	s := &Simulator{
		rng:               rng,
		gen:               NewGenerator(rng),
		store:             store,
		log:               log,
		now:               time.Now,
		progressionVolume: 120,
		progressionLeads:  171,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.campaigns = DemoCampaigns(rng)
	return s
}

// simulateDelay sleeps a random duration inside the configured latency
// window, honoring context cancellation
func (s *Simulator) simulateDelay(ctx context.Context) {
	if s.latencyHi <= 0 {
		return
	}
	span := s.latencyHi - s.latencyLo
	d := s.latencyLo
	if span > 0 {
		d += time.Duration(s.rng.Int63n(int64(span)))
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

func failure(message string) *core.SimulationResult {
	return &core.SimulationResult{
		Success:     false,
		Message:     message,
		SandboxMode: true,
	}
}

// Run dispatches a parsed command to its simulation. It never panics out:
// anything unexpected is converted into a failed result so the command
// pipeline always has something to render.
func (s *Simulator) Run(ctx context.Context, cmd *core.ParsedCommand) (result *core.SimulationResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("simulation panicked",
				zap.String("action", cmd.Action),
				zap.Any("cause", r))
			result = failure("Command failed unexpectedly. Try rephrasing or type 'help'.")
		}
	}()

	s.log.Debug("running simulation",
		zap.String("action", cmd.Action),
		zap.String("source", cmd.Source))

	p := cmd.Parameters
	switch cmd.Action {
	case "find":
		return s.SearchLeads(ctx, searchParamsFrom(p))
	case "verify":
		return s.VerifyLeads(ctx)
	case "enrich":
		return s.EnrichLeads(ctx)
	case "load_into_campaign":
		name, _ := core.StringParam(p, "campaign_name")
		return s.LoadCampaign(ctx, name)
	case "create_campaign":
		name, _ := core.StringParam(p, "name")
		return s.LoadCampaign(ctx, name)
	case "simulate":
		days, ok := core.IntParam(p, "days")
		if !ok {
			days = 7
		}
		campaign, _ := core.StringParam(p, "campaign_name")
		return s.SimulateProgression(ctx, days, campaign)
	case "pause_campaign":
		name, _ := core.StringParam(p, "campaign_name")
		return s.SetCampaignStatus(ctx, name, core.CampaignStatusPaused)
	case "resume_campaign":
		name, _ := core.StringParam(p, "campaign_name")
		return s.SetCampaignStatus(ctx, name, core.CampaignStatusActive)
	case "show_campaigns":
		return s.ShowCampaigns(ctx)
	case "campaign_performance":
		compare, _ := core.BoolParam(p, "compare")
		period, _ := core.StringParam(p, "period")
		return s.CampaignPerformance(ctx, compare, period)
	case "show_replies":
		filter, _ := core.StringParam(p, "filter")
		return s.ShowReplies(ctx, filter)
	case "check_deliverability":
		return s.CheckDeliverability(ctx)
	case "generate_email":
		return s.GenerateEmail(ctx, emailParamsFrom(p))
	case "export":
		format, _ := core.StringParam(p, "format")
		return s.ExportLeads(ctx, format)
	case "actl_tracker":
		month, _ := core.StringParam(p, "month")
		day, _ := core.IntParam(p, "date")
		year, _ := core.IntParam(p, "year")
		return s.ACTLTracker(ctx, month, day, year)
	case "overall_campaign_stats":
		client, _ := core.StringParam(p, "clientName")
		return s.OverallStats(ctx, client)
	case "meetings_count":
		client, _ := core.StringParam(p, "clientName")
		campaign, _ := core.StringParam(p, "campaignName")
		return s.MeetingsCount(ctx, client, campaign)
	case "meetings_details":
		client, _ := core.StringParam(p, "clientName")
		campaign, _ := core.StringParam(p, "campaignName")
		return s.MeetingsDetails(ctx, client, campaign)
	case "help":
		return s.Help()
	default:
		original, _ := core.StringParam(p, "originalCommand")
		return s.UnknownCommand(original)
	}
}

// HeldLeads returns the leads produced by the most recent search
func (s *Simulator) HeldLeads() []core.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

// SetLeads replaces the held lead set
func (s *Simulator) SetLeads(leads []core.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = leads
}

// HasLeads reports whether a prior search left leads to operate on
func (s *Simulator) HasLeads() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads) > 0
}

// CampaignNames returns the names of all campaigns known to the sandbox
func (s *Simulator) CampaignNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		names = append(names, c.Name)
	}
	return names
}

func searchParamsFrom(p map[string]any) SearchParams {
	params := SearchParams{Count: 100}
	if n, ok := core.IntParam(p, "count"); ok {
		params.Count = n
	}
	if titles, ok := core.StringSliceParam(p, "titles"); ok {
		params.Filters.Titles = titles
	}
	if industry, ok := core.StringParam(p, "industry"); ok {
		params.Filters.Industry = industry
	}
	if loc, ok := core.MapParam(p, "location"); ok {
		params.Filters.City, _ = core.StringParam(loc, "city")
		params.Filters.State, _ = core.StringParam(loc, "state")
		params.Filters.Country, _ = core.StringParam(loc, "country")
	}
	if rng, ok := core.MapParam(p, "employee_range"); ok {
		params.Filters.EmployeeMin, _ = core.IntParam(rng, "min")
		params.Filters.EmployeeMax, _ = core.IntParam(rng, "max")
	}
	return params
}

func emailParamsFrom(p map[string]any) EmailParams {
	var params EmailParams
	params.Sender, _ = core.StringParam(p, "sender")
	params.Receiver, _ = core.StringParam(p, "receiver")
	params.SenderWebsite, _ = core.StringParam(p, "senderWebsite")
	params.ReceiverWebsite, _ = core.StringParam(p, "receiverWebsite")
	return params
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func pctString(part, whole int) string {
	return fmt.Sprintf("%.1f", pct(part, whole))
}
