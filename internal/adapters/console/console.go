package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/coldflow-core/internal/core"
	"github.com/mikey/coldflow-core/internal/sandbox"
)

// Console is the interactive command surface. It reads one line at a time,
// runs it through the command pipeline, and renders the outcome.
type Console struct {
	service      *core.CommandService
	sim          *sandbox.Simulator
	integrations []string
	logger       *zap.Logger
	in           io.Reader
	out          io.Writer
	stopCh       chan struct{}
}

// NewConsole creates a new interactive console
func NewConsole(
	service *core.CommandService,
	sim *sandbox.Simulator,
	integrations []string,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		service:      service,
		sim:          sim,
		integrations: integrations,
		logger:       logger,
		in:           in,
		out:          out,
		stopCh:       make(chan struct{}),
	}
}

// session builds the current session context from live sandbox state
func (c *Console) session() *core.SessionContext {
	return &core.SessionContext{
		HasCurrentLeads:    c.sim.HasLeads(),
		AvailableCampaigns: c.sim.CampaignNames(),
		Integrations:       c.integrations,
	}
}

// Execute runs one line of input through the command pipeline
func (c *Console) Execute(ctx context.Context, line string) *core.CommandOutcome {
	return c.service.Execute(ctx, line, c.session())
}

// Start starts the interactive loop and blocks until input ends
func (c *Console) Start(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	fmt.Fprintln(c.out, "ColdFlow sandbox console. Type a command in plain English, or \"help\".")
	fmt.Fprint(c.out, "> ")

	for scanner.Scan() {
		select {
		case <-c.stopCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(c.out, "> ")
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		outcome := c.Execute(ctx, line)
		c.render(outcome)
		fmt.Fprint(c.out, "> ")
	}
	return scanner.Err()
}

// Stop stops the console
func (c *Console) Stop() error {
	close(c.stopCh)
	return nil
}

// render writes the outcome of one command
func (c *Console) render(outcome *core.CommandOutcome) {
	for _, warning := range outcome.Validation.Warnings {
		fmt.Fprintf(c.out, "! %s\n", warning)
	}

	result := outcome.Result
	if !result.Success {
		fmt.Fprintf(c.out, "x %s\n", result.Message)
		return
	}

	fmt.Fprintf(c.out, "%s\n", result.Message)
	c.renderData(result.Data)

	for _, cost := range result.CostEstimate {
		fmt.Fprintf(c.out, "  Estimated cost: $%.2f %s (%s)\n", cost.Amount, cost.Currency, cost.Service)
	}
	if result.SandboxMode {
		fmt.Fprintln(c.out, "  [SANDBOX] No live providers were touched.")
	}
}

func (c *Console) renderData(data any) {
	switch d := data.(type) {
	case sandbox.SearchResultData:
		c.renderLeads(d)
	case sandbox.VerificationData:
		fmt.Fprintf(c.out, "  valid %d | risky %d | invalid %d | catchall %d (%s%% valid)\n",
			d.Valid, d.Risky, d.Invalid, d.Catchall, d.ValidPercentage)
	case sandbox.CampaignLoadData:
		fmt.Fprintf(c.out, "  %d leads across %d inboxes at %d/day, ~%d days to complete\n",
			d.LeadsCount, d.Inboxes, d.DailyVolume, d.EstimatedDays)
	case sandbox.ProgressionData:
		fmt.Fprintf(c.out, "  sent %d | delivered %d | opened %d | replied %d\n",
			d.Summary.Sent, d.Summary.Delivered, d.Summary.Opened, d.Summary.Replied)
		fmt.Fprintf(c.out, "  open rate %s%% | reply rate %s%% | click rate %s%%\n",
			d.Summary.OpenRate, d.Summary.ReplyRate, d.Summary.ClickRate)
	case sandbox.EmailData:
		fmt.Fprintf(c.out, "  Subject: %s\n\n%s\n", d.Email.Subject, d.Email.Body)
	case sandbox.DeliverabilityData:
		c.renderDeliverability(d)
	case sandbox.CampaignListData:
		c.renderCampaigns(d)
	case sandbox.PerformanceData:
		c.renderPerformance(d)
	case sandbox.ReplyInboxData:
		fmt.Fprintf(c.out, "  total %d | unread %d | positive %d | negative %d | neutral %d\n",
			d.Total, d.Unread, d.Positive, d.Negative, d.Neutral)
		for _, r := range d.Recent {
			fmt.Fprintf(c.out, "  - %s (%s): %s\n", r.From, r.Company, r.Sentiment)
		}
	case sandbox.HelpData:
		c.renderHelp(d)
	case sandbox.MeetingsDetailsData:
		for _, m := range d.Meetings {
			fmt.Fprintf(c.out, "  - %s, %s at %s | %s %s | %s\n",
				m.ProspectName, m.Title, m.Company, m.MeetingDate, m.MeetingTime, m.Status)
		}
	case core.ACTLTrackerData:
		c.renderTracker(d)
	case core.OverallCampaignStats:
		c.renderOverallStats(d)
	}
}

func (c *Console) renderLeads(d sandbox.SearchResultData) {
	preview := d.Leads
	if len(preview) > 5 {
		preview = preview[:5]
	}
	for _, lead := range preview {
		fmt.Fprintf(c.out, "  - %-22s %-24s %-16s %d\n",
			lead.FullName, lead.Title, lead.Company, lead.EmployeeCount)
	}
	if len(d.Leads) > len(preview) {
		fmt.Fprintf(c.out, "  ... and %d more\n", len(d.Leads)-len(preview))
	}
}

func (c *Console) renderDeliverability(d sandbox.DeliverabilityData) {
	fmt.Fprintf(c.out, "  Overall health: %d/100\n", d.OverallHealth)
	for _, domain := range d.Domains {
		fmt.Fprintf(c.out, "  - %s: %d/100, inbox placement %d%%\n",
			domain.Name, domain.Health, domain.InboxPlacement)
	}
	for _, issue := range d.Issues {
		fmt.Fprintf(c.out, "  [%s] %s (%s)\n", issue.Severity, issue.Message, issue.Impact)
	}
}

func (c *Console) renderCampaigns(d sandbox.CampaignListData) {
	for _, campaign := range d.Campaigns {
		fmt.Fprintf(c.out, "  - %-26s %-10s sent %-6d open %s%% reply %s%% meetings %d\n",
			campaign.Name, campaign.Status, campaign.Sent,
			campaign.OpenRate, campaign.ReplyRate, campaign.MeetingsBooked)
	}
	fmt.Fprintf(c.out, "  active %d | paused %d | draft %d | completed %d\n",
		d.Active, d.Paused, d.Draft, d.Completed)
}

func (c *Console) renderPerformance(d sandbox.PerformanceData) {
	fmt.Fprintf(c.out, "  campaigns %d (%d active) | sent %d\n", d.TotalCampaigns, d.Active, d.TotalSent)
	fmt.Fprintf(c.out, "  open rate %s%% | reply rate %s%% | click rate %s%% | meetings %d\n",
		d.OpenRate, d.ReplyRate, d.ClickRate, d.MeetingsBooked)
	if d.TopCampaign != "" {
		fmt.Fprintf(c.out, "  top campaign: %s (%s%% reply rate)\n", d.TopCampaign, d.TopReplyRate)
	}
	for _, row := range d.Breakdown {
		fmt.Fprintf(c.out, "  - %-26s sent %-6d open %s%% reply %s%%\n",
			row.Name, row.Sent, row.OpenRate, row.ReplyRate)
	}
}

func (c *Console) renderHelp(d sandbox.HelpData) {
	fmt.Fprintf(c.out, "  %s\n", d.Intro)
	for _, topic := range d.Topics {
		fmt.Fprintf(c.out, "  %s:\n", topic.Category)
		for _, example := range topic.Examples {
			fmt.Fprintf(c.out, "    %s\n", example)
		}
	}
}

func (c *Console) renderTracker(d core.ACTLTrackerData) {
	for _, client := range d.Clients {
		meetings := "-"
		if client.MeetingsBooked != core.NoMeetings {
			meetings = fmt.Sprintf("%d", client.MeetingsBooked)
		}
		fmt.Fprintf(c.out, "  - %-32s completion %6.2f%% | replies %d (%d positive) | sent %d | meetings %s\n",
			client.ClientName, client.CompletionRate, client.TotalReplies,
			client.PositiveReplies, client.TotalEmailSent, meetings)
	}
	fmt.Fprintf(c.out, "  totals: sent %d | replies %d | positive %d | meetings %d | reply rate %.2f%%\n",
		d.Totals.TotalEmailSent, d.Totals.TotalReplies, d.Totals.PositiveReplies,
		d.Totals.MeetingsBooked, d.Totals.ReplyRate)
}

func (c *Console) renderOverallStats(d core.OverallCampaignStats) {
	fmt.Fprintf(c.out, "  client %s (since %s)\n", d.ClientName, d.ContractStartDate)
	fmt.Fprintf(c.out, "  sent %d | delivered %d | opened %d | clicked %d | replied %d\n",
		d.TotalEmailSent, d.TotalDelivered, d.TotalOpened, d.TotalClicked, d.TotalReplied)
	fmt.Fprintf(c.out, "  open rate %.1f%% | reply rate %.1f%% | bounce rate %.1f%% | meetings %d\n",
		d.OpenRate, d.ReplyRate, d.BounceRate, d.TotalMeetingsBooked)
}
