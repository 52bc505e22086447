package interpreter

import (
	"regexp"
	"strings"

	"github.com/mikey/coldflow-core/internal/core"
)

// Keyword tables are immutable static configuration: nothing mutates them
// after process start.

var (
	searchKeywords = []string{"find", "search", "get", "need", "want", "looking for", "show me", "give me", "i need", "i want"}
	searchContextWords = []string{
		"lead", "contact", "person", "director", "manager", "vp",
		"ceo", "cto", "marketing", "sales", "startup", "company",
	}
	countedPeoplePattern = regexp.MustCompile(`\d+\s+(people|contacts|leads)`)

	verifyKeywords  = []string{"verify", "validate", "are these valid", "email status"}
	verifyContext   = []string{"email", "lead", "contact", "these", "are these"}
	loadKeywords    = []string{"load", "add", "send", "put", "move"}
	createKeywords  = []string{"create", "make", "start", "new campaign", "set up"}
	pauseVerbs      = []string{"pause", "stop", "halt"}
	resumeVerbs     = []string{"resume", "continue", "start"}
	showWords       = []string{"show", "display", "list", "view", "see", "what"}
	statsLikeWords  = []string{"performance", "stats", "status", "doing", "open rate", "reply rate"}
	replyShowWords  = []string{"show", "display", "see", "what", "any"}
	analyticsAsk    = []string{"open rate", "reply rate", "performance", "doing", "stats"}
	deliverabilityKeywords = []string{"domain", "deliverability", "health", "reputation", "inbox", "placement", "warmup"}
	emailGenVerbs   = []string{"generate", "write", "create", "draft", "compose", "make", "build"}
	emailGenNouns   = []string{"email", "message", "cold email", "outreach", "email to"}
	meetingDetailWords = []string{"who", "detail", "list", "show", "data", "attend", "status", "information", "meeting detail"}
	meetingCountWords  = []string{"how many", "count", "number", "total"}
	overallStatsKeywords = []string{"overall", "total", "all time", "since start", "contract"}
	overallStatsContext  = []string{"email sent", "emails sent", "sent", "stats", "statistics", "metrics", "performance", "campaign stats"}
	helpKeywords         = []string{"commands", "guide", "what can i do"}
)

// cascade returns the detector table in priority order. Earlier entries beat
// later ones when both could match; several detectors share vocabulary (the
// tracker must fire before the generic meetings detector, pause/resume before
// show-campaigns), so the order is load-bearing.
func cascade() []detector {
	return []detector{
		{name: "actl_tracker", match: matchTracker, parse: parseTracker},
		{name: "find", match: matchLeadSearch, parse: parseLeadSearch},
		{name: "verify", match: matchVerify, parse: parseVerify},
		{name: "enrich", match: matchEnrich, parse: parseEnrich},
		{name: "load_into_campaign", match: matchCampaignLoad, parse: parseCampaignLoad},
		{name: "create_campaign", match: matchCreateCampaign, parse: parseCreateCampaign},
		{name: "simulate", match: matchSimulate, parse: parseSimulate},
		{name: "pause_campaign", match: matchPause, parse: parsePause},
		{name: "resume_campaign", match: matchResume, parse: parseResume},
		{name: "compare_campaigns", match: matchCompare, parse: parseCompare},
		{name: "campaign_performance", match: matchPerformanceQuestion, parse: parsePerformanceQuestion},
		{name: "period_stats", match: matchPeriodStats, parse: parsePeriodStats},
		{name: "show_campaigns", match: matchShowCampaigns, parse: parseShowCampaigns},
		{name: "show_replies", match: matchShowReplies, parse: parseShowReplies},
		{name: "check_deliverability", match: matchDeliverability, parse: parseDeliverability},
		{name: "generate_email", match: matchEmailGen, parse: parseEmailGen},
		{name: "meetings", match: matchMeetings, parse: parseMeetings},
		{name: "overall_campaign_stats", match: matchOverallStats, parse: parseOverallStats},
		{name: "help", match: matchHelp, parse: parseHelp},
	}
}

// The tracker detector fires on "actl" alone or the full phrase conjunction,
// ahead of everything else that mentions meetings.
func matchTracker(in input) bool {
	return strings.Contains(in.lower, "actl") ||
		(strings.Contains(in.lower, "tracker") &&
			strings.Contains(in.lower, "booked") &&
			strings.Contains(in.lower, "meeting"))
}

func parseTracker(in input, it *Interpreter) *core.ParsedCommand {
	month, day, year := extractTrackerDate(in.lower, it.now().Year())
	params := map[string]any{"year": year}
	if month != "" {
		params["month"] = month
	}
	if day > 0 {
		params["date"] = day
	}
	return &core.ParsedCommand{
		Action:     "actl_tracker",
		Parameters: params,
		Intent:     core.IntentAnalytics,
		Confidence: 0.95,
	}
}

func matchLeadSearch(in input) bool {
	if !containsAny(in.lower, searchKeywords) {
		return false
	}
	if containsAny(in.lower, searchContextWords) {
		return true
	}
	if countedPeoplePattern.MatchString(in.lower) {
		return true
	}
	return strings.Contains(in.lower, "at") &&
		(strings.Contains(in.lower, "company") || strings.Contains(in.lower, "startup"))
}

func parseLeadSearch(in input, _ *Interpreter) *core.ParsedCommand {
	params := map[string]any{"count": extractCount(in.lower)}
	if titles := extractTitles(in.lower); titles != nil {
		params["titles"] = titles
	}
	if industry := extractIndustry(in.lower); industry != "" {
		params["industry"] = industry
	}
	if location := extractLocation(in.lower); location != nil {
		params["location"] = location
	}
	if employeeRange := extractEmployeeRange(in.lower); employeeRange != nil {
		params["employee_range"] = employeeRange
	}
	return &core.ParsedCommand{
		Action:     "find",
		Parameters: params,
		Intent:     core.IntentSearch,
		Confidence: 0.8,
	}
}

// Verify fires on explicit verify vocabulary, or the "check ... valid"
// phrasing, both gated by an email/lead context word.
func matchVerify(in input) bool {
	if containsAny(in.lower, verifyKeywords) && containsAny(in.lower, verifyContext) {
		return true
	}
	return strings.Contains(in.lower, "check") && strings.Contains(in.lower, "valid") &&
		(strings.Contains(in.lower, "these") || strings.Contains(in.lower, "email") || strings.Contains(in.lower, "lead"))
}

func parseVerify(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "verify",
		Parameters: map[string]any{"target": "current_leads"},
		Intent:     core.IntentVerify,
		Confidence: 0.8,
	}
}

func matchEnrich(in input) bool {
	return strings.Contains(in.lower, "enrich") ||
		strings.Contains(in.lower, "add data") ||
		strings.Contains(in.lower, "get more info")
}

func parseEnrich(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "enrich",
		Parameters: map[string]any{"source": "apollo"},
		Intent:     core.IntentEnrich,
		Confidence: 0.7,
	}
}

func matchCampaignLoad(in input) bool {
	return containsAny(in.lower, loadKeywords) &&
		(strings.Contains(in.lower, "campaign") || strings.Contains(in.lower, "into"))
}

func parseCampaignLoad(in input, _ *Interpreter) *core.ParsedCommand {
	name := extractCampaignName(in.lower)
	if name == "" {
		name = "New Campaign"
	}
	return &core.ParsedCommand{
		Action:     "load_into_campaign",
		Parameters: map[string]any{"campaign_name": name},
		Intent:     core.IntentCampaign,
		Confidence: 0.7,
	}
}

func matchCreateCampaign(in input) bool {
	return containsAny(in.lower, createKeywords) && strings.Contains(in.lower, "campaign")
}

func parseCreateCampaign(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "create_campaign",
		Parameters: map[string]any{"name": extractNewCampaignName(in.lower)},
		Intent:     core.IntentCampaign,
		Confidence: 0.8,
	}
}

func matchSimulate(in input) bool {
	if containsAny(in.lower, []string{"simulate", "test", "run", "fast forward", "time"}) {
		return true
	}
	return strings.Contains(in.lower, "what would happen") &&
		(strings.Contains(in.lower, "run") || strings.Contains(in.lower, "campaign"))
}

func parseSimulate(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "simulate",
		Parameters: map[string]any{"days": extractDays(in.lower)},
		Intent:     core.IntentAnalytics,
		Confidence: 0.8,
	}
}

func matchPause(in input) bool {
	return containsAny(in.lower, pauseVerbs) && strings.Contains(in.lower, "campaign")
}

func parsePause(in input, _ *Interpreter) *core.ParsedCommand {
	params := map[string]any{}
	if name := extractTargetCampaignName(in.lower, pauseVerbs); name != "" {
		params["campaign_name"] = name
	}
	return &core.ParsedCommand{
		Action:     "pause_campaign",
		Parameters: params,
		Intent:     core.IntentCampaign,
		Confidence: 0.8,
	}
}

func matchResume(in input) bool {
	return containsAny(in.lower, resumeVerbs) && strings.Contains(in.lower, "campaign")
}

func parseResume(in input, _ *Interpreter) *core.ParsedCommand {
	params := map[string]any{}
	if name := extractTargetCampaignName(in.lower, resumeVerbs); name != "" {
		params["campaign_name"] = name
	}
	return &core.ParsedCommand{
		Action:     "resume_campaign",
		Parameters: params,
		Intent:     core.IntentCampaign,
		Confidence: 0.8,
	}
}

func matchCompare(in input) bool {
	return strings.Contains(in.lower, "compare") && strings.Contains(in.lower, "campaign")
}

func parseCompare(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "campaign_performance",
		Parameters: map[string]any{"compare": true},
		Intent:     core.IntentAnalytics,
		Confidence: 0.9,
	}
}

func matchPerformanceQuestion(in input) bool {
	return (strings.Contains(in.lower, "how") || strings.Contains(in.lower, "what")) &&
		containsAny(in.lower, analyticsAsk)
}

func parsePerformanceQuestion(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "campaign_performance",
		Parameters: map[string]any{},
		Intent:     core.IntentAnalytics,
		Confidence: 0.8,
	}
}

// "Show me last week's stats" style time-scoped queries
func matchPeriodStats(in input) bool {
	return (strings.Contains(in.lower, "show") || strings.Contains(in.lower, "last") || strings.Contains(in.lower, "week")) &&
		strings.Contains(in.lower, "stats")
}

func parsePeriodStats(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "campaign_performance",
		Parameters: map[string]any{"period": "week"},
		Intent:     core.IntentAnalytics,
		Confidence: 0.8,
	}
}

func matchShowCampaigns(in input) bool {
	return containsAny(in.lower, showWords) &&
		(strings.Contains(in.lower, "campaign") || strings.Contains(in.lower, "all my"))
}

// Redirects to performance when the question is really about numbers
func parseShowCampaigns(in input, _ *Interpreter) *core.ParsedCommand {
	if containsAny(in.lower, statsLikeWords) {
		return &core.ParsedCommand{
			Action:     "campaign_performance",
			Parameters: map[string]any{},
			Intent:     core.IntentAnalytics,
			Confidence: 0.8,
		}
	}
	return &core.ParsedCommand{
		Action:     "show_campaigns",
		Parameters: map[string]any{},
		Intent:     core.IntentCampaign,
		Confidence: 0.7,
	}
}

func matchShowReplies(in input) bool {
	return containsAny(in.lower, replyShowWords) &&
		(strings.Contains(in.lower, "repl") || strings.Contains(in.lower, "response"))
}

func parseShowReplies(in input, _ *Interpreter) *core.ParsedCommand {
	params := map[string]any{}
	confidence := 0.7
	switch {
	case strings.Contains(in.lower, "unread") || strings.Contains(in.lower, "new"):
		params["filter"] = "unread"
		confidence = 0.8
	case strings.Contains(in.lower, "positive") || strings.Contains(in.lower, "good"):
		params["filter"] = "positive"
		confidence = 0.8
	case strings.Contains(in.lower, "today"):
		params["filter"] = "today"
		confidence = 0.8
	}
	return &core.ParsedCommand{
		Action:     "show_replies",
		Parameters: params,
		Intent:     core.IntentReply,
		Confidence: confidence,
	}
}

func matchDeliverability(in input) bool {
	if containsAny(in.lower, deliverabilityKeywords) {
		return true
	}
	if strings.Contains(in.lower, "check") &&
		(strings.Contains(in.lower, "status") || strings.Contains(in.lower, "how")) {
		return true
	}
	return strings.Contains(in.lower, "what") && strings.Contains(in.lower, "health")
}

func parseDeliverability(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "check_deliverability",
		Parameters: map[string]any{},
		Intent:     core.IntentDeliverability,
		Confidence: 0.8,
	}
}

func matchEmailGen(in input) bool {
	return containsAny(in.lower, emailGenVerbs) && containsAny(in.lower, emailGenNouns)
}

func parseEmailGen(in input, _ *Interpreter) *core.ParsedCommand {
	parties := extractEmailParties(in.lower)
	params := map[string]any{}
	if parties.sender != "" {
		params["sender"] = parties.sender
	}
	if parties.receiver != "" {
		params["receiver"] = parties.receiver
	}
	if parties.senderWebsite != "" {
		params["senderWebsite"] = parties.senderWebsite
	}
	if parties.receiverWebsite != "" {
		params["receiverWebsite"] = parties.receiverWebsite
	}
	return &core.ParsedCommand{
		Action:     "generate_email",
		Parameters: params,
		Intent:     core.IntentOther,
		Confidence: 0.8,
	}
}

func matchMeetings(in input) bool {
	return strings.Contains(in.lower, "meeting")
}

// Meetings queries split into count vs. details; when both sets of tokens
// appear, details wins whenever "detail" literally occurs.
func parseMeetings(in input, _ *Interpreter) *core.ParsedCommand {
	params := map[string]any{}
	if client := extractClientName(in.raw, in.lower); client != "" {
		params["clientName"] = client
	}
	if campaign := extractMeetingCampaign(in.lower); campaign != "" {
		params["campaignName"] = campaign
	}

	wantsDetails := containsAny(in.lower, meetingDetailWords)
	wantsCount := containsAny(in.lower, meetingCountWords)

	action := "meetings_count"
	if wantsDetails || (!wantsCount && strings.Contains(in.lower, "detail")) {
		action = "meetings_details"
	}
	return &core.ParsedCommand{
		Action:     action,
		Parameters: params,
		Intent:     core.IntentAnalytics,
		Confidence: 0.9,
	}
}

func matchOverallStats(in input) bool {
	if !containsAny(in.lower, overallStatsKeywords) && !containsAny(in.lower, overallStatsContext) {
		return false
	}
	return containsAny(in.lower, []string{"campaign", "stats", "performance", "email", "sent"})
}

func parseOverallStats(in input, _ *Interpreter) *core.ParsedCommand {
	params := map[string]any{}
	if client := extractStatsClientName(in.lower); client != "" {
		params["clientName"] = client
	}
	return &core.ParsedCommand{
		Action:     "overall_campaign_stats",
		Parameters: params,
		Intent:     core.IntentAnalytics,
		Confidence: 0.85,
	}
}

func matchHelp(in input) bool {
	return in.lower == "help" || strings.HasPrefix(in.lower, "help") || containsAny(in.lower, helpKeywords)
}

func parseHelp(in input, _ *Interpreter) *core.ParsedCommand {
	return &core.ParsedCommand{
		Action:     "help",
		Parameters: map[string]any{},
		Intent:     core.IntentOther,
		Confidence: 1.0,
	}
}
