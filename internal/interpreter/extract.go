package interpreter

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entity extraction rules shared by the intent detectors. All patterns run
// against the lower-cased input unless noted otherwise; everything here is
// pure and deterministic.

var (
	countPattern = regexp.MustCompile(`(\d+)`)

	// Ordered most specific first
	titlePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(marketing\s+director|marketing\s+manager|marketing\s+head)`),
		regexp.MustCompile(`(sales\s+director|sales\s+manager|sales\s+head|vp\s+of\s+sales)`),
		regexp.MustCompile(`(cto|chief\s+technology\s+officer)`),
		regexp.MustCompile(`(ceo|chief\s+executive\s+officer)`),
		regexp.MustCompile(`(vp\s+of\s+marketing|vp\s+of\s+sales)`),
		regexp.MustCompile(`(director|manager|head)`),
	}

	industryPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(saas|software\s+as\s+a\s+service)`),
		regexp.MustCompile(`(fintech|financial\s+technology)`),
		regexp.MustCompile(`(e-commerce|ecommerce)`),
		regexp.MustCompile(`(healthcare|health\s+care)`),
		regexp.MustCompile(`(agency|marketing\s+agency)`),
		regexp.MustCompile(`(startup|start-ups)`),
	}

	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(california|ca)`),
		regexp.MustCompile(`(texas|tx)`),
		regexp.MustCompile(`(new\s+york|ny)`),
		regexp.MustCompile(`(florida|fl)`),
		regexp.MustCompile(`(usa|united\s+states|us)`),
		regexp.MustCompile(`(uk|united\s+kingdom)`),
		regexp.MustCompile(`(canada)`),
	}

	employeeRangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(employees?|people)`)

	fullMonthPattern   = regexp.MustCompile(`(january|february|march|april|may|june|july|august|september|october|november|december)`)
	abbrevMonthPattern = regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\b`)
	trackerDayPattern  = regexp.MustCompile(`\b([1-9]|[12]\d|3[01])\b`)
	trackerYearPattern = regexp.MustCompile(`\b(20\d{2}|\d{4})\b`)

	campaignNamePattern = regexp.MustCompile(`campaign\s+["']?([^"']+)["']?`)
	calledNamePattern   = regexp.MustCompile(`(?:called|named)\s+["']?([^"']+)["']?`)
	intoNamePattern     = regexp.MustCompile(`into\s+["']?([^"']+)["']?`)
	quotedNamePattern   = regexp.MustCompile(`["']([^"']+)["']`)

	daysPattern = regexp.MustCompile(`(\d+)\s*(days?|weeks?|months?)`)

	meetingClientPattern  = regexp.MustCompile(`meeting\w*\s+(?:details?|info|data|booked)?\s+(?:for|from)?\s+([a-z][a-z]+(?:\s+[a-z][a-z]+)?)`)
	genericClientPattern  = regexp.MustCompile(`(?:for|client|from)\s+([a-z][a-z]+(?:\s+[a-z][a-z]+)?)`)
	detailForWordPattern  = regexp.MustCompile(`(?:for|from)\s+(\w+)`)
	capitalizedPattern    = regexp.MustCompile(`\b([A-Z][a-z]+)\b`)
	meetingCampaignPattern = regexp.MustCompile(`(?:campaign|in)\s+["']?([^"',]+)["']?`)
	statsClientPattern    = regexp.MustCompile(`(?:for|client|from)\s+([^,\s]+)`)

	fromToPattern   = regexp.MustCompile(`(?:from|sender|i am|we are)\s+([^,]+?)\s+(?:to|for)\s+([^,]+)`)
	bareToPattern   = regexp.MustCompile(`([^,]+?)\s+(?:to|for)\s+([^,]+)`)
	emailToPattern  = regexp.MustCompile(`email\s+(?:to|for)\s+([^,]+)`)
	websitePattern  = regexp.MustCompile(`(?:website|site|url):\s*([^\s,]+)`)
)

var monthNames = map[string]string{
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

var titleCaser = cases.Title(language.English)

// extractCount returns the first integer literal in the text, defaulting to
// 100. Bounds are the validator's job, not the extractor's.
func extractCount(lower string) int {
	m := countPattern.FindStringSubmatch(lower)
	if m == nil {
		return 100
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 100
	}
	return n
}

func extractTitles(lower string) []string {
	for _, p := range titlePatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			return []string{normalizeSpaces(m[1])}
		}
	}
	return nil
}

func extractIndustry(lower string) string {
	for _, p := range industryPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			return normalizeSpaces(m[1])
		}
	}
	return ""
}

// extractLocation normalizes recognized regions to state/country pairs for
// US states, country-only otherwise
func extractLocation(lower string) map[string]any {
	for _, p := range locationPatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		switch normalizeSpaces(m[1]) {
		case "ca", "california":
			return map[string]any{"state": "California", "country": "USA"}
		case "tx", "texas":
			return map[string]any{"state": "Texas", "country": "USA"}
		case "ny", "new york":
			return map[string]any{"state": "New York", "country": "USA"}
		case "fl", "florida":
			return map[string]any{"state": "Florida", "country": "USA"}
		default:
			return map[string]any{"country": m[1]}
		}
	}
	return nil
}

func extractEmployeeRange(lower string) map[string]any {
	m := employeeRangePattern.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	min, _ := strconv.Atoi(m[1])
	max, _ := strconv.Atoi(m[2])
	return map[string]any{"min": min, "max": max}
}

// extractTrackerDate pulls month/day/year for the ACTL tracker. The month is
// normalized to its full English name; the year defaults to currentYear when
// the text has none. A zero day or empty month means "not present".
func extractTrackerDate(lower string, currentYear int) (month string, day int, year int) {
	if m := fullMonthPattern.FindStringSubmatch(lower); m != nil {
		month = monthNames[m[1]]
	} else if m := abbrevMonthPattern.FindStringSubmatch(lower); m != nil {
		month = monthNames[m[1]]
	}

	if m := trackerDayPattern.FindStringSubmatch(lower); m != nil {
		day, _ = strconv.Atoi(m[1])
	}

	if m := trackerYearPattern.FindStringSubmatch(lower); m != nil {
		year, _ = strconv.Atoi(m[1])
	} else {
		year = currentYear
	}
	return month, day, year
}

// extractCampaignName tries "campaign X", then "into X", then a quoted name
func extractCampaignName(lower string) string {
	for _, p := range []*regexp.Regexp{campaignNamePattern, intoNamePattern, quotedNamePattern} {
		if m := p.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractNewCampaignName tries "called/named X", then "campaign X", then a
// quoted name, defaulting to "New Campaign"
func extractNewCampaignName(lower string) string {
	for _, p := range []*regexp.Regexp{calledNamePattern, campaignNamePattern, quotedNamePattern} {
		if m := p.FindStringSubmatch(lower); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return "New Campaign"
}

// extractTargetCampaignName resolves the campaign a pause/resume verb points
// at: "campaign X", then "<verb> [the] X campaign", then a quoted name. The
// capture keeps whatever casing the matching group saw.
func extractTargetCampaignName(lower string, verbs []string) string {
	if m := campaignNamePattern.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1])
	}
	verbPattern := regexp.MustCompile(`(?:` + strings.Join(verbs, "|") + `)\s+(?:the\s+)?(.+?)\s+campaign`)
	if m := verbPattern.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := quotedNamePattern.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractDays reads a day count with week/month multipliers, defaulting to 7
func extractDays(lower string) int {
	days := 7
	if m := daysPattern.FindStringSubmatch(lower); m != nil {
		days, _ = strconv.Atoi(m[1])
		if strings.Contains(lower, "week") {
			days *= 7
		}
		if strings.Contains(lower, "month") {
			days *= 30
		}
	}
	return days
}

// Words that look like client names in the permissive patterns but never are
var clientNameBlacklist = map[string]bool{
	"details": true, "info": true, "data": true, "booked": true,
	"campaign": true, "meeting": true, "meetings": true,
	"the": true, "all": true, "this": true,
	"show": true, "list": true, "who": true, "how": true,
	"many": true, "total": true, "count": true,
	"for": true, "from": true, "client": true,
}

// extractClientName guesses the client a meetings query refers to. The
// cascade is deliberately permissive: a phrase match after the meeting verb,
// then a generic for/client/from match filtered against the blacklist, then
// any remaining capitalized token in the raw text. False positives are
// expected and tolerated downstream; resolution never fails on them.
func extractClientName(raw, lower string) string {
	if m := meetingClientPattern.FindStringSubmatch(lower); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" && !clientNameBlacklist[strings.ToLower(name)] {
			return name
		}
	}

	if m := genericClientPattern.FindStringSubmatch(lower); m != nil {
		name := strings.TrimSpace(m[1])
		if name != "" && !clientNameBlacklist[strings.ToLower(name)] {
			return name
		}
	}

	if strings.Contains(lower, "detail") {
		if m := detailForWordPattern.FindStringSubmatch(lower); m != nil {
			name := strings.TrimSpace(m[1])
			if name != "" && !clientNameBlacklist[strings.ToLower(name)] {
				return titleCaser.String(strings.ToLower(name))
			}
		}
	}

	for _, m := range capitalizedPattern.FindAllStringSubmatch(raw, -1) {
		if !clientNameBlacklist[strings.ToLower(m[1])] {
			return m[1]
		}
	}
	return ""
}

func extractMeetingCampaign(lower string) string {
	if m := meetingCampaignPattern.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractStatsClientName(lower string) string {
	if m := statsClientPattern.FindStringSubmatch(lower); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// emailParties holds sender/receiver hints for email generation
type emailParties struct {
	sender          string
	receiver        string
	senderWebsite   string
	receiverWebsite string
}

// extractEmailParties pulls sender/receiver substrings via "from X to Y" and
// "email to Y" patterns, plus optional website:/url: tokens
func extractEmailParties(lower string) emailParties {
	var p emailParties

	if m := fromToPattern.FindStringSubmatch(lower); m != nil {
		p.sender = strings.TrimSpace(m[1])
		p.receiver = strings.TrimSpace(m[2])
	} else if m := bareToPattern.FindStringSubmatch(lower); m != nil {
		p.sender = strings.TrimSpace(m[1])
		p.receiver = strings.TrimSpace(m[2])
	}

	if p.receiver == "" {
		if m := emailToPattern.FindStringSubmatch(lower); m != nil {
			p.receiver = strings.TrimSpace(m[1])
		}
	}

	websites := websitePattern.FindAllStringSubmatch(lower, -1)
	if len(websites) > 0 {
		p.senderWebsite = websites[0][1]
	}
	if len(websites) > 1 {
		p.receiverWebsite = websites[1][1]
	}
	return p
}

func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
