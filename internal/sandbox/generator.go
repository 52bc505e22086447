package sandbox

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mikey/coldflow-core/internal/core"
)

// Weight tables for synthetic lead generation. All of this is immutable
// static data with realistic-looking distributions.

var (
	industries      = []string{"SaaS", "Fintech", "E-commerce", "Healthcare", "Agency"}
	industryWeights = []float64{0.30, 0.20, 0.20, 0.15, 0.15}

	leadTitles = []string{
		"CEO",
		"CTO",
		"VP of Marketing",
		"VP of Sales",
		"Director of Marketing",
		"Director of Sales",
		"Marketing Manager",
		"Sales Manager",
		"Head of Growth",
		"Head of Revenue",
	}
	titleWeights = []float64{0.05, 0.05, 0.10, 0.10, 0.15, 0.15, 0.20, 0.15, 0.03, 0.02}

	companySizes = []struct {
		min, max int
	}{
		{5, 10},
		{11, 50},
		{51, 200},
		{201, 500},
		{501, 1000},
	}
	sizeWeights = []float64{0.20, 0.25, 0.30, 0.15, 0.10}

	cities = []struct {
		city, state, country string
	}{
		{"San Francisco", "CA", "USA"},
		{"New York", "NY", "USA"},
		{"Austin", "TX", "USA"},
		{"Boston", "MA", "USA"},
		{"Seattle", "WA", "USA"},
		{"Chicago", "IL", "USA"},
		{"Denver", "CO", "USA"},
		{"Miami", "FL", "USA"},
		{"London", "", "UK"},
		{"Berlin", "", "Germany"},
		{"Paris", "", "France"},
		{"Sydney", "", "Australia"},
		{"Toronto", "ON", "Canada"},
	}

	firstNames = []string{
		"Sarah", "Marcus", "Emily", "David", "Lisa", "Michael", "Jennifer", "James",
		"Jessica", "Robert", "Amanda", "William", "Melissa", "Richard", "Michelle",
		"Joseph", "Ashley", "Thomas", "Stephanie", "Christopher", "Nicole", "Daniel",
		"Elizabeth", "Matthew", "Lauren", "Anthony", "Megan", "Mark", "Rachel",
		"Donald", "Samantha", "Steven", "Kimberly", "Paul", "Amy", "Andrew", "Angela",
		"Joshua", "Rebecca", "Kenneth", "Kevin", "Laura", "Brian", "Heather",
	}

	lastNames = []string{
		"Chen", "Johnson", "Rodriguez", "Kim", "Thompson", "Williams", "Brown", "Jones",
		"Garcia", "Miller", "Davis", "Wilson", "Martinez", "Anderson", "Taylor", "Thomas",
		"Hernandez", "Moore", "Martin", "Jackson", "Lee", "Perez", "White", "Harris",
		"Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen",
		"King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green",
	}

	technologies = []string{
		"HubSpot", "Salesforce", "Drift", "Marketo", "Pardot", "Eloqua", "Intercom",
		"Zendesk", "Slack", "Microsoft", "Google Workspace", "AWS", "Azure", "GCP",
	}

	companyNamePrefixes = []string{"Tech", "Cloud", "Data", "Growth", "Scale", "Flow", "Stack", "Lab"}
	companyNameSuffixes = []string{"Flow", "Stack", "Labs", "Solutions", "Systems", "Tech", "Group"}

	revenueRanges = []string{"$0-$1M", "$1M-$5M", "$5M-$10M", "$10M-$25M", "$25M-$50M", "$50M+"}

	lastActivities = []string{
		"opened email 2 days ago",
		"clicked link 1 day ago",
		"replied 3 days ago",
		"visited website 5 days ago",
	}

	// Email validity is a global prior: it is never conditioned on the
	// search filters, which only shape the cosmetic categorical fields.
	emailStatuses      = []string{core.EmailStatusValid, core.EmailStatusRisky, core.EmailStatusInvalid, core.EmailStatusCatchall}
	emailStatusWeights = []float64{0.85, 0.08, 0.05, 0.02}

	linkedInAbouts = map[string][]string{
		"SaaS": {
			"Marketing leader with 10+ years in B2B SaaS. Previously at Drift and HubSpot. Passionate about PLG and demand gen.",
			"Building the future of cloud infrastructure. Former AWS. Love hiking and dad jokes.",
			"Growth marketer focused on product-led growth. Helped scale 3 SaaS companies from 0 to $10M ARR.",
		},
		"Fintech": {
			"Fintech executive with expertise in payments and banking infrastructure. Former Stripe and Square.",
			"Building the next generation of financial services. Passionate about financial inclusion.",
			"VP of Marketing at a leading fintech. Focused on B2B growth and enterprise sales.",
		},
		"E-commerce": {
			"E-commerce growth expert. Helped scale multiple DTC brands to 8-figures. Love data-driven marketing.",
			"Building the future of online retail. Former Amazon. Focused on conversion optimization.",
			"E-commerce marketing leader. Expert in paid acquisition and retention strategies.",
		},
		"Healthcare": {
			"Healthcare technology executive. Focused on improving patient outcomes through innovation.",
			"Building healthcare solutions that matter. Former Epic Systems. Passionate about health equity.",
			"Healthcare marketing leader with expertise in B2B health tech. HIPAA-compliant solutions.",
		},
		"Agency": {
			"Agency owner helping B2B companies scale through cold email and outbound. 500+ clients served.",
			"Growth agency founder. Specialized in cold email campaigns for SaaS companies.",
			"Marketing agency leader. We help companies build predictable revenue through outbound.",
		},
	}
)

// Generator produces synthetic leads through weighted categorical sampling.
// The random source is injected so callers can pin a seed.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a lead generator over the given random source
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// weightedChoice samples one item according to the paired weights
func weightedChoice(rng *rand.Rand, items []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}

func (g *Generator) randomInt(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

func (g *Generator) randomChoice(items []string) string {
	return items[g.rng.Intn(len(items))]
}

// SearchFilters shape the cosmetic fields of generated leads. They never
// touch the email-validity distribution.
type SearchFilters struct {
	Titles      []string
	Industry    string
	City        string
	State       string
	Country     string
	EmployeeMin int
	EmployeeMax int
}

// Lead generates one synthetic prospect
func (g *Generator) Lead(id int, filters SearchFilters) core.Lead {
	firstName := g.randomChoice(firstNames)
	lastName := g.randomChoice(lastNames)

	industry := weightedChoice(g.rng, industries, industryWeights)
	if filters.Industry != "" {
		industry = filters.Industry
	}

	title := weightedChoice(g.rng, leadTitles, titleWeights)
	if len(filters.Titles) > 0 {
		title = filters.Titles[0]
	}

	sizeIdx := sampleIndex(g.rng, sizeWeights)
	employeeCount := g.randomInt(companySizes[sizeIdx].min, companySizes[sizeIdx].max)
	if filters.EmployeeMin > 0 && filters.EmployeeMax >= filters.EmployeeMin {
		employeeCount = g.randomInt(filters.EmployeeMin, filters.EmployeeMax)
	}

	location := cities[g.rng.Intn(len(cities))]
	city, state, country := location.city, location.state, location.country
	if filters.City != "" {
		city = filters.City
	}
	if filters.State != "" {
		state = filters.State
	}
	if filters.Country != "" {
		country = filters.Country
	}

	companyName := g.randomChoice(companyNamePrefixes) + g.randomChoice(companyNameSuffixes)
	companyDomain := strings.ToLower(companyName) + "-demo.com"
	email := strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@" + companyDomain

	emailStatus := weightedChoice(g.rng, emailStatuses, emailStatusWeights)

	revenueIdx := employeeCount / 20
	if revenueIdx >= len(revenueRanges) {
		revenueIdx = len(revenueRanges) - 1
	}

	techCount := g.randomInt(2, 5)
	selected := make([]string, 0, techCount)
	for _, idx := range g.rng.Perm(len(technologies))[:techCount] {
		selected = append(selected, technologies[idx])
	}

	tags := []string{}
	if employeeCount > 200 {
		tags = append(tags, "enterprise")
	}
	switch title {
	case "CEO", "CTO", "VP of Marketing", "VP of Sales":
		tags = append(tags, "c-level")
	}
	if industry == "SaaS" {
		tags = append(tags, "saas")
	}
	if emailStatus == core.EmailStatusValid {
		tags = append(tags, "verified")
	}

	abouts, ok := linkedInAbouts[industry]
	if !ok {
		abouts = linkedInAbouts["SaaS"]
	}

	createdAt := g.now().AddDate(0, 0, -g.randomInt(0, 30))

	return core.Lead{
		ID:                 fmt.Sprintf("lead_demo_%04d", id),
		FirstName:          firstName,
		LastName:           lastName,
		FullName:           firstName + " " + lastName,
		Title:              title,
		Company:            companyName,
		CompanyDomain:      companyDomain,
		Industry:           industry,
		EmployeeCount:      employeeCount,
		RevenueRange:       revenueRanges[revenueIdx],
		LocationCity:       city,
		LocationState:      state,
		LocationCountry:    country,
		Email:              email,
		EmailStatus:        emailStatus,
		Phone:              fmt.Sprintf("+1-555-%04d", g.randomInt(1000, 9999)),
		LinkedInURL:        "linkedin.com/in/demo-" + strings.ToLower(firstName) + strings.ToLower(lastName),
		LinkedInAbout:      g.randomChoice(abouts),
		Technologies:       selected,
		EnrichmentStatus:   "complete",
		EnrichmentSource:   "apollo",
		VerificationStatus: emailStatus,
		VerificationSource: "millionverifier",
		CreatedAt:          createdAt.Format("2006-01-02"),
		LastActivity:       g.randomChoice(lastActivities),
		Tags:               tags,
	}
}

// Leads generates count synthetic prospects
func (g *Generator) Leads(count int, filters SearchFilters) []core.Lead {
	leads := make([]core.Lead, 0, count)
	for i := 0; i < count; i++ {
		leads = append(leads, g.Lead(i+1, filters))
	}
	return leads
}

func sampleIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return i
		}
	}
	return len(weights) - 1
}
