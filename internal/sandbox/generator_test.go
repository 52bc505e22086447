package sandbox

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/coldflow-core/internal/core"
)

func TestGeneratorLeadShape(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	lead := g.Lead(7, SearchFilters{})
	assert.Equal(t, "lead_demo_0007", lead.ID)
	assert.Equal(t, lead.FirstName+" "+lead.LastName, lead.FullName)
	assert.Equal(t, strings.ToLower(lead.FirstName)+"."+strings.ToLower(lead.LastName)+"@"+lead.CompanyDomain, lead.Email)
	assert.True(t, strings.HasSuffix(lead.CompanyDomain, "-demo.com"))
	assert.Equal(t, "complete", lead.EnrichmentStatus)
	assert.Equal(t, lead.EmailStatus, lead.VerificationStatus)
	assert.NotEmpty(t, lead.Technologies)
	assert.NotEmpty(t, lead.LinkedInAbout)
}

func TestGeneratorEmailStatusDomain(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(2)))

	valid := map[string]bool{
		core.EmailStatusValid:    true,
		core.EmailStatusRisky:    true,
		core.EmailStatusInvalid:  true,
		core.EmailStatusCatchall: true,
	}
	for _, lead := range g.Leads(200, SearchFilters{}) {
		assert.Truef(t, valid[lead.EmailStatus], "unexpected status %q", lead.EmailStatus)
	}
}

func TestGeneratorFiltersOverrideCosmeticFields(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(3)))

	filters := SearchFilters{
		Titles:      []string{"marketing director"},
		Industry:    "Fintech",
		City:        "Austin",
		State:       "Texas",
		Country:     "USA",
		EmployeeMin: 50,
		EmployeeMax: 100,
	}
	for _, lead := range g.Leads(50, filters) {
		assert.Equal(t, "marketing director", lead.Title)
		assert.Equal(t, "Fintech", lead.Industry)
		assert.Equal(t, "Austin", lead.LocationCity)
		assert.Equal(t, "Texas", lead.LocationState)
		assert.Equal(t, "USA", lead.LocationCountry)
		assert.GreaterOrEqual(t, lead.EmployeeCount, 50)
		assert.LessOrEqual(t, lead.EmployeeCount, 100)
	}
}

func TestGeneratorTags(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(4)))

	lead := g.Lead(1, SearchFilters{Industry: "SaaS", EmployeeMin: 300, EmployeeMax: 400})
	assert.Contains(t, lead.Tags, "enterprise")
	assert.Contains(t, lead.Tags, "saas")
	if lead.EmailStatus == core.EmailStatusValid {
		assert.Contains(t, lead.Tags, "verified")
	} else {
		assert.NotContains(t, lead.Tags, "verified")
	}
}

func TestGeneratorLeadsCount(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(5)))

	require.Len(t, g.Leads(25, SearchFilters{}), 25)
	assert.Empty(t, g.Leads(0, SearchFilters{}))
}

func TestGeneratorDeterministicForSeed(t *testing.T) {
	fixed := func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}

	first := NewGenerator(rand.New(rand.NewSource(42)))
	first.now = fixed
	second := NewGenerator(rand.New(rand.NewSource(42)))
	second.now = fixed

	assert.Equal(t, first.Leads(10, SearchFilters{}), second.Leads(10, SearchFilters{}))
}
