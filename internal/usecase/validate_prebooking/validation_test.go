package validate_prebooking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/internal/integrations/petservice"
	"github.com/PawCareDash/PCD-FacilityService/pkg/ptr"
)

func TestComputeEarliestDate(t *testing.T) {
	// Воскресенье, 10:30 утра
	now := time.Date(2024, 3, 10, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rules    domain.LeadTimeRules
		expected time.Time
	}{
		{
			name:     "same-day allowed keeps lead time floor",
			rules:    domain.LeadTimeRules{MinimumHours: 2, AllowSameDay: true, AllowTomorrow: true},
			expected: time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC),
		},
		{
			name:     "same-day disabled clamps to start of tomorrow",
			rules:    domain.LeadTimeRules{MinimumHours: 2, AllowSameDay: false, AllowTomorrow: true},
			expected: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "both disabled clamp to day after tomorrow regardless of lead",
			rules:    domain.LeadTimeRules{MinimumHours: 1, AllowSameDay: false, AllowTomorrow: false},
			expected: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "long lead time survives both clamps",
			rules:    domain.LeadTimeRules{MinimumHours: 96, AllowSameDay: false, AllowTomorrow: false},
			expected: time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "24h lead lands after tomorrow start, no clamp needed",
			rules:    domain.LeadTimeRules{MinimumHours: 24, AllowSameDay: false, AllowTomorrow: true},
			expected: time.Date(2024, 3, 11, 10, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			earliest := computeEarliestDate(now, tt.rules)
			assert.True(t, earliest.Equal(tt.expected), "got %s, want %s", earliest, tt.expected)
		})
	}
}

func TestBuildSelectionOptions(t *testing.T) {
	tiers := []domain.GroomerTier{{ID: "senior", Name: "Senior", PriceDelta: 15}}

	tests := []struct {
		mode             domain.GroomerSelectionMode
		canSelectGroomer bool
		canSelectTier    bool
		showGroomerNames bool
	}{
		{domain.SelectionStealth, false, false, false},
		{domain.SelectionOptional, true, true, false},
		{domain.SelectionTierOnly, false, true, false},
		{domain.SelectionFullChoice, true, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			opts := buildSelectionOptions(domain.GroomerSelectionRules{Mode: tt.mode, Tiers: tiers})
			assert.Equal(t, tt.canSelectGroomer, opts.CanSelectGroomer)
			assert.Equal(t, tt.canSelectTier, opts.CanSelectTier)
			assert.Equal(t, tt.showGroomerNames, opts.ShowGroomerNames)
			assert.Equal(t, tiers, opts.Tiers)
		})
	}
}

func TestDepositMessage(t *testing.T) {
	tests := []struct {
		name     string
		policy   domain.DepositPolicy
		expected string
	}{
		{
			name:     "none gives empty message",
			policy:   domain.DepositPolicy{Type: domain.DepositNone},
			expected: "",
		},
		{
			name:     "fixed amount",
			policy:   domain.DepositPolicy{Type: domain.DepositFixed, Amount: ptr.Ptr(25.0)},
			expected: "A deposit of $25.00 is required to secure your appointment.",
		},
		{
			name:     "percentage",
			policy:   domain.DepositPolicy{Type: domain.DepositPercentage, Percentage: ptr.Ptr(25)},
			expected: "A deposit of 25% of the service price is required to secure your appointment.",
		},
		{
			name:     "fixed without amount falls back to generic",
			policy:   domain.DepositPolicy{Type: domain.DepositFixed},
			expected: "A deposit is required to secure your appointment.",
		},
		{
			name:     "percentage without value falls back to generic",
			policy:   domain.DepositPolicy{Type: domain.DepositPercentage},
			expected: "A deposit is required to secure your appointment.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, depositMessage(tt.policy))
		})
	}
}

func TestEnabledCategories(t *testing.T) {
	categories := []domain.ServiceCategory{
		{ID: "full-groom", Name: "Full Groom", Enabled: true},
		{ID: "bath-only", Name: "Bath Only", Enabled: false},
		// Флаг скрытия при полной загрузке не влияет на доступность
		{ID: "nails", Name: "Nail Trim", Enabled: true, HiddenWhenFullyBooked: true, FullyBookedWeeksThreshold: 2},
	}

	result := enabledCategories(categories)
	assert.Len(t, result, 2)
	assert.Equal(t, "full-groom", result[0].ID)
	assert.Equal(t, "nails", result[1].ID)
}

func TestIsWithinOperatingHours(t *testing.T) {
	hours := domain.WeeklyHours{
		Sunday: &domain.DayHours{Open: "10:00", Close: "16:00"},
		Monday: &domain.DayHours{Open: "08:00", Close: "18:00"},
	}

	sunday := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"sunday before opening", sunday.Add(9 * time.Hour), false},
		{"sunday within hours", sunday.Add(11 * time.Hour), true},
		{"sunday at opening is inclusive", sunday.Add(10 * time.Hour), true},
		{"sunday at closing is inclusive", sunday.Add(16 * time.Hour), true},
		{"sunday after closing", sunday.Add(17 * time.Hour), false},
		{"tuesday has no hours entry", sunday.AddDate(0, 0, 2).Add(12 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isWithinOperatingHours(tt.date, hours))
		})
	}
}

func TestVaccinationWarnings(t *testing.T) {
	gate := domain.VaccinationGate{
		Required:         true,
		RequiredVaccines: []string{"rabies", "bordetella"},
	}
	pet := &petservice.Pet{
		ID:   1,
		Name: "Rex",
		Vaccinations: []petservice.Vaccination{
			{Name: "rabies", Date: "2023-05-01", ExpiresAt: "2026-05-01"},
			{Name: "bordetella", Date: "2022-01-01", ExpiresAt: "2023-01-01"}, // истекла
		},
	}

	warnings := vaccinationWarnings(gate, pet, "2024-03-10")
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "bordetella")
}

func TestVaccinationWarnings_OpenEndedVaccine(t *testing.T) {
	gate := domain.VaccinationGate{Required: true, RequiredVaccines: []string{"rabies"}}
	pet := &petservice.Pet{
		Vaccinations: []petservice.Vaccination{
			{Name: "rabies", Date: "2023-05-01", ExpiresAt: ""},
		},
	}

	assert.Empty(t, vaccinationWarnings(gate, pet, "2024-03-10"))
}
