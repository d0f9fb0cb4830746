package report

import (
	"testing"

	"github.com/de-tools/rent-atlas/pkg/services/schedule"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestResolve_EngineDefault(t *testing.T) {
	svc := NewService(Defaults{})

	periodDays, split := svc.resolve(Params{})

	assert.Equal(t, schedule.DefaultPeriodDays, periodDays)
	assert.False(t, split)
}

func TestResolve_ConfiguredDefaults(t *testing.T) {
	svc := NewService(Defaults{PeriodDays: 7, SplitWeekends: true})

	periodDays, split := svc.resolve(Params{})

	assert.Equal(t, 7, periodDays)
	assert.True(t, split)
}

func TestResolve_RequestOverridesDefaults(t *testing.T) {
	svc := NewService(Defaults{PeriodDays: 7, SplitWeekends: true})

	periodDays, split := svc.resolve(Params{
		PeriodDays:    5,
		SplitWeekends: boolPtr(false),
	})

	assert.Equal(t, 5, periodDays)
	assert.False(t, split)
}

func TestResolve_UnsetSplitKeepsDefault(t *testing.T) {
	svc := NewService(Defaults{SplitWeekends: true})

	_, split := svc.resolve(Params{PeriodDays: 3})

	assert.True(t, split)
}
