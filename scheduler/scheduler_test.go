package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/color-collector/api/colorcode"
	"github.com/color-collector/api/datastore"
	"github.com/color-collector/api/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateSpotlightEmptyCollection(t *testing.T) {
	s := NewScheduler(datastore.NewMemorySpotlightStore(), datastore.NewMemoryColorStore())

	_, err := s.GenerateSpotlight()
	require.Error(t, err)
	assert.True(t, datastore.IsNoRows(err))
}

func TestGenerateSpotlightOncePerDay(t *testing.T) {
	colors := datastore.NewMemoryColorStore()
	conv, err := colorcode.NewEngine(colorcode.DefaultTable()).Convert("8002-45C")
	require.NoError(t, err)
	record, err := colors.Create(models.NewColorRecord("u1", conv))
	require.NoError(t, err)

	spotlights := datastore.NewMemorySpotlightStore()
	s := NewScheduler(spotlights, colors)
	day := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	s.Now = fixedClock(day)

	first, err := s.GenerateSpotlight()
	require.NoError(t, err)
	assert.Equal(t, record.ID, first.ColorID)
	assert.Equal(t, "#92B2D1", first.Hex)
	assert.Equal(t, datastore.StartOfDay(day), first.Date)

	again, err := s.GenerateSpotlight()
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	s.Now = fixedClock(day.AddDate(0, 0, 1))
	next, err := s.GenerateSpotlight()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, next.ID)

	stored, err := spotlights.GetByDate(day)
	require.NoError(t, err)
	assert.Equal(t, first, stored)
}

func TestStartStop(t *testing.T) {
	s := NewScheduler(datastore.NewMemorySpotlightStore(), datastore.NewMemoryColorStore())
	s.Start()
	s.Stop()
	// a second stop must not panic on the closed channel
	s.Stop()
}
