package model_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leafbook/leafbook-go/model"
	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wirejson"
)

func TestPlant_DisplayName(t *testing.T) {
	p := model.Plant{Name: "Monstera deliciosa"}
	assert.Equal(t, "Monstera deliciosa", p.DisplayName())

	nick := "Monty"
	p.Nickname = &nick
	assert.Equal(t, "Monty", p.DisplayName())
}

func TestPlantSpecies_CareLevelDefault(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "sp1",
		"commonName": "Swiss cheese plant",
		"scientificName": "Monstera deliciosa",
		"wateringIntervalDays": 7
	}`))
	require.NoError(t, err)

	s, err := wire.Decode[model.PlantSpecies](context.Background(), model.PlantSpeciesSchema, raw)
	require.NoError(t, err)
	assert.Equal(t, model.CareModerate, s.CareLevel)
	require.NotNil(t, s.WateringIntervalDays)
	assert.Equal(t, 7, *s.WateringIntervalDays)
}

func TestPlantIdentificationResult_Confidence(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "r1",
		"imageUrl": "https://cdn.example.com/p.jpg",
		"confidence": 0.92,
		"candidateNames": ["Monstera deliciosa", "Philodendron"],
		"rawResponse": {"provider": "plantnet", "elapsedMs": 412},
		"identifiedAt": "2024-05-01T10:00:00Z"
	}`))
	require.NoError(t, err)

	r, err := wire.Decode[model.PlantIdentificationResult](context.Background(),
		model.PlantIdentificationResultSchema, raw)
	require.NoError(t, err)
	assert.InDelta(t, 0.92, r.Confidence, 1e-12)
	assert.True(t, r.IsConfident(0.9))
	assert.False(t, r.IsConfident(0.95))
	assert.Len(t, r.CandidateNames, 2)
	assert.Equal(t, "plantnet", r.RawResponse["provider"])
}

func TestPlantIdentificationResult_OptionalListAndMapAbsent(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "r1",
		"imageUrl": "https://cdn.example.com/p.jpg",
		"confidence": 0.4,
		"identifiedAt": "2024-05-01T10:00:00Z"
	}`))
	require.NoError(t, err)

	r, err := wire.Decode[model.PlantIdentificationResult](context.Background(),
		model.PlantIdentificationResultSchema, raw)
	require.NoError(t, err)
	assert.NotNil(t, r.CandidateNames)
	assert.Len(t, r.CandidateNames, 0)
	assert.Nil(t, r.RawResponse)
}

func TestPlantCareEntry_ActivityRequired(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "e1",
		"plantId": "p1",
		"performedAt": "2024-05-01T10:00:00Z"
	}`))
	require.NoError(t, err)

	_, err = wire.Decode[model.PlantCareEntry](context.Background(), model.PlantCareEntrySchema, raw)
	require.Error(t, err)
	iss, _ := wire.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/activity", iss[0].Path)
}

func TestPlantCareReminder_IsDue(t *testing.T) {
	due := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	r := model.PlantCareReminder{Activity: model.CareWatering, NextDueAt: due, Enabled: true}

	assert.False(t, r.IsDue(due.Add(-time.Minute)))
	assert.True(t, r.IsDue(due))
	assert.True(t, r.IsDue(due.Add(time.Hour)))

	off := r.With(func(c *model.PlantCareReminder) { c.Enabled = false })
	assert.False(t, off.IsDue(due.Add(time.Hour)))
	assert.True(t, r.Enabled)
}

func TestPlantCareReminder_EnabledDefaultsTrue(t *testing.T) {
	raw, err := wirejson.Unmarshal([]byte(`{
		"id": "rem1",
		"plantId": "p1",
		"activity": "watering",
		"intervalDays": 7,
		"nextDueAt": "2024-05-08T08:00:00Z"
	}`))
	require.NoError(t, err)

	r, err := wire.Decode[model.PlantCareReminder](context.Background(), model.PlantCareReminderSchema, raw)
	require.NoError(t, err)
	assert.True(t, r.Enabled)
}
