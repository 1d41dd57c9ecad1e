package model

import (
	"time"

	"github.com/leafbook/leafbook-go/wire"
	"github.com/leafbook/leafbook-go/wire/codec"
)

// Plant is a plant owned by a user. The plant family entities are leaves:
// none of them embeds another entity.
type Plant struct {
	ID         string
	OwnerID    string
	Name       string
	Nickname   *string
	SpeciesID  *string
	PhotoURL   *string
	Notes      *string
	AcquiredAt *time.Time
	CreatedAt  time.Time
}

// PlantSchema is the wire schema for Plant. Keys are camelCase.
var PlantSchema = newPlantSchema()

func newPlantSchema() *wire.Object[Plant] {
	o := wire.NewObject[Plant]("Plant")
	wire.Field(o, "id", codec.String(), func(p *Plant) *string { return &p.ID }).Required()
	wire.Field(o, "ownerId", codec.String(), func(p *Plant) *string { return &p.OwnerID }).Required()
	wire.Field(o, "name", codec.String(), func(p *Plant) *string { return &p.Name }).Required()
	wire.Field(o, "nickname", codec.Ptr(codec.String()), func(p *Plant) **string { return &p.Nickname })
	wire.Field(o, "speciesId", codec.Ptr(codec.String()), func(p *Plant) **string { return &p.SpeciesID })
	wire.Field(o, "photoUrl", codec.Ptr(codec.String()), func(p *Plant) **string { return &p.PhotoURL })
	wire.Field(o, "notes", codec.Ptr(codec.String()), func(p *Plant) **string { return &p.Notes })
	wire.Field(o, "acquiredAt", codec.Ptr(codec.Timestamp()), func(p *Plant) **time.Time { return &p.AcquiredAt })
	wire.Field(o, "createdAt", codec.Timestamp(), func(p *Plant) *time.Time { return &p.CreatedAt }).Required()
	return o
}

// With returns a copy of p with mutate applied; p is unchanged.
func (p Plant) With(mutate func(*Plant)) Plant { return PlantSchema.With(p, mutate) }

// DisplayName returns the nickname when set, the plant name otherwise.
func (p Plant) DisplayName() string {
	if p.Nickname != nil && *p.Nickname != "" {
		return *p.Nickname
	}
	return p.Name
}

// CareLevel grades how demanding a species is.
type CareLevel string

const (
	CareEasy      CareLevel = "easy"
	CareModerate  CareLevel = "moderate"
	CareDifficult CareLevel = "difficult"
)

// PlantSpecies is the catalog entry a plant may reference by id.
type PlantSpecies struct {
	ID                   string
	CommonName           string
	ScientificName       string
	Family               *string
	CareLevel            CareLevel
	WateringIntervalDays *int
}

// PlantSpeciesSchema is the wire schema for PlantSpecies.
var PlantSpeciesSchema = newPlantSpeciesSchema()

func newPlantSpeciesSchema() *wire.Object[PlantSpecies] {
	o := wire.NewObject[PlantSpecies]("PlantSpecies")
	wire.Field(o, "id", codec.String(), func(s *PlantSpecies) *string { return &s.ID }).Required()
	wire.Field(o, "commonName", codec.String(), func(s *PlantSpecies) *string { return &s.CommonName }).Required()
	wire.Field(o, "scientificName", codec.String(), func(s *PlantSpecies) *string { return &s.ScientificName }).Required()
	wire.Field(o, "family", codec.Ptr(codec.String()), func(s *PlantSpecies) **string { return &s.Family })
	wire.Field(o, "careLevel", codec.Enum(CareEasy, CareModerate, CareDifficult),
		func(s *PlantSpecies) *CareLevel { return &s.CareLevel }).Default(CareModerate)
	wire.Field(o, "wateringIntervalDays", codec.Ptr(codec.Int()), func(s *PlantSpecies) **int { return &s.WateringIntervalDays })
	return o
}

// PlantIdentificationResult is the outcome of identifying a plant from a
// photo. CandidateNames and RawResponse exercise optional lists and untyped
// maps; Confidence is the one floating-point field in the model.
type PlantIdentificationResult struct {
	ID             string
	ImageURL       string
	Confidence     float64
	CandidateNames []string
	RawResponse    map[string]any
	IdentifiedAt   time.Time
}

// PlantIdentificationResultSchema is the wire schema for
// PlantIdentificationResult.
var PlantIdentificationResultSchema = newPlantIdentificationResultSchema()

func newPlantIdentificationResultSchema() *wire.Object[PlantIdentificationResult] {
	o := wire.NewObject[PlantIdentificationResult]("PlantIdentificationResult")
	wire.Field(o, "id", codec.String(), func(r *PlantIdentificationResult) *string { return &r.ID }).Required()
	wire.Field(o, "imageUrl", codec.String(), func(r *PlantIdentificationResult) *string { return &r.ImageURL }).Required()
	wire.Field(o, "confidence", codec.Float(), func(r *PlantIdentificationResult) *float64 { return &r.Confidence }).Required()
	wire.Field(o, "candidateNames", codec.Seq(codec.String()),
		func(r *PlantIdentificationResult) *[]string { return &r.CandidateNames }).Default([]string{})
	wire.Field(o, "rawResponse", codec.RawMap(), func(r *PlantIdentificationResult) *map[string]any { return &r.RawResponse })
	wire.Field(o, "identifiedAt", codec.Timestamp(), func(r *PlantIdentificationResult) *time.Time { return &r.IdentifiedAt }).Required()
	return o
}

// IsConfident reports whether the identification confidence reaches
// threshold.
func (r PlantIdentificationResult) IsConfident(threshold float64) bool {
	return r.Confidence >= threshold
}

// CareActivity is one kind of plant care.
type CareActivity string

const (
	CareWatering    CareActivity = "watering"
	CareFertilizing CareActivity = "fertilizing"
	CarePruning     CareActivity = "pruning"
	CareRepotting   CareActivity = "repotting"
	CareMisting     CareActivity = "misting"
)

// PlantCareEntry is one logged care action.
type PlantCareEntry struct {
	ID          string
	PlantID     string
	Activity    CareActivity
	Note        *string
	PerformedAt time.Time
}

// PlantCareEntrySchema is the wire schema for PlantCareEntry.
var PlantCareEntrySchema = newPlantCareEntrySchema()

func newPlantCareEntrySchema() *wire.Object[PlantCareEntry] {
	o := wire.NewObject[PlantCareEntry]("PlantCareEntry")
	wire.Field(o, "id", codec.String(), func(e *PlantCareEntry) *string { return &e.ID }).Required()
	wire.Field(o, "plantId", codec.String(), func(e *PlantCareEntry) *string { return &e.PlantID }).Required()
	wire.Field(o, "activity", codec.Enum(CareWatering, CareFertilizing, CarePruning, CareRepotting, CareMisting),
		func(e *PlantCareEntry) *CareActivity { return &e.Activity }).Required()
	wire.Field(o, "note", codec.Ptr(codec.String()), func(e *PlantCareEntry) **string { return &e.Note })
	wire.Field(o, "performedAt", codec.Timestamp(), func(e *PlantCareEntry) *time.Time { return &e.PerformedAt }).Required()
	return o
}

// PlantCareReminder schedules a recurring care action.
type PlantCareReminder struct {
	ID              string
	PlantID         string
	Activity        CareActivity
	IntervalDays    int
	NextDueAt       time.Time
	Enabled         bool
	LastCompletedAt *time.Time
}

// PlantCareReminderSchema is the wire schema for PlantCareReminder.
var PlantCareReminderSchema = newPlantCareReminderSchema()

func newPlantCareReminderSchema() *wire.Object[PlantCareReminder] {
	o := wire.NewObject[PlantCareReminder]("PlantCareReminder")
	wire.Field(o, "id", codec.String(), func(r *PlantCareReminder) *string { return &r.ID }).Required()
	wire.Field(o, "plantId", codec.String(), func(r *PlantCareReminder) *string { return &r.PlantID }).Required()
	wire.Field(o, "activity", codec.Enum(CareWatering, CareFertilizing, CarePruning, CareRepotting, CareMisting),
		func(r *PlantCareReminder) *CareActivity { return &r.Activity }).Required()
	wire.Field(o, "intervalDays", codec.Int(), func(r *PlantCareReminder) *int { return &r.IntervalDays }).Required()
	wire.Field(o, "nextDueAt", codec.Timestamp(), func(r *PlantCareReminder) *time.Time { return &r.NextDueAt }).Required()
	wire.Field(o, "enabled", codec.Bool(), func(r *PlantCareReminder) *bool { return &r.Enabled }).Default(true)
	wire.Field(o, "lastCompletedAt", codec.Ptr(codec.Timestamp()), func(r *PlantCareReminder) **time.Time { return &r.LastCompletedAt })
	return o
}

// With returns a copy of r with mutate applied; r is unchanged.
func (r PlantCareReminder) With(mutate func(*PlantCareReminder)) PlantCareReminder {
	return PlantCareReminderSchema.With(r, mutate)
}

// IsDue reports whether the reminder is due at now (disabled reminders are
// never due).
func (r PlantCareReminder) IsDue(now time.Time) bool {
	return r.Enabled && !now.Before(r.NextDueAt)
}
