package aggregation

import "github.com/qingliul/huangbinhong-backend-go/internal/models"

// SubjectBirthYear returns the subject's recorded birth year, or fallback
// when the subject record or its birth year is missing.
func SubjectBirthYear(subject *models.Person, fallback int) int {
	if subject == nil || subject.BirthYear == nil {
		return fallback
	}
	return *subject.BirthYear
}

// Enricher annotates timeline events with the subject's and the associated
// person's age at the time of the event.
type Enricher struct {
	subjectBirth int
	people       map[int]models.Person
}

// NewEnricher creates an enricher. people resolves associated persons by id;
// ids missing from it are treated as unknown associates.
func NewEnricher(subjectBirth int, people map[int]models.Person) *Enricher {
	return &Enricher{subjectBirth: subjectBirth, people: people}
}

// Enrich derives the client view of one event. Ages are nil whenever a
// required year is unknown.
func (e *Enricher) Enrich(ev models.TimelineEvent) models.TimelineEventDTO {
	dto := models.TimelineEventDTO{
		TimelineID:  ev.EventID,
		Year:        ev.Year,
		Title:       ev.Title,
		Description: ev.Description,
		ArtWeight:   ev.ArtWeight,
	}

	var associate *models.Person
	if ev.PersonID != nil {
		if p, ok := e.people[*ev.PersonID]; ok {
			associate = &p
		}
	}
	if associate != nil {
		dto.Person = associate.Name
	}

	if ev.Year == nil {
		return dto
	}
	subjectAge := *ev.Year - e.subjectBirth
	dto.HbhAge = &subjectAge
	if associate != nil && associate.BirthYear != nil {
		friendAge := *ev.Year - *associate.BirthYear
		dto.FriendAge = &friendAge
	}
	return dto
}

// EnrichAll enriches events keeping their order.
func (e *Enricher) EnrichAll(events []models.TimelineEvent) []models.TimelineEventDTO {
	result := make([]models.TimelineEventDTO, 0, len(events))
	for _, ev := range events {
		result = append(result, e.Enrich(ev))
	}
	return result
}

// AssociateIDs lists the distinct person ids referenced by events, in first
// appearance order.
func AssociateIDs(events []models.TimelineEvent) []int {
	seen := make(map[int]struct{})
	var ids []int
	for _, ev := range events {
		if ev.PersonID == nil {
			continue
		}
		if _, ok := seen[*ev.PersonID]; ok {
			continue
		}
		seen[*ev.PersonID] = struct{}{}
		ids = append(ids, *ev.PersonID)
	}
	return ids
}
