package models

// TimelineEvent represents a row of the timeline_event table
type TimelineEvent struct {
	EventID      int     `json:"eventId" db:"event_id"`
	Year         *int    `json:"year" db:"year"`
	PersonID     *int    `json:"personId,omitempty" db:"person_id"`
	Title        *string `json:"title" db:"title"`
	Description  *string `json:"description" db:"description"`
	ArtWeight    *int    `json:"artWeight,omitempty" db:"art_weight"`
	LocationName *string `json:"locationName,omitempty" db:"location_name"`
}

// TimelineEventDTO is a timeline event enriched with the ages of the
// subject and the associated person at the time of the event
type TimelineEventDTO struct {
	TimelineID  int     `json:"timeline_id"`
	Year        *int    `json:"year"`
	Person      *string `json:"person"`
	Title       *string `json:"event_title"`
	Description *string `json:"event_detail"`
	ArtWeight   *int    `json:"artWeight"`
	HbhAge      *int    `json:"hbhAge"`
	FriendAge   *int    `json:"friendAge"`
}

// AllDataDTO is the combined payload of GET /api/huangbinhong/all
type AllDataDTO struct {
	Core           CoreDTO            `json:"core"`
	Locations      []LocationDTO      `json:"locations"`
	TimelineEvents []TimelineEventDTO `json:"timelineEvents"`
}
