package models

// LifeTimeline represents a row of the life_timeline table (生平编年)
type LifeTimeline struct {
	TimelineID  int     `json:"timelineId" db:"timeline_id"`
	Year        *int    `json:"year" db:"year"`
	Month       *int    `json:"month" db:"month"`
	Day         *int    `json:"day" db:"day"`
	EventTitle  *string `json:"eventTitle" db:"event_title"`
	EventDetail *string `json:"eventDetail" db:"event_detail"`
}

// RelatedWorks is a short work summary linked from a life timeline entry
type RelatedWorks struct {
	WorksID      int     `json:"worksId"`
	WorksName    *string `json:"worksName"`
	CreationYear *int    `json:"creationYear"`
	ThumbnailURL string  `json:"thumbnailUrl"`
}

// LifeTimelineDetail is the response of GET /api/timeline/detail
type LifeTimelineDetail struct {
	LifeTimeline
	RelatedWorks []RelatedWorks `json:"relatedWorks"`
}

// LifeTimelinePage is a paginated life timeline listing
type LifeTimelinePage struct {
	Total int            `json:"total"`
	List  []LifeTimeline `json:"list"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

// YearArtStat counts timeline entries and works created in a year
type YearArtStat struct {
	Year       int `json:"year" db:"year"`
	EventCount int `json:"eventCount" db:"event_count"`
	WorksCount int `json:"worksCount" db:"works_count"`
}
