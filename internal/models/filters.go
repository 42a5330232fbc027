package models

// WorksFilter represents query parameters of GET /api/works/list
type WorksFilter struct {
	CreationYear *int   `form:"creation_year"`
	WorksName    string `form:"works_name"`
	Category     string `form:"category"`
	Tags         string `form:"tags"`                                  // 标签名称，逗号分隔（兼容旧版）
	TagIDs       string `form:"tag_ids" binding:"omitempty,csvints"` // 标签ID，逗号分隔
	ArtPeriod    string `form:"art_period"`
	StartYear    *int   `form:"startYear"`
	EndYear      *int   `form:"endYear"`
	Page         int    `form:"page"`
	Size         int    `form:"size"`
}

// WorksByTagFilter represents query parameters of GET /api/works/by-tag
type WorksByTagFilter struct {
	TagID int `form:"tag_id"`
	Page  int `form:"page"`
	Size  int `form:"size"`
}

// WorksByPeriodFilter represents query parameters of GET /api/works/by-period
type WorksByPeriodFilter struct {
	Period string `form:"period"` // early, middle, late
	Page   int    `form:"page"`
	Size   int    `form:"size"`
}

// LifeTimelineFilter represents query parameters of GET /api/timeline/list
type LifeTimelineFilter struct {
	Year *int `form:"year"`
	Page int  `form:"page"`
	Size int  `form:"size"`
}

// RelationshipFilter represents query parameters of GET /api/huangbinhong/relationships
type RelationshipFilter struct {
	PersonID *int `form:"person_id" binding:"omitempty,gt=0"`
}

// WorksQuery is the normalized filter handed to the works row source.
// Empty strings and nil pointers mean "no constraint".
type WorksQuery struct {
	CreationYear *int
	WorksName    string
	Category     string
	TagNames     []string
	TagIDs       []int
	ArtPeriod    string
	StartYear    *int
	EndYear      *int
	Offset       int
	Limit        int
}

// LifeTimelineQuery is the normalized filter handed to the life timeline row source
type LifeTimelineQuery struct {
	Year   *int
	Offset int
	Limit  int
}
