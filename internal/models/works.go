package models

// Works represents a row of the works table
type Works struct {
	WorksID               int     `json:"worksId" db:"works_id"`
	WorksName             *string `json:"worksName" db:"works_name"`
	CreationYear          *int    `json:"creationYear" db:"creation_year"`
	CreationTimeDetail    *string `json:"creationTimeDetail,omitempty" db:"creation_time_detail"`
	Size                  *string `json:"size" db:"size"`
	Material              *string `json:"material" db:"material"`
	Category              *string `json:"category" db:"category"` // 书法 / 画
	CollectionInstitution *string `json:"collectionInstitution" db:"collection_institution"`
	CollectionLocation    *string `json:"collectionLocation,omitempty" db:"collection_location"`
	ArtPeriod             *string `json:"art_period" db:"art_period"`
	WorksDesc             *string `json:"worksDesc" db:"works_desc"`
}

// WorksListItem is one shaped row of a works listing
type WorksListItem struct {
	WorksID               int      `json:"worksId"`
	WorksName             *string  `json:"worksName"`
	CreationYear          *int     `json:"creationYear"`
	Category              *string  `json:"category"`
	ArtPeriod             *string  `json:"art_period"`
	Size                  *string  `json:"size"`
	Material              *string  `json:"material"`
	CollectionInstitution *string  `json:"collectionInstitution"`
	Description           *string  `json:"worksDesc"`
	ThumbnailURL          string   `json:"thumbnailUrl"`
	Tags                  []string `json:"tags"`
}

// WorksPage is a paginated works listing
type WorksPage struct {
	Total  int             `json:"total"`
	List   []WorksListItem `json:"list"`
	Page   int             `json:"page"`
	Size   int             `json:"size"`
	TagID  *int            `json:"tagId,omitempty"`
	Period *string         `json:"period,omitempty"`
}

// WorkImage is one image attached to a work
type WorkImage struct {
	ImgType *string `json:"imgType" db:"img_type"` // thumbnail / main / detail
	ImgURL  *string `json:"imgUrl" db:"img_url"`
	ImgDesc *string `json:"imgDesc" db:"img_desc"`
}

// WorksDetail is the response of GET /api/works/detail
type WorksDetail struct {
	WorksID               int         `json:"worksId"`
	WorksName             *string     `json:"worksName"`
	CreationYear          *int        `json:"creationYear"`
	CreationTimeDetail    *string     `json:"creationTimeDetail"`
	Size                  *string     `json:"size"`
	Material              *string     `json:"material"`
	CollectionInstitution *string     `json:"collectionInstitution"`
	WorksDesc             *string     `json:"worksDesc"`
	Category              *string     `json:"category"`
	ArtPeriod             *string     `json:"artPeriod"`
	Tags                  []string    `json:"tags"`
	Images                []WorkImage `json:"images"`
}

// Tag is a works tag with the number of works carrying it
type Tag struct {
	TagID      int    `json:"tagId" db:"tag_id"`
	TagName    string `json:"tagName" db:"tag_name"`
	WorksCount int    `json:"worksCount" db:"works_count"`
}

// CategoryStat counts works per category
type CategoryStat struct {
	Category *string `json:"category" db:"category"`
	Count    int     `json:"count" db:"count"`
}

// CategoryStatsWithTotal is the response of GET /api/works/category/stats-with-total
type CategoryStatsWithTotal struct {
	Total      int            `json:"total"`
	Categories []CategoryStat `json:"categories"`
}
