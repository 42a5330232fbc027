package models

// TrajectoryPoint represents one recorded stop on the subject's life trajectory
type TrajectoryPoint struct {
	PointID       int      `json:"pointId" db:"point_id"`
	TypeID        *int     `json:"typeId,omitempty" db:"type_id"` // 1 出生地, 2 居住地, 3 游历地
	Year          *int     `json:"year,omitempty" db:"year"`
	Month         *int     `json:"month,omitempty" db:"month"`
	LocationName  *string  `json:"locationName,omitempty" db:"location_name"`
	Longitude     *float64 `json:"longitude,omitempty" db:"longitude"`
	Latitude      *float64 `json:"latitude,omitempty" db:"latitude"`
	AddressDetail *string  `json:"addressDetail,omitempty" db:"address_detail"`
	EventDesc     *string  `json:"eventDesc,omitempty" db:"event_desc"`
}

// TrajectoryType is a row of the trajectory_type lookup table
type TrajectoryType struct {
	TypeID   int     `json:"typeId" db:"type_id"`
	TypeName string  `json:"typeName" db:"type_name"`
	TypeDesc *string `json:"typeDesc,omitempty" db:"type_desc"`
}

// LocationDTO is the client view of an aggregated place
type LocationDTO struct {
	ID     string      `json:"id"`
	Year   *string     `json:"year"` // "1880" or "1880-1885"
	Info   *string     `json:"info"`
	People []PersonDTO `json:"people"`
	Coords []float64   `json:"coords"` // [lng, lat]
}

// TimeEvent is a short (year, label) entry attached to a footprint
type TimeEvent struct {
	Year  *string `json:"year"`
	Event *string `json:"event"`
}

// FootprintEntry is a classified place for the footprint map
type FootprintEntry struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"` // birthplace / residence / travel
	Year        *string     `json:"year"`
	Coordinates []float64   `json:"coordinates"`
	Description *string     `json:"description"`
	Importance  int         `json:"importance"`
	TypeLabel   string      `json:"typeLabel"`
	TypeClass   string      `json:"typeClass"`
	TimeEvents  []TimeEvent `json:"timeEvents"`
}

// RouteStop is one footprint on the chronological route
type RouteStop struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	FirstYear   int       `json:"firstYear"`
	Coordinates []float64 `json:"coordinates"`
}

// RouteLeg is the great-circle hop between two consecutive stops
type RouteLeg struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	DistanceKm float64   `json:"distanceKm"`
	Midpoint   []float64 `json:"midpoint"` // [lng, lat], label anchor
}

// BoundingBox frames a set of coordinates on the map
type BoundingBox struct {
	MinLng float64 `json:"minLng"`
	MinLat float64 `json:"minLat"`
	MaxLng float64 `json:"maxLng"`
	MaxLat float64 `json:"maxLat"`
}

// FootprintRoute is the response of GET /api/huangbinhong/footprints/route
type FootprintRoute struct {
	Stops           []RouteStop  `json:"stops"`
	Legs            []RouteLeg   `json:"legs"`
	TotalDistanceKm float64      `json:"totalDistanceKm"`
	Bounds          *BoundingBox `json:"bounds"`
	Center          []float64    `json:"center"` // [lng, lat]
}
