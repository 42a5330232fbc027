package models

// Person represents a row of the person table
type Person struct {
	PersonID   int     `json:"personId" db:"person_id"`
	Name       *string `json:"name" db:"name"`
	Alias      *string `json:"alias,omitempty" db:"alias"`
	BirthYear  *int    `json:"birthYear,omitempty" db:"birth_year"`
	DeathYear  *int    `json:"deathYear,omitempty" db:"death_year"`
	Identity   *string `json:"identity,omitempty" db:"identity"`
	BriefIntro *string `json:"briefIntro,omitempty" db:"brief_intro"`
}

// PersonDTO is the short person summary shown next to places
type PersonDTO struct {
	Name    *string `json:"name"`
	History *string `json:"history"`
}

// ToDTO converts a person into its summary form
func (p Person) ToDTO() PersonDTO {
	return PersonDTO{Name: p.Name, History: p.BriefIntro}
}

// CoreDTO describes the subject of the dataset
type CoreDTO struct {
	ID    string `json:"id"`
	Birth *int   `json:"birth"`
	Death *int   `json:"death"`
}

// PersonRelationship represents a row of the person_relationship table
type PersonRelationship struct {
	RelationID     int     `json:"relationId" db:"relation_id"`
	SourcePersonID int     `json:"sourcePersonId" db:"source_person_id"`
	TargetPersonID int     `json:"targetPersonId" db:"target_person_id"`
	RelationType   *string `json:"relationType,omitempty" db:"relation_type"`
	Importance     *int    `json:"importance,omitempty" db:"importance"`
	RelationEvent  *string `json:"relationEvent,omitempty" db:"relation_event"`
}

// GraphNode is a person in the relationship graph
type GraphNode struct {
	ID        int     `json:"id"`
	Name      *string `json:"name"`
	Identity  *string `json:"identity,omitempty"`
	BirthYear *int    `json:"birthYear,omitempty"`
	DeathYear *int    `json:"deathYear,omitempty"`
}

// GraphLink is a relationship edge in the graph
type GraphLink struct {
	ID            int     `json:"id"`
	Source        int     `json:"source"`
	Target        int     `json:"target"`
	RelationType  *string `json:"relationType,omitempty"`
	Importance    *int    `json:"importance,omitempty"`
	RelationEvent *string `json:"relationEvent,omitempty"`
}

// RelationshipGraph is the response of GET /api/huangbinhong/relationships
type RelationshipGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}
