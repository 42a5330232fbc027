package aggregation

import "github.com/qingliul/huangbinhong-backend-go/internal/models"

func intp(v int) *int           { return &v }
func strp(v string) *string     { return &v }
func floatp(v float64) *float64 { return &v }

func point(id int, location string, year int, lng, lat float64, typeID int) models.TrajectoryPoint {
	return models.TrajectoryPoint{
		PointID:      id,
		TypeID:       intp(typeID),
		Year:         intp(year),
		LocationName: strp(location),
		Longitude:    floatp(lng),
		Latitude:     floatp(lat),
	}
}

func person(id int, name string, birth *int) models.Person {
	return models.Person{PersonID: id, Name: strp(name), BirthYear: birth}
}
