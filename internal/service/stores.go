package service

import (
	"context"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// PersonStore is the person row source
type PersonStore interface {
	FindByID(ctx context.Context, id int) (*models.Person, error)
	FindByIDs(ctx context.Context, ids []int) (map[int]models.Person, error)
	PeopleByPoint(ctx context.Context) (map[int][]models.Person, error)
}

// TrajectoryStore is the trajectory row source
type TrajectoryStore interface {
	FindAllPoints(ctx context.Context) ([]models.TrajectoryPoint, error)
	TypeNames(ctx context.Context) (map[int]string, error)
}

// TimelineEventStore is the timeline event row source
type TimelineEventStore interface {
	FindAll(ctx context.Context) ([]models.TimelineEvent, error)
	FindByLocation(ctx context.Context, location string) ([]models.TimelineEvent, error)
	FindByID(ctx context.Context, id int) (*models.TimelineEvent, error)
}

// RelationshipStore is the person relationship row source
type RelationshipStore interface {
	Find(ctx context.Context, personID *int) ([]models.PersonRelationship, error)
}

// WorksStore is the works, images and tags row source
type WorksStore interface {
	List(ctx context.Context, q models.WorksQuery) ([]models.Works, error)
	Count(ctx context.Context, q models.WorksQuery) (int, error)
	FindByID(ctx context.Context, id int) (*models.Works, error)
	ThumbnailURL(ctx context.Context, worksID int) (*string, error)
	TagNames(ctx context.Context, worksID int) ([]string, error)
	Images(ctx context.Context, worksID int) ([]models.WorkImage, error)
	Tags(ctx context.Context, keyword string) ([]models.Tag, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
}

// LifeTimelineStore is the life timeline row source
type LifeTimelineStore interface {
	List(ctx context.Context, q models.LifeTimelineQuery) ([]models.LifeTimeline, error)
	Count(ctx context.Context, q models.LifeTimelineQuery) (int, error)
	FindByID(ctx context.Context, id int) (*models.LifeTimeline, error)
	RelatedWorks(ctx context.Context, timelineID int) ([]models.RelatedWorks, error)
	YearArtStats(ctx context.Context) ([]models.YearArtStat, error)
}
