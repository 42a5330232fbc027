package aggregation

import (
	"cmp"
	"slices"

	"github.com/qingliul/huangbinhong-backend-go/internal/models"
)

// BuildGraph turns relationship rows into a node/link graph. Links keep the
// row order; a link whose endpoint is not in people is dropped. Nodes are the
// persons referenced by the surviving links, sorted by id.
func BuildGraph(rels []models.PersonRelationship, people map[int]models.Person) models.RelationshipGraph {
	graph := models.RelationshipGraph{
		Nodes: []models.GraphNode{},
		Links: make([]models.GraphLink, 0, len(rels)),
	}
	used := make(map[int]struct{})
	for _, r := range rels {
		_, okSource := people[r.SourcePersonID]
		_, okTarget := people[r.TargetPersonID]
		if !okSource || !okTarget {
			continue
		}
		graph.Links = append(graph.Links, models.GraphLink{
			ID:            r.RelationID,
			Source:        r.SourcePersonID,
			Target:        r.TargetPersonID,
			RelationType:  r.RelationType,
			Importance:    r.Importance,
			RelationEvent: r.RelationEvent,
		})
		used[r.SourcePersonID] = struct{}{}
		used[r.TargetPersonID] = struct{}{}
	}
	for id := range used {
		p := people[id]
		graph.Nodes = append(graph.Nodes, models.GraphNode{
			ID:        p.PersonID,
			Name:      p.Name,
			Identity:  p.Identity,
			BirthYear: p.BirthYear,
			DeathYear: p.DeathYear,
		})
	}
	slices.SortFunc(graph.Nodes, func(a, b models.GraphNode) int { return cmp.Compare(a.ID, b.ID) })
	return graph
}

// RelationshipPersonIDs lists the distinct endpoint ids of rels, ascending.
func RelationshipPersonIDs(rels []models.PersonRelationship) []int {
	var ids []int
	for _, r := range rels {
		ids = append(ids, r.SourcePersonID, r.TargetPersonID)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
