package mongodb

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SortMode string

const (
	SortLatest SortMode = "latest"
	SortOldest SortMode = "oldest"
	SortHot    SortMode = "hotest"
)

// ParseSortMode maps a raw orderBy value onto a SortMode. Unrecognized values
// fall back to latest.
func ParseSortMode(orderBy string) SortMode {
	switch SortMode(orderBy) {
	case SortOldest:
		return SortOldest
	case SortHot:
		return SortHot
	default:
		return SortLatest
	}
}

func (m SortMode) sortDoc() bson.D {
	switch m {
	case SortOldest:
		return bson.D{{Key: "publishedDate", Value: 1}}
	case SortHot:
		return bson.D{{Key: "views", Value: -1}}
	default:
		return bson.D{{Key: "publishedDate", Value: -1}}
	}
}

// PostFilter describes one listing mode. Exactly one of the selector fields is
// expected to be set per endpoint; Search may be combined with DiseasePeriod.
type PostFilter struct {
	Tag           string
	Category      string
	AuthorID      *primitive.ObjectID
	AuthorIn      []primitive.ObjectID
	Search        string
	DiseasePeriod string
}

func (f PostFilter) build() bson.M {
	filter := bson.M{}

	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.AuthorID != nil {
		filter["user._id"] = *f.AuthorID
	}
	if len(f.AuthorIn) > 0 {
		filter["user._id"] = bson.M{"$in": f.AuthorIn}
	}
	if f.Search != "" {
		// Unanchored substring match. Every whitespace-separated term matches
		// independently, OR-ed across terms and text fields alike.
		var clauses bson.A
		for _, term := range strings.Fields(f.Search) {
			clauses = append(clauses,
				bson.M{"title": bson.M{"$regex": term}},
				bson.M{"body": bson.M{"$regex": term}},
				bson.M{"tags": bson.M{"$regex": term}},
			)
		}
		if clauses != nil {
			filter["$or"] = clauses
		}
	}
	if f.DiseasePeriod != "" {
		filter["diseasePeriod"] = f.DiseasePeriod
	}

	return filter
}
