package mongodb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortLatest, ParseSortMode("latest"))
	assert.Equal(t, SortOldest, ParseSortMode("oldest"))
	assert.Equal(t, SortHot, ParseSortMode("hotest"))

	// anything unrecognized falls back to newest-first
	assert.Equal(t, SortLatest, ParseSortMode(""))
	assert.Equal(t, SortLatest, ParseSortMode("hottest"))
	assert.Equal(t, SortLatest, ParseSortMode("views"))
}

func TestSortDoc(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "publishedDate", Value: -1}}, SortLatest.sortDoc())
	assert.Equal(t, bson.D{{Key: "publishedDate", Value: 1}}, SortOldest.sortDoc())
	assert.Equal(t, bson.D{{Key: "views", Value: -1}}, SortHot.sortDoc())
}

func TestPostFilterBuild(t *testing.T) {
	author := primitive.NewObjectID()
	following := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}

	cases := []struct {
		name   string
		filter PostFilter
		want   bson.M
	}{
		{
			name:   "empty matches everything",
			filter: PostFilter{},
			want:   bson.M{},
		},
		{
			name:   "tag",
			filter: PostFilter{Tag: "daily"},
			want:   bson.M{"tags": "daily"},
		},
		{
			name:   "category",
			filter: PostFilter{Category: "notice"},
			want:   bson.M{"category": "notice"},
		},
		{
			name:   "author",
			filter: PostFilter{AuthorID: &author},
			want:   bson.M{"user._id": author},
		},
		{
			name:   "followed authors",
			filter: PostFilter{AuthorIn: following},
			want:   bson.M{"user._id": bson.M{"$in": following}},
		},
		{
			name:   "search over title body tags",
			filter: PostFilter{Search: "flu"},
			want: bson.M{"$or": bson.A{
				bson.M{"title": bson.M{"$regex": "flu"}},
				bson.M{"body": bson.M{"$regex": "flu"}},
				bson.M{"tags": bson.M{"$regex": "flu"}},
			}},
		},
		{
			name:   "multi-term search ORs every term",
			filter: PostFilter{Search: "fever cough"},
			want: bson.M{"$or": bson.A{
				bson.M{"title": bson.M{"$regex": "fever"}},
				bson.M{"body": bson.M{"$regex": "fever"}},
				bson.M{"tags": bson.M{"$regex": "fever"}},
				bson.M{"title": bson.M{"$regex": "cough"}},
				bson.M{"body": bson.M{"$regex": "cough"}},
				bson.M{"tags": bson.M{"$regex": "cough"}},
			}},
		},
		{
			name:   "search narrowed by disease period",
			filter: PostFilter{Search: "flu", DiseasePeriod: "recovery"},
			want: bson.M{
				"$or": bson.A{
					bson.M{"title": bson.M{"$regex": "flu"}},
					bson.M{"body": bson.M{"$regex": "flu"}},
					bson.M{"tags": bson.M{"$regex": "flu"}},
				},
				"diseasePeriod": "recovery",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.filter.build())
		})
	}
}

// A post containing just one of the searched words must satisfy the filter:
// terms combine with OR, never AND.
func TestPostFilterBuildMatchesSingleTerm(t *testing.T) {
	filter := PostFilter{Search: "fever cough"}.build()

	clauses, ok := filter["$or"].(bson.A)
	assert.True(t, ok)

	title := "fever tips for kids"
	matched := false
	for _, clause := range clauses {
		pattern := clause.(bson.M)["title"]
		if pattern == nil {
			continue
		}
		re := pattern.(bson.M)["$regex"].(string)
		if strings.Contains(title, re) {
			matched = true
		}
	}
	assert.True(t, matched)
}
