package social

import (
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseFeedQueryDefaults(t *testing.T) {
	fq, err := ParseFeedQuery(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fq.Start != 0 || fq.Limit != 10 || fq.Order != "desc" {
		t.Fatalf("unexpected defaults: %+v", fq)
	}
}

func TestParseFeedQueryValues(t *testing.T) {
	q := url.Values{}
	q.Set("start", "3")
	q.Set("limit", "25")
	q.Set("order", "asc")

	fq, err := ParseFeedQuery(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fq.Start != 3 || fq.Limit != 25 || fq.Order != "asc" {
		t.Fatalf("unexpected query: %+v", fq)
	}
}

func TestParseFeedQueryZeroLimitFallsBackToDefault(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "0")

	fq, err := ParseFeedQuery(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fq.Limit != 10 {
		t.Fatalf("expected default limit 10, got %d", fq.Limit)
	}
}

func TestParseFeedQueryRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"negative start", "start", "-1"},
		{"non-numeric start", "start", "abc"},
		{"negative limit", "limit", "-5"},
		{"limit above cap", "limit", "101"},
		{"unknown order", "order", "newest"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := url.Values{}
			q.Set(tc.key, tc.value)
			if _, err := ParseFeedQuery(q); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestHasNextPage(t *testing.T) {
	cases := []struct {
		name  string
		total int64
		start int
		limit int
		want  bool
	}{
		{"five posts first page of two", 5, 0, 2, true},
		{"five posts second page of two", 5, 1, 2, true},
		{"five posts third page of two", 5, 2, 2, false},
		{"exact boundary", 10, 0, 10, false},
		{"one past boundary", 11, 0, 10, true},
		{"empty store", 0, 0, 10, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasNextPage(tc.total, tc.start, tc.limit); got != tc.want {
				t.Fatalf("HasNextPage(%d, %d, %d) = %v, want %v",
					tc.total, tc.start, tc.limit, got, tc.want)
			}
		})
	}
}

func TestBuildFeedPipelineStages(t *testing.T) {
	p := BuildFeedPipeline(FeedQuery{Start: 2, Limit: 5, Order: "desc"})

	if len(p) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(p))
	}

	wantOrder := []string{"$lookup", "$unwind", "$sort", "$skip", "$limit", "$project"}
	for i, stage := range p {
		if stage[0].Key != wantOrder[i] {
			t.Fatalf("stage %d: expected %s, got %s", i, wantOrder[i], stage[0].Key)
		}
	}

	if skip := p[3][0].Value.(int64); skip != 10 {
		t.Fatalf("expected skip 10, got %d", skip)
	}
	if limit := p[4][0].Value.(int64); limit != 5 {
		t.Fatalf("expected limit 5, got %d", limit)
	}

	sort := p[2][0].Value.(bson.D)
	if sort[0].Key != "createdat" || sort[0].Value.(int) != -1 {
		t.Fatalf("expected descending createdat sort, got %+v", sort)
	}
}

func TestBuildFeedPipelineAscending(t *testing.T) {
	p := BuildFeedPipeline(FeedQuery{Start: 0, Limit: 10, Order: "asc"})

	sort := p[2][0].Value.(bson.D)
	if sort[0].Value.(int) != 1 {
		t.Fatalf("expected ascending sort, got %+v", sort)
	}
	if skip := p[3][0].Value.(int64); skip != 0 {
		t.Fatalf("expected skip 0, got %d", skip)
	}
}

func TestBuildFeedPipelineJoinsUsers(t *testing.T) {
	p := BuildFeedPipeline(FeedQuery{Start: 0, Limit: 10, Order: "desc"})

	lookup := p[0][0].Value.(bson.M)
	if lookup["from"] != "users" || lookup["localField"] != "userid" || lookup["foreignField"] != "userid" {
		t.Fatalf("unexpected $lookup stage: %+v", lookup)
	}

	project := p[5][0].Value.(bson.M)
	author := project["author"].(bson.M)
	for _, field := range []string{"userid", "firstname", "lastname", "email", "imageurl"} {
		if _, ok := author[field]; !ok {
			t.Fatalf("author projection missing %s", field)
		}
	}
}

func TestExploreFilterNormalizesTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want bson.M
	}{
		{"mixed case", "Golang", bson.M{"tags": "golang"}},
		{"padded", "  mongo  ", bson.M{"tags": "mongo"}},
		{"already lower", "web", bson.M{"tags": "web"}},
		{"empty matches all", "", bson.M{}},
		{"blank matches all", "   ", bson.M{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exploreFilter(tt.tag)
			if len(got) != len(tt.want) {
				t.Fatalf("exploreFilter(%q) = %v, want %v", tt.tag, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Fatalf("exploreFilter(%q) = %v, want %v", tt.tag, got, tt.want)
				}
			}
		})
	}
}
