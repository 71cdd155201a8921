package catalog

import (
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilterEmpty(t *testing.T) {
	filter := listFilter(url.Values{})
	if len(filter) != 0 {
		t.Fatalf("expected empty filter, got %v", filter)
	}
}

func TestListFilterCombines(t *testing.T) {
	q := url.Values{}
	q.Set("category", "cat1")
	q.Set("brand", "br1")
	q.Set("featured", "true")

	filter := listFilter(q)
	if filter["categoryId"] != "cat1" || filter["brandId"] != "br1" {
		t.Fatalf("id filters missing: %v", filter)
	}
	if filter["featured"] != true {
		t.Fatalf("featured filter missing: %v", filter)
	}
}

func TestListFilterFeaturedOnlyWhenTrue(t *testing.T) {
	q := url.Values{}
	q.Set("featured", "false")
	if _, ok := listFilter(q)["featured"]; ok {
		t.Fatal("featured=false must not filter")
	}
}

func TestListFilterNameSearchIsCaseInsensitive(t *testing.T) {
	q := url.Values{}
	q.Set("q", "teddy")

	filter := listFilter(q)
	name, ok := filter["name"].(bson.M)
	if !ok {
		t.Fatalf("expected regex clause on name, got %v", filter["name"])
	}
	if name["$regex"] != "teddy" || name["$options"] != "i" {
		t.Fatalf("unexpected regex clause: %v", name)
	}
}
