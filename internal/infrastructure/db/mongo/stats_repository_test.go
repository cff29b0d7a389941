package mongo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/autohaus/dealership/internal/core/domain"
)

func TestCountFacet(t *testing.T) {
	p := countFacet(map[string]string{"sold": "sold"})
	if len(p) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(p))
	}
	if p[0][0].Key != "$facet" || p[1][0].Key != "$project" {
		t.Fatalf("unexpected stages: %v", p)
	}

	facet := p[0][0].Value.(bson.D)
	if len(facet) != 2 || facet[0].Key != "total" || facet[1].Key != "sold" {
		t.Fatalf("unexpected facet buckets: %v", facet)
	}

	project := p[1][0].Value.(bson.D)
	if len(project) != 2 || project[1].Key != "sold" {
		t.Fatalf("unexpected projection: %v", project)
	}
}

func TestRecentOrdersPipeline(t *testing.T) {
	p := recentOrdersPipeline(10)

	want := []string{"$sort", "$limit", "$lookup", "$lookup", "$project"}
	if len(p) != len(want) {
		t.Fatalf("expected %d stages, got %d", len(want), len(p))
	}
	for i, key := range want {
		if p[i][0].Key != key {
			t.Fatalf("stage %d: expected %s, got %s", i, key, p[i][0].Key)
		}
	}
	if p[1][0].Value != 10 {
		t.Fatalf("expected limit 10, got %v", p[1][0].Value)
	}

	lookups := map[string]bson.D{}
	for _, stage := range p[2:4] {
		spec := stage[0].Value.(bson.D).Map()
		lookups[spec["as"].(string)] = stage[0].Value.(bson.D)
		if spec["foreignField"] != "_id" {
			t.Fatalf("lookup %v must join on _id", spec)
		}
	}
	if c := lookups["client"].Map(); c["from"] != collectionClients || c["localField"] != "client_id" {
		t.Fatalf("unexpected client lookup: %v", c)
	}
	if c := lookups["car"].Map(); c["from"] != collectionCars || c["localField"] != "car_id" {
		t.Fatalf("unexpected car lookup: %v", c)
	}

	project := p[4][0].Value.(bson.D).Map()
	for field, path := range map[string]string{
		"client_name": "$client.name",
		"car_brand":   "$car.brand",
		"car_model":   "$car.model",
	} {
		expr, ok := project[field].(bson.D)
		if !ok || expr[0].Key != "$ifNull" {
			t.Fatalf("%s must default with $ifNull, got %v", field, project[field])
		}
		args := expr[0].Value.(bson.A)
		elem := args[0].(bson.D)[0].Value.(bson.A)
		if elem[0] != path || args[1] != "" {
			t.Fatalf("%s: unexpected expression %v", field, expr)
		}
	}
	for _, field := range []string{"status", "amount", "created_at"} {
		if project[field] != 1 {
			t.Fatalf("expected %s to be kept", field)
		}
	}
}

func TestDeliveredFilter(t *testing.T) {
	all := deliveredFilter(time.Time{})
	if all["status"] != domain.OrderDelivered {
		t.Fatalf("expected delivered status filter, got %v", all)
	}
	if _, ok := all["created_at"]; ok {
		t.Fatalf("zero since must not bound created_at: %v", all)
	}

	since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	windowed := deliveredFilter(since)
	bound, ok := windowed["created_at"].(bson.M)
	if !ok || bound["$gte"] != since {
		t.Fatalf("expected created_at >= %v, got %v", since, windowed)
	}

	fields := saleProjection.Map()
	for _, f := range []string{"car_id", "amount", "created_at"} {
		if fields[f] != 1 {
			t.Fatalf("projection must include %s", f)
		}
	}
}

func TestNewIDIsHexObjectID(t *testing.T) {
	id := newID()
	if len(id) != 24 {
		t.Fatalf("expected 24 hex chars, got %q", id)
	}
	if id == newID() {
		t.Fatal("expected distinct ids")
	}
}
