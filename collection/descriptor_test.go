package collection

import (
	"encoding/json"
	"testing"
)

func TestBuildQuery_ProjectsOnlyNonEmptyKeys(t *testing.T) {
	c := testCollection(t).Limit(5).Offset(5).Sort("updated_at", -1)

	d := c.BuildQuery()

	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"limit":5,"offset":5,"s":[["updated_at","desc"]]}`
	if string(got) != want {
		t.Errorf("descriptor = %s, want %s", got, want)
	}
}

func TestBuildQuery_ClauseTuples(t *testing.T) {
	c := testCollection(t).
		Where("status", "published").
		OrWhereOp("views", ">", 100)

	got, err := json.Marshal(c.BuildQuery())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"q":[["status","=","published","and"],["views",">",100,"or"]]}`
	if string(got) != want {
		t.Errorf("descriptor = %s, want %s", got, want)
	}
}

func TestBuildQuery_OptionKeys(t *testing.T) {
	c := testCollection(t).
		Join("author", "comments").
		Select("id", "title").
		Distinct().
		Group("status")
	c.acc.first = true
	c.acc.perPage = 20
	c.acc.aggregate = &Aggregate{Method: "count", Field: "*"}
	c.acc.operation = &Operation{Method: "increment", Field: "views", Value: 1}
	c.acc.data = map[string]any{"title": "hello"}

	d := c.BuildQuery()

	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"p":20,"f":1,"aggr":{"method":"count","field":"*"},` +
		`"op":{"method":"increment","field":"views","value":1},` +
		`"data":{"title":"hello"},"with":["author","comments"],` +
		`"select":["id","title"],"distinct":true}`
	if string(got) != want {
		t.Errorf("descriptor = %s, want %s", got, want)
	}
}

func TestBuildQuery_ResetsAccumulator(t *testing.T) {
	c := testCollection(t).Where("a", 1).Sort("x").Limit(5)

	first := c.BuildQuery()
	if first.IsEmpty() {
		t.Fatal("first compile should carry state")
	}

	second := c.BuildQuery()
	if !second.IsEmpty() {
		t.Errorf("second compile should be empty, got %+v", second)
	}
	if got, _ := json.Marshal(second); string(got) != "{}" {
		t.Errorf("second compile serialized to %s, want {}", got)
	}
}

func TestBuildQuery_DescriptorSurvivesReset(t *testing.T) {
	c := testCollection(t).Where("a", 1)

	d := c.BuildQuery()
	c.Where("b", 2).BuildQuery()

	if len(d.Query) != 1 || d.Query[0].Field != "a" {
		t.Errorf("captured descriptor changed after builder reuse: %+v", d.Query)
	}
}

func TestQueryValues_ScalarAndCompositeKeys(t *testing.T) {
	c := testCollection(t).Where("a", 1).Limit(5).Remember(3).Distinct()

	values, err := c.BuildQuery().QueryValues()
	if err != nil {
		t.Fatalf("QueryValues failed: %v", err)
	}

	if got := values.Get("limit"); got != "5" {
		t.Errorf("limit = %q, want %q", got, "5")
	}
	if got := values.Get("remember"); got != "3" {
		t.Errorf("remember = %q, want %q", got, "3")
	}
	if got := values.Get("distinct"); got != "true" {
		t.Errorf("distinct = %q, want %q", got, "true")
	}
	if got := values.Get("q"); got != `[["a","=",1,"and"]]` {
		t.Errorf("q = %q, want %q", got, `[["a","=",1,"and"]]`)
	}
	if values.Has("s") || values.Has("g") || values.Has("offset") {
		t.Errorf("empty keys leaked into query values: %v", values)
	}
}

func TestQueryValues_NilDescriptor(t *testing.T) {
	var d *Descriptor
	values, err := d.QueryValues()
	if err != nil {
		t.Fatalf("QueryValues on nil descriptor failed: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("nil descriptor produced values: %v", values)
	}
}
