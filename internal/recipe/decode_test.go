package recipe

import (
	"encoding/json"
	"testing"
)

func TestSummary_DecodesOptionalFields(t *testing.T) {
	data := `{
		"id": 7,
		"title": "Chili",
		"rating": 4.5,
		"prep_time": 10,
		"cook_time": null,
		"serves": 6,
		"cuisine": "Tex-Mex",
		"continent": "North America",
		"country_state": "Texas"
	}`

	var s Summary
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if s.ID != 7 || s.Title != "Chili" {
		t.Fatalf("unexpected identity: %+v", s)
	}
	if s.Rating == nil || *s.Rating != 4.5 {
		t.Fatalf("rating = %v, want 4.5", s.Rating)
	}
	if s.PrepTime == nil || *s.PrepTime != 10 {
		t.Fatalf("prep_time = %v, want 10", s.PrepTime)
	}
	if s.CookTime != nil {
		t.Fatalf("cook_time = %v, want nil", *s.CookTime)
	}
	if s.TotalTime != nil {
		t.Fatalf("total_time = %v, want nil", *s.TotalTime)
	}
	if s.Serves != "6" {
		t.Fatalf("serves = %q, want %q", s.Serves, "6")
	}
	if s.CountryState != "Texas" {
		t.Fatalf("country_state = %q, want Texas", s.CountryState)
	}
	if s.HasDetails() {
		t.Fatal("summary without ingredients should not report details")
	}
}

func TestSummary_HasDetails(t *testing.T) {
	tests := []struct {
		name string
		s    Summary
		want bool
	}{
		{name: "none", s: Summary{}, want: false},
		{name: "ingredients_only", s: Summary{Ingredients: []string{"salt"}}, want: false},
		{name: "instructions_only", s: Summary{Instructions: []string{"stir"}}, want: false},
		{name: "both", s: Summary{Ingredients: []string{"salt"}, Instructions: []string{"stir"}}, want: true},
		{name: "both_empty_but_present", s: Summary{Ingredients: []string{}, Instructions: []string{}}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.HasDetails(); got != tt.want {
				t.Fatalf("HasDetails() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNutrients_PreserveOrder(t *testing.T) {
	data := `{"calories": "389 kcal", "fatContent": "21 g", "sodiumContent": null, "fiberContent": 0, "sugarContent": 3.5}`

	var n Nutrients
	if err := json.Unmarshal([]byte(data), &n); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	wantNames := []string{"calories", "fatContent", "sodiumContent", "fiberContent", "sugarContent"}
	if len(n) != len(wantNames) {
		t.Fatalf("len = %d, want %d", len(n), len(wantNames))
	}
	for i, name := range wantNames {
		if n[i].Name != name {
			t.Fatalf("n[%d].Name = %q, want %q", i, n[i].Name, name)
		}
	}

	if v, _ := n.Get("sugarContent"); v != "3.5" {
		t.Fatalf("sugarContent = %q, want 3.5", v)
	}
	if !n[2].Empty() {
		t.Fatal("null nutrient should be empty")
	}
	if !n[3].Empty() {
		t.Fatal("zero nutrient should be empty")
	}
	if n[0].Empty() {
		t.Fatal("calories should not be empty")
	}
}

func TestNutrients_RoundTripKeepsOrder(t *testing.T) {
	n := Nutrients{{Name: "b", Value: "1"}, {Name: "a", Value: "2"}}
	out, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"b":"1","a":"2"}` {
		t.Fatalf("marshal = %s", out)
	}
}

func TestNutrients_RejectsNonObject(t *testing.T) {
	var n Nutrients
	if err := json.Unmarshal([]byte(`["a"]`), &n); err == nil {
		t.Fatal("expected error for array nutrients")
	}
}

func TestDetail_DecodesEmbeddedSummary(t *testing.T) {
	data := `{"id": 3, "title": "Soup", "ingredients": ["water"], "instructions": ["boil"], "url": "https://example.com/soup", "nutrients": {"calories": "50 kcal"}}`

	var d Detail
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.ID != 3 || d.URL != "https://example.com/soup" {
		t.Fatalf("unexpected detail: %+v", d)
	}
	if !d.HasDetails() {
		t.Fatal("detail should report details")
	}
	if len(d.Nutrients) != 1 {
		t.Fatalf("nutrients = %d, want 1", len(d.Nutrients))
	}
}
