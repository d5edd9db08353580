package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchEndpointBreadQuery(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?q=bread", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body := decode(t, resp)
	if body["count"] != float64(1) {
		t.Fatalf("want exactly one match, got %v", body["count"])
	}
	results := body["results"].([]any)
	first := results[0].(map[string]any)
	if first["name"] != "Artisan Sourdough Bread" {
		t.Fatalf("wrong product: %v", first["name"])
	}
	if first["sponsored"] != false {
		t.Fatal("bakery holds no sponsored slot in seed data")
	}
	biz := first["business"].(map[string]any)
	if biz["name"] != "Sarah's Artisan Bakery" {
		t.Fatalf("business summary missing: %v", biz)
	}
}

func TestSearchEndpointRejectsJunkQuery(t *testing.T) {
	app, _ := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/search?q=%3Cscript%3E", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for junk query, got %d", resp.StatusCode)
	}
}

func TestSearchEndpointRadiusMode(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/v1/search?lat=40.7128&lng=-74.0060&radius=5&category=All+Categories", nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decode(t, resp)
	results := body["results"].([]any)
	if len(results) == 0 {
		t.Fatal("origin business should match within 5 km")
	}
	for _, r := range results {
		if r.(map[string]any)["businessId"] == "bp2" {
			t.Fatal("business beyond 5 km leaked into radius results")
		}
	}
}

func TestSearchEndpointPriceAndRatingParams(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET",
		"/api/v1/search?location=Tech+Quarter&price_min=100&price_max=250", nil))
	if err != nil {
		t.Fatal(err)
	}
	body := decode(t, resp)
	if body["count"] != float64(1) {
		t.Fatalf("want the earbuds only, got %v", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET",
		"/api/v1/search?location=Tech+Quarter&min_rating=4.7", nil))
	if err != nil {
		t.Fatal(err)
	}
	body = decode(t, resp)
	if body["count"] != float64(0) {
		t.Fatalf("rating gate failed: %v", body)
	}
}

func TestBusinessDetailEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/businesses/bp1", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body := decode(t, resp)
	if body["name"] != "Sarah's Artisan Bakery" {
		t.Fatalf("wrong profile: %v", body)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/businesses/nope", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404 for unknown business, got %d", resp.StatusCode)
	}
}

func TestMessagesEndpoints(t *testing.T) {
	app, st := newTestApp(t)
	sid := login(t, app, "john@example.com", "password")

	resp, err := app.Test(withSID(httptest.NewRequest("GET", "/api/v1/messages", nil), sid))
	if err != nil {
		t.Fatal(err)
	}
	body := decode(t, resp)
	if body["unread"] != float64(1) {
		t.Fatalf("want 1 unread for John, got %v", body["unread"])
	}

	// blank body rejected, nothing appended
	before := len(st.State().Messages)
	resp, err = app.Test(withSID(jsonReq("POST", "/api/v1/messages", `{"to":"2","content":"   "}`), sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for blank message, got %d", resp.StatusCode)
	}
	if len(st.State().Messages) != before {
		t.Fatal("blank message reached the log")
	}

	// real send lands in the log
	resp, err = app.Test(withSID(jsonReq("POST", "/api/v1/messages", `{"to":"2","content":"Any rye today?"}`), sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("want 201, got %d", resp.StatusCode)
	}
	if len(st.State().Messages) != before+1 {
		t.Fatal("message not appended")
	}

	// mark-read is idempotent and safe for unknown ids
	for _, id := range []string{"m4", "m4", "ghost"} {
		resp, err = app.Test(withSID(jsonReq("POST", "/api/v1/messages/"+id+"/read", ``), sid))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("mark-read %s: want 200, got %d", id, resp.StatusCode)
		}
	}

	// someone else's mail replies ok but stays unread (m1 is addressed to Sarah)
	resp, err = app.Test(withSID(jsonReq("POST", "/api/v1/messages/m1/read", ``), sid))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	for _, m := range st.State().Messages {
		if m.ID == "m1" && m.Read {
			t.Fatal("another user's message was marked read")
		}
	}
}
