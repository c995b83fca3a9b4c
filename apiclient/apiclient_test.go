package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"salesdash/apiclient"
)

const feedBody = `[
  {"id":1,"title":"Fjallraven Backpack","price":329.85,"description":"Your perfect pack","category":"men's clothing","image":"https://example.com/1.jpg","sold":false,"dateOfSale":"2021-11-27T20:29:54+05:30"},
  {"id":2,"title":"Slim Fit T-Shirt","price":44.6,"description":"Slim-fitting style","category":"men's clothing","image":"https://example.com/2.jpg","sold":true,"dateOfSale":"2021-10-27T20:29:54+05:30"}
]`

func TestFetchTransactions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	client, err := apiclient.NewAPIClient(srv.Client(), srv.URL+"/product_transaction.json")
	if err != nil {
		t.Fatalf("NewAPIClient failed: %v", err)
	}

	transactions, err := client.FetchTransactions(context.Background())
	if err != nil {
		t.Fatalf("FetchTransactions failed: %v", err)
	}
	if len(transactions) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(transactions))
	}

	first := transactions[0]
	if first.Title != "Fjallraven Backpack" || first.Price != 329.85 || first.Sold {
		t.Errorf("Unexpected first transaction: %+v", first)
	}
	if first.Category != "men's clothing" {
		t.Errorf("Unexpected category %q", first.Category)
	}
	if got := first.DateOfSale.UTC().Month(); got != time.November {
		t.Errorf("Expected November, got %v", got)
	}
	if !first.ID.IsZero() {
		t.Errorf("Expected the store to assign ids, got %v", first.ID)
	}
}

func TestFetchTransactions_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := apiclient.NewAPIClient(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("NewAPIClient failed: %v", err)
	}

	_, err = client.FetchTransactions(context.Background())
	if !apiclient.IsUnexpectedStatus(err) {
		t.Errorf("Expected unexpected status error, got %v", err)
	}
}

func TestFetchTransactions_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	client, err := apiclient.NewAPIClient(srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("NewAPIClient failed: %v", err)
	}

	_, err = client.FetchTransactions(context.Background())
	if !apiclient.IsBodyUnmarshall(err) {
		t.Errorf("Expected unmarshall error, got %v", err)
	}
}

func TestFetchTransactions_FileURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.json")
	if err := os.WriteFile(path, []byte(feedBody), 0o644); err != nil {
		t.Fatalf("failed to write feed file: %v", err)
	}

	client, err := apiclient.NewAPIClient(nil, "file://"+filepath.ToSlash(path))
	if err != nil {
		t.Fatalf("NewAPIClient failed: %v", err)
	}

	transactions, err := client.FetchTransactions(context.Background())
	if err != nil {
		t.Fatalf("FetchTransactions failed: %v", err)
	}
	if len(transactions) != 2 {
		t.Errorf("Expected 2 transactions, got %d", len(transactions))
	}
}

func TestNewAPIClient_InvalidURL(t *testing.T) {
	if _, err := apiclient.NewAPIClient(nil, "not a url"); err == nil {
		t.Error("Expected an error for a URL without scheme")
	}
}
