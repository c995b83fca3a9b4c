// Package apiclient fetches the remote product transaction feed used to seed the store.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"salesdash/appcontext"
	"salesdash/sales/model"
)

const (
	// DefaultFeedURL is the public JSON document the dataset has always been seeded from.
	DefaultFeedURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"
)

var errHTTPUnexpectedStatusCode = errors.New("unexpected http status code")
var errHTTPFeedURLFormatting = errors.New("error formatting feed URL")
var errHTTPBodyUnmarshall = errors.New("error unmarshalling HTTP response body")

// HTTPUnexpectedStatusCodeError is a error wrapper.
func HTTPUnexpectedStatusCodeError(statusCode int) error {
	return fmt.Errorf("%w, %d", errHTTPUnexpectedStatusCode, statusCode)
}

func HTTPFeedURLFormattingError(feedURL string) error {
	return fmt.Errorf("%w, %s", errHTTPFeedURLFormatting, feedURL)
}

func HTTPBodyUnmarshallError(baseErr error) error {
	return fmt.Errorf("%w, %w", errHTTPBodyUnmarshall, baseErr)
}

// IsUnexpectedStatus reports whether err was caused by a non-200 feed response.
func IsUnexpectedStatus(err error) bool {
	return errors.Is(err, errHTTPUnexpectedStatusCode)
}

// IsBodyUnmarshall reports whether err was caused by an undecodable feed body.
func IsBodyUnmarshall(err error) bool {
	return errors.Is(err, errHTTPBodyUnmarshall)
}

// APIClient downloads the feed.
type APIClient struct {
	// a pointer to the http client to use.
	HTTPClient *http.Client
	// the feed document location.
	FeedURL *url.URL
}

// FeedItem is one element of the feed. Fields the store does not keep (id, image) are
// decoded but dropped by ToTransaction.
type FeedItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Sold        bool      `json:"sold"`
	DateOfSale  time.Time `json:"dateOfSale"`
}

// ToTransaction maps a feed item to a storable transaction.
func (f FeedItem) ToTransaction() model.Transaction {
	return model.Transaction{
		Title:       f.Title,
		Description: f.Description,
		Price:       f.Price,
		Sold:        f.Sold,
		Category:    f.Category,
		DateOfSale:  f.DateOfSale,
	}
}

// NewAPIClient creates a new APIClient. A nil httpClient gets a default client that also
// understands file:// URLs, so a locally generated feed can be used.
func NewAPIClient(httpClient *http.Client, feedURL string) (*APIClient, error) {
	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))
		httpClient = &http.Client{Transport: transport}
	}

	parsed, err := url.Parse(feedURL)
	if err != nil || parsed.Scheme == "" {
		return nil, HTTPFeedURLFormattingError(feedURL)
	}

	return &APIClient{
		HTTPClient: httpClient,
		FeedURL:    parsed,
	}, nil
}

// FetchTransactions sends a GET request for the feed and decodes it.
func (c *APIClient) FetchTransactions(ctx context.Context) ([]model.Transaction, error) {
	logger := appcontext.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "Fetching transaction feed", "url", c.FeedURL.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FeedURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, HTTPUnexpectedStatusCodeError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var items []FeedItem
	if err = json.Unmarshal(body, &items); err != nil {
		return nil, HTTPBodyUnmarshallError(err)
	}

	transactions := make([]model.Transaction, 0, len(items))
	for _, item := range items {
		transactions = append(transactions, item.ToTransaction())
	}

	logger.InfoContext(ctx, "Fetched transaction feed", "records", len(transactions))
	return transactions, nil
}
