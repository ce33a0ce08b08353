package marketdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"WigLens/internal/domain/models"
	pkghttp "WigLens/pkg/http"
	"WigLens/pkg/util"
)

// FeedSource fetches daily candles from a stooq style CSV endpoint serving
// rows of Date,Open,High,Low,Close,Volume.
type FeedSource struct {
	client  *pkghttp.Client
	baseURL string
	clock   func() time.Time
}

// FeedOption configures FeedSource.
type FeedOption func(*FeedSource)

// NewFeedSource creates a feed backed source for the given base URL.
func NewFeedSource(baseURL string, opts ...FeedOption) *FeedSource {
	f := &FeedSource{
		client:  pkghttp.NewClient(pkghttp.WithTimeout(15 * time.Second)),
		baseURL: strings.TrimRight(baseURL, "/"),
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithFeedClient overrides the HTTP client, mainly for timeouts.
func WithFeedClient(client *pkghttp.Client) FeedOption {
	return func(f *FeedSource) {
		f.client = client
	}
}

// WithFeedClock overrides the time source used to build the date range.
func WithFeedClock(clock func() time.Time) FeedOption {
	return func(f *FeedSource) {
		f.clock = clock
	}
}

func (f *FeedSource) Name() string { return "feed" }

func (f *FeedSource) History(ctx context.Context, q Quote, days int) (models.History, error) {
	if days <= 0 {
		days = 365
	}
	now := f.clock()

	var body []byte
	err := f.client.SendAndParse(ctx, &pkghttp.RequestOptions{
		Method: pkghttp.MethodGet,
		URL:    f.baseURL,
		QueryParams: map[string][]string{
			"s":  {strings.ToLower(q.Symbol)},
			"i":  {"d"},
			"d1": {now.AddDate(0, 0, -days).Format("20060102")},
			"d2": {now.Format("20060102")},
		},
	}, &body)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", q.Symbol, err)
	}

	history, err := parseCSV(body)
	if err != nil {
		return nil, fmt.Errorf("parse history for %s: %w", q.Symbol, err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("empty history for %s", q.Symbol)
	}
	return history, nil
}

// parseCSV decodes the feed body. The header row is required; malformed data
// rows are skipped rather than failing the whole response, since feeds
// occasionally emit "N/D" placeholders for suspended sessions.
func parseCSV(body []byte) (models.History, error) {
	r := csv.NewReader(strings.NewReader(string(body)))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 6 || !strings.EqualFold(header[0], "date") {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	var history models.History
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) < 6 {
			continue
		}

		date, ok := util.ParseDay(row[0])
		if !ok {
			continue
		}
		if !util.IsTradingDay(date) {
			continue
		}

		var vals [5]float64
		ok = true
		for i := 0; i < 5; i++ {
			v, err := strconv.ParseFloat(row[i+1], 64)
			if err != nil || v < 0 {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok || vals[3] <= 0 {
			continue
		}

		history = append(history, models.Candle{
			Date:   date,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})
	return history, nil
}
