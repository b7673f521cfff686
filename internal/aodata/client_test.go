package aodata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchItemDump(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"UniqueName":"T4_BAG","LocalizedNames":{"EN-US":"Bag"},"Index":"42"},
			{"UniqueName":"T5_BAG","LocalizedNames":null}
		]`))
	}))
	defer srv.Close()

	c := New(Config{ItemDumpURL: srv.URL})

	items, err := c.FetchItemDump(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "T4_BAG", items[0].UniqueName)
	assert.Equal(t, "Bag", items[0].LocalizedNames["EN-US"])
	assert.Nil(t, items[1].LocalizedNames)
}

func TestFetchPricesCaches(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Contains(t, r.URL.RawQuery, "locations=Caerleon")
		w.Write([]byte(`[{"item_id":"T4_BAG","city":"Caerleon","quality":1,"sell_price_min":1234,"sell_price_min_date":"2020-01-01T00:00:00"}]`))
	}))
	defer srv.Close()

	c := New(Config{PricesURL: srv.URL + "/"})

	prices, err := c.FetchPrices(context.Background(), "T4_BAG")
	require.NoError(t, err)
	require.Len(t, prices, 1)
	assert.Equal(t, 1234, prices[0].SellPriceMin)

	// Second lookup is served from cache.
	again, err := c.FetchPrices(context.Background(), "T4_BAG")
	require.NoError(t, err)
	assert.Equal(t, prices, again)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.NotEmpty(t, q.Get("date"))
		assert.Equal(t, "1", q.Get("time-scale"))
		w.Write([]byte(`[{
			"location":"Caerleon","quality":1,
			"data":{"item_count":[10,12],"prices_avg":[1000.5,1010.0],
			        "timestamps":["2020-01-01T00:00:00","2020-01-02T00:00:00"]}
		}]`))
	}))
	defer srv.Close()

	c := New(Config{HistoryURL: srv.URL + "/"})

	entries, err := c.FetchHistory(context.Background(), "T4_BAG", 7)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Caerleon", entries[0].Location)
	assert.Equal(t, []float64{1000.5, 1010.0}, entries[0].Data.PricesAvg)
	assert.Len(t, entries[0].Data.Timestamps, 2)
}

func TestGetJSONNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(Config{PricesURL: srv.URL + "/"})

	_, err := c.FetchPrices(context.Background(), "T4_NOPE")
	assert.ErrorContains(t, err, "unexpected status")
}

func TestItemIconURL(t *testing.T) {
	c := New(Config{})
	assert.Equal(t,
		"https://render.albiononline.com/v1/item/T4_BAG@1.png",
		c.ItemIconURL("T4_BAG@1"))
}
