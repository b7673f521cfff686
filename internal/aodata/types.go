package aodata

// CityPrice is one row of the current-prices endpoint: the latest sell/buy
// order extremes for an item in one city at one quality level.
type CityPrice struct {
	ItemID           string `json:"item_id"`
	City             string `json:"city"`
	Quality          int    `json:"quality"`
	SellPriceMin     int    `json:"sell_price_min"`
	SellPriceMinDate string `json:"sell_price_min_date"`
	BuyPriceMax      int    `json:"buy_price_max"`
	BuyPriceMaxDate  string `json:"buy_price_max_date"`
}

// HistoryEntry is one per-city, per-quality timeseries from the charts
// endpoint.
type HistoryEntry struct {
	Location string      `json:"location"`
	Quality  int         `json:"quality"`
	Data     HistoryData `json:"data"`
}

// HistoryData holds parallel slices: ItemCount[i] and PricesAvg[i] belong to
// Timestamps[i].
type HistoryData struct {
	ItemCount  []int     `json:"item_count"`
	PricesAvg  []float64 `json:"prices_avg"`
	Timestamps []string  `json:"timestamps"`
}

// TimestampLayout is the layout of the API's price and history timestamps.
const TimestampLayout = "2006-01-02T15:04:05"
