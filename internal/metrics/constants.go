package metrics

// Metric names
const (
	MetricNameCommandsHandled  = "albie_commands_handled_total"
	MetricNameAPIRequests      = "albie_aodata_requests_total"
	MetricNamePriceCacheHits   = "albie_price_cache_hits_total"
	MetricNamePriceCacheMisses = "albie_price_cache_misses_total"
	MetricNameMatchDuration    = "albie_match_duration_seconds"
	MetricNameCatalogItems     = "albie_catalog_items"
)

// Help texts
const (
	HelpTextCommandsHandled  = "Total Discord commands handled, by command and outcome"
	HelpTextAPIRequests      = "Total requests against the Albion Online Data API, by endpoint and outcome"
	HelpTextPriceCacheHits   = "Total price lookups served from the in-memory cache"
	HelpTextPriceCacheMisses = "Total price lookups that had to hit the API"
	HelpTextMatchDuration    = "Time spent resolving a query against the catalog"
	HelpTextCatalogItems     = "Number of items in the current catalog snapshot"
)

// Label names
const (
	LabelCommand  = "command"
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
)

// Outcome label values
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
