// Command genitems fetches the item dump, enriches it with the generated
// common names, and writes the catalog cache file the bot loads at startup.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/albie-bot/albie/internal/aodata"
	"github.com/albie-bot/albie/internal/catalog"
)

func main() {
	out := flag.String("out", "items.json", "output path for the enriched catalog")
	dumpURL := flag.String("dump-url", "", "item dump URL override")
	flag.Parse()

	client := aodata.New(aodata.Config{ItemDumpURL: *dumpURL})

	raw, err := client.FetchItemDump(context.Background())
	if err != nil {
		slog.Error("Failed to fetch item dump", "error", err)
		os.Exit(1)
	}

	items := catalog.Enrich(raw)

	data, err := json.Marshal(items)
	if err != nil {
		slog.Error("Failed to encode catalog", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		slog.Error("Failed to write catalog", "error", err)
		os.Exit(1)
	}

	slog.Info("Catalog written", "path", *out, "items", len(items))
}
