package discord

// Friendly message constants for Discord responses
const (
	MsgNoItemGiven = "❓ **No item given**\nPlease specify an item to look up."

	MsgAPIError = "🌐 **Market data unavailable**\nThe price API did not answer. Try again in a bit."

	MsgCatalogEmpty = "📦 **Catalog not loaded**\nThe item catalog is empty. Poke an admin."

	MsgGenericError = "❌ Something went wrong."
)
