package emoji

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierEmojisDefaults(t *testing.T) {
	emojis := TierEmojis("")
	require.Len(t, emojis, Tiers)
	assert.Equal(t, "1⃣", emojis[0])
	assert.Equal(t, "8⃣", emojis[7])
}

func TestTierEmojisMissingFileFallsBack(t *testing.T) {
	emojis := TierEmojis(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, TierEmojis(""), emojis)
}

func TestTierEmojisPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"t4":"<:t4:123>","t8":""}`), 0o644))

	emojis := TierEmojis(path)
	assert.Equal(t, "<:t4:123>", emojis[3])
	assert.Equal(t, "1⃣", emojis[0], "unlisted tiers keep defaults")
	assert.Equal(t, "8⃣", emojis[7], "empty override keeps default")
}

func TestTierEmojisMalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojis.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o644))

	assert.Equal(t, TierEmojis(""), TierEmojis(path))
}
