package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeContentKind(t *testing.T) {
	cases := map[string]ContentKind{
		"news":     ContentNews,
		"product":  ContentProducts,
		"products": ContentProducts,
		"camp":     ContentCamps,
		"camps":    ContentCamps,
		"podcast":  ContentPodcasts,
		"podcasts": ContentPodcasts,
		"expert":   ContentExperts,
		"experts":  ContentExperts,
	}

	for tag, want := range cases {
		kind, err := NormalizeContentKind(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, want, kind, tag)
	}
}

func TestNormalizeContentKind_Unknown(t *testing.T) {
	for _, tag := range []string{"", "widgets", "News", "PRODUCTS"} {
		_, err := NormalizeContentKind(tag)
		assert.ErrorIs(t, err, ErrInvalidContentKind, tag)
	}
}
