package detail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/plant-reminder/internal/catalog"
	"github.com/nhle/plant-reminder/internal/i18n"
	"github.com/nhle/plant-reminder/internal/keys"
)

func TestRenderContentKeepsImageURLOffTheTitle(t *testing.T) {
	p, ok := catalog.Get("rose")
	require.True(t, ok)
	require.NotEmpty(t, p.Image)

	m := New(nil, i18n.New("en"), keys.DefaultKeyMap(), 80, 24)
	m.plant = &p

	content := m.renderContent()
	assert.Contains(t, content, p.Name)
	assert.NotContains(t, content, p.Image)
}
