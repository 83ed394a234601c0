package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%thinkpad%", LikePattern("  ThinkPad "))
	assert.Equal(t, `%50\%\_off%`, LikePattern("50%_OFF"))
}

func TestProductColumns(t *testing.T) {
	assert.True(t, strings.HasPrefix(ProductColumns, "p.product_id, p.sku"))
	assert.True(t, strings.HasSuffix(ProductColumns, "p.updated_at"))
}
