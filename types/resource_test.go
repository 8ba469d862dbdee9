package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceDisplayName(t *testing.T) {
	t.Run("prefers name", func(t *testing.T) {
		r := Resource{ID: "i-0abc", Name: "web-1"}
		assert.Equal(t, "web-1", r.DisplayName())
	})

	t.Run("falls back to ID", func(t *testing.T) {
		r := Resource{ID: "i-0abc"}
		assert.Equal(t, "i-0abc", r.DisplayName())
	})

	t.Run("sentinel when nothing is set", func(t *testing.T) {
		r := Resource{}
		assert.Equal(t, NotAvailable, r.DisplayName())
	})
}

func TestResourceIdentifier(t *testing.T) {
	t.Run("prefers ARN", func(t *testing.T) {
		r := Resource{ID: "my-bucket", ARN: "arn:aws:s3:::my-bucket"}
		assert.Equal(t, "arn:aws:s3:::my-bucket", r.Identifier())
	})

	t.Run("falls back to ID", func(t *testing.T) {
		r := Resource{ID: "vol-123"}
		assert.Equal(t, "vol-123", r.Identifier())
	})
}

func TestIsGlobal(t *testing.T) {
	regional := Resource{Region: "us-east-1"}
	global := Resource{Region: RegionGlobal}

	assert.False(t, regional.IsGlobal())
	assert.True(t, global.IsGlobal())
}

func TestSerializeTags(t *testing.T) {
	t.Run("sorted and joined", func(t *testing.T) {
		tags := map[string]string{
			"Team":        "platform",
			"Environment": "production",
		}
		assert.Equal(t, "Environment=production; Team=platform", SerializeTags(tags))
	})

	t.Run("empty map is sentinel", func(t *testing.T) {
		assert.Equal(t, NotAvailable, SerializeTags(nil))
		assert.Equal(t, NotAvailable, SerializeTags(map[string]string{}))
	})
}

func TestNameFromTags(t *testing.T) {
	assert.Equal(t, "bastion", NameFromTags(map[string]string{"Name": "bastion"}))
	assert.Equal(t, NotAvailable, NameFromTags(nil))
	assert.Equal(t, NotAvailable, NameFromTags(map[string]string{"Team": "x"}))
}
