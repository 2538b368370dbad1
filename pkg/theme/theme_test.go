package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want Key
	}{
		{name: "known key", key: "purple", want: Purple},
		{name: "dashboard-only key", key: "sevenK", want: SevenK},
		{name: "empty key falls back to sky", key: "", want: Sky},
		{name: "unknown key falls back to sky", key: "neon", want: Sky},
		{name: "keys are case sensitive", key: "Rose", want: Sky},
		{name: "edited address bar garbage", key: "sky&theme=<script>", want: Sky},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.key).Key)
		})
	}
}

func TestResolve_UnknownKeysUseDefaultGradient(t *testing.T) {
	sky := Resolve(string(Sky)).Gradient
	for _, key := range []string{"", "unknown", "SKY", " sky", "0"} {
		assert.Equal(t, sky, Resolve(key).Gradient, "key %q", key)
	}
}

func TestCatalog(t *testing.T) {
	themes := Catalog()

	assert.Len(t, themes, 8)
	assert.Equal(t, Sky, themes[0].Key)
	assert.Equal(t, "Blue Sky", themes[0].Label)
	for _, th := range themes {
		assert.True(t, IsKnown(string(th.Key)))
		assert.NotEmpty(t, th.Gradient.From)
		assert.NotEmpty(t, th.Gradient.To)
		assert.NotEmpty(t, th.Gradient.Header)
	}

	themes[0].Label = "changed"
	assert.Equal(t, "Blue Sky", Catalog()[0].Label)
}
