package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "url estándar con versión",
			url:  "https://res.cloudinary.com/demo/image/upload/v1700000000/products/abc123.jpg",
			want: "products/abc123",
		},
		{
			name: "sin extensión",
			url:  "https://res.cloudinary.com/demo/image/upload/products/abc123",
			want: "products/abc123",
		},
		{
			name: "extensión png",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/products/foto-frente.png",
			want: "products/foto-frente",
		},
		{
			name: "dos segmentos justos",
			url:  "https://cdn.ejemplo.com/products/abc.webp",
			want: "products/abc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PublicIDFromURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublicIDFromURL_Invalidas(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "relativa", url: "products/abc.jpg"},
		{name: "vacía", url: ""},
		{name: "solo host", url: "https://res.cloudinary.com"},
		{name: "un solo segmento", url: "https://res.cloudinary.com/abc.jpg"},
		{name: "esquema sin host ni path útil", url: "https:///"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PublicIDFromURL(tt.url)
			assert.ErrorIs(t, err, domain.ErrInvalidImageURL)
		})
	}
}
