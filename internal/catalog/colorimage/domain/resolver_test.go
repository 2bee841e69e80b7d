package domain

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	colordomain "github.com/stitchline/vestra/internal/catalog/color/domain"
	"github.com/stretchr/testify/assert"
)

func colorRef(id int64, name string) colordomain.Color {
	return colordomain.Color{ID: snowflake.ID(id), Name: name}
}

func TestResolveDisplayImages_NoSelection(t *testing.T) {
	productImages := []string{"default-1.jpg", "default-2.jpg"}
	colors := []colordomain.Color{colorRef(7, "Rojo")}

	got := ResolveDisplayImages(productImages, nil, colors, "")
	assert.Equal(t, productImages, got)

	got = ResolveDisplayImages(productImages, nil, colors, "   ")
	assert.Equal(t, productImages, got)
}

func TestResolveDisplayImages_UnknownColor(t *testing.T) {
	productImages := []string{"default.jpg"}
	sets := []ColorImageSet{{ColorID: 7, Images: []string{"rojo.jpg"}}}
	colors := []colordomain.Color{colorRef(7, "Rojo")}

	got := ResolveDisplayImages(productImages, sets, colors, "Verde")
	assert.Equal(t, productImages, got)
}

func TestResolveDisplayImages_ColorHit(t *testing.T) {
	productImages := []string{"default.jpg"}
	sets := []ColorImageSet{
		{ColorID: 3, Images: []string{"azul.jpg"}},
		{ColorID: 7, Images: []string{"a.jpg", "b.jpg"}},
	}
	colors := []colordomain.Color{colorRef(3, "Azul"), colorRef(7, "Rojo")}

	got := ResolveDisplayImages(productImages, sets, colors, "Rojo")
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got)
}

func TestResolveDisplayImages_CaseInsensitiveMatch(t *testing.T) {
	sets := []ColorImageSet{{ColorID: 7, Images: []string{"a.jpg"}}}
	colors := []colordomain.Color{colorRef(7, "Rojo")}

	got := ResolveDisplayImages([]string{"default.jpg"}, sets, colors, "  rojo ")
	assert.Equal(t, []string{"a.jpg"}, got)
}

func TestResolveDisplayImages_EmptyAssociationFallsBack(t *testing.T) {
	productImages := []string{"default.jpg"}
	sets := []ColorImageSet{{ColorID: 7, Images: nil}}
	colors := []colordomain.Color{colorRef(7, "Rojo")}

	got := ResolveDisplayImages(productImages, sets, colors, "Rojo")
	assert.Equal(t, productImages, got)
}

func TestResolveDisplayImages_EmptyEverything(t *testing.T) {
	got := ResolveDisplayImages(nil, nil, nil, "")
	assert.Empty(t, got)
}

func TestResolveDisplayImages_ReturnsFreshSlice(t *testing.T) {
	sets := []ColorImageSet{{ColorID: 7, Images: []string{"a.jpg", "b.jpg"}}}
	colors := []colordomain.Color{colorRef(7, "Rojo")}

	got := ResolveDisplayImages([]string{"default.jpg"}, sets, colors, "Rojo")
	got[0] = "mutated.jpg"
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, sets[0].Images)
}

func TestResolveDisplayImages_Idempotent(t *testing.T) {
	productImages := []string{"default.jpg"}
	sets := []ColorImageSet{{ColorID: 7, Images: []string{"a.jpg"}}}
	colors := []colordomain.Color{colorRef(7, "Rojo")}

	first := ResolveDisplayImages(productImages, sets, colors, "Rojo")
	second := ResolveDisplayImages(productImages, sets, colors, "Rojo")
	assert.Equal(t, first, second)
}

func TestFirstValidImage(t *testing.T) {
	placeholders := []string{"via.placeholder.com"}

	cases := []struct {
		name   string
		images []string
		want   string
	}{
		{"empty list", nil, ""},
		{"http url", []string{"https://cdn.example.com/a.jpg"}, "https://cdn.example.com/a.jpg"},
		{"data uri", []string{"data:image/png;base64,AAAA"}, "data:image/png;base64,AAAA"},
		{
			"skips placeholder",
			[]string{"https://via.placeholder.com/300", "https://cdn.example.com/real.jpg"},
			"https://cdn.example.com/real.jpg",
		},
		{
			"all placeholders returns first verbatim",
			[]string{"https://via.placeholder.com/300", "https://via.placeholder.com/400"},
			"https://via.placeholder.com/300",
		},
		{"relative path returns first verbatim", []string{"/uploads/a.jpg"}, "/uploads/a.jpg"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FirstValidImage(tc.images, placeholders))
		})
	}
}

func TestHexForName(t *testing.T) {
	navy := "#1f2a44"
	colors := []colordomain.Color{
		{ID: 1, Name: "Navy", Hex: &navy},
		{ID: 2, Name: "Sin Hex"},
	}

	assert.Equal(t, "#1f2a44", colordomain.HexForName("navy", colors, "#9ca3af"))
	assert.Equal(t, "#9ca3af", colordomain.HexForName("Sin Hex", colors, "#9ca3af"))
	assert.Equal(t, "#9ca3af", colordomain.HexForName("Desconocido", colors, "#9ca3af"))
}
