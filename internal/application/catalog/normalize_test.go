package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/usse-dev/almacen-api/internal/application/catalog"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"Cable THHN", "cable thhn"},
		{"Categoría Eléctrica", "categoria electrica"},
		{"ALBAÑILERÍA", "albañileria"}, // la ñ no es marca diacrítica, se conserva
		{"fibra óptica", "fibra optica"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, catalog.Normalizar(c.in), "entrada %q", c.in)
	}
}
