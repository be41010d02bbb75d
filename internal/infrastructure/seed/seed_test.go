package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badassgarage/inventory-api/internal/domain"
	"github.com/badassgarage/inventory-api/internal/infrastructure/seed"
)

func TestLoad_SinPath_UsaInventarioDeMuestra(t *testing.T) {
	store, err := seed.Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, store.Count())
	items := store.List()
	assert.Equal(t, "1967 Mustang Fastback", items[0].Name, "orden de inserción preservado")
	require.NotNil(t, items[1].Category)
	assert.Equal(t, "Memorabilia", *items[1].Category)
	assert.Nil(t, items[2].ImageURL, "el bumper set no tiene imagen en la muestra")
}

func TestLoad_ArchivoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	payload := `[
		{"id":"a","name":"Hub Caps","quantity":10,"min_quantity":4,"price":"120.50","location":"Shelf C1"},
		{"id":"b","name":"Oil Drum","quantity":0,"min_quantity":1,"price":"0"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	store, err := seed.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, store.Count())

	items := store.List()
	assert.Equal(t, "Hub Caps", items[0].Name)
	require.NotNil(t, items[0].Location)
	assert.Equal(t, "Shelf C1", *items[0].Location)
	assert.Nil(t, items[0].Description, "campo ausente queda nil, no cadena vacía")
	assert.Equal(t, "120.5", items[0].Price.String())
}

func TestLoad_ItemInvalido_FallaConValidationError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	payload := `[{"id":"a","name":"Broken","quantity":-1,"min_quantity":0,"price":"0"}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	_, err := seed.Load(path)
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestLoad_ArchivoInexistente_Falla(t *testing.T) {
	_, err := seed.Load("/no/existe/seed.json")
	assert.Error(t, err)
}
