package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundrypro/internal/catalog"
	"laundrypro/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	cat := catalog.Default()

	all := cat.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"wash-and-fold", "dry-cleaning", "ironing"},
		[]string{all[0].ID, all[1].ID, all[2].ID})

	svc, ok := cat.Lookup("wash-and-fold")
	require.True(t, ok)
	assert.Equal(t, "Wash & Fold", svc.Name)
	assert.Equal(t, 15.0, svc.UnitPrice)
	assert.Equal(t, "kg", svc.Unit)

	_, ok = cat.Lookup("shoe-shining")
	assert.False(t, ok)
}

func TestNewKeepsOrderAndDropsDuplicates(t *testing.T) {
	cat := catalog.New(
		models.Service{ID: "a", Name: "A", UnitPrice: 1, Unit: "kg"},
		models.Service{ID: "b", Name: "B", UnitPrice: 2, Unit: "pcs"},
		models.Service{ID: "a", Name: "A again", UnitPrice: 9, Unit: "kg"},
	)

	all := cat.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)
	assert.Equal(t, "B", all[1].Name)
}
