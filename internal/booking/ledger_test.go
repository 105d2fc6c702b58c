package booking

import (
	"testing"

	"festly/internal/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testCatalog() (mandatory, chairA, chairB, tableA catalog.Item) {
	stock := 100
	mandatory = catalog.Item{ID: uuid.New(), Name: "Seguridad", UnitPrice: 200, Category: catalog.CategoryMandatory}
	chairA = catalog.Item{ID: uuid.New(), Name: "Silla tiffany", UnitPrice: 8, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: &stock}
	chairB = catalog.Item{ID: uuid.New(), Name: "Silla plegable", UnitPrice: 5, Category: catalog.CategoryFurniture, Subcategory: "chairs", Stock: &stock}
	tableA = catalog.Item{ID: uuid.New(), Name: "Mesa redonda", UnitPrice: 25, Category: catalog.CategoryFurniture, Subcategory: "tables", Stock: &stock}
	return
}

func TestInitializeMandatory_AutoInsertsAtOne(t *testing.T) {
	mandatory, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{mandatory, chairA})

	ledger.InitializeMandatory()

	assert.Equal(t, 1, ledger.Quantity(mandatory.ID))
	assert.Equal(t, 0, ledger.Quantity(chairA.ID))
}

func TestInitializeMandatory_Idempotent(t *testing.T) {
	mandatory, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{mandatory, chairA})

	ledger.InitializeMandatory()
	ledger.SetQuantity(chairA.ID, 50)
	before := ledger.Quantities()

	ledger.InitializeMandatory()

	assert.Equal(t, before, ledger.Quantities())
}

func TestSetQuantity_ZeroRemovesEntry(t *testing.T) {
	_, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{chairA})

	ledger.SetQuantity(chairA.ID, 10)
	assert.Equal(t, 1, ledger.Len())

	ledger.SetQuantity(chairA.ID, 0)

	assert.Equal(t, 0, ledger.Len())
	_, present := ledger.Quantities()[chairA.ID]
	assert.False(t, present, "zero quantities must be deleted, not stored")
}

func TestSetQuantity_MandatoryCannotBeCleared(t *testing.T) {
	mandatory, _, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{mandatory})
	ledger.InitializeMandatory()

	ledger.SetQuantity(mandatory.ID, 0)
	assert.Equal(t, 1, ledger.Quantity(mandatory.ID))

	ledger.SetQuantity(mandatory.ID, -5)
	assert.Equal(t, 1, ledger.Quantity(mandatory.ID))
}

func TestSetQuantity_MandatoryPinnedAtOne(t *testing.T) {
	mandatory, _, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{mandatory})
	ledger.InitializeMandatory()

	ledger.SetQuantity(mandatory.ID, 7)

	assert.Equal(t, 1, ledger.Quantity(mandatory.ID))
}

func TestSetQuantity_ClampsToStock(t *testing.T) {
	_, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{chairA})

	ledger.SetQuantity(chairA.ID, 500)

	assert.Equal(t, 100, ledger.Quantity(chairA.ID))
}

func TestSetQuantity_NegativeRemovesNonMandatory(t *testing.T) {
	_, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{chairA})

	ledger.SetQuantity(chairA.ID, 10)
	ledger.SetQuantity(chairA.ID, -1)

	assert.Equal(t, 0, ledger.Len())
}

func TestMinQuantity(t *testing.T) {
	mandatory, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{mandatory, chairA})

	assert.Equal(t, 1, ledger.MinQuantity(mandatory.ID))
	assert.Equal(t, 0, ledger.MinQuantity(chairA.ID))
	assert.Equal(t, 0, ledger.MinQuantity(uuid.New()))
}

func TestApplyExclusiveSelection_ClearsSameSubcategory(t *testing.T) {
	_, chairA, chairB, tableA := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{chairA, chairB, tableA})

	ledger.SetQuantity(chairA.ID, 80)
	ledger.SetQuantity(tableA.ID, 10)

	ledger.ApplyExclusiveSelection("chairs", chairB.ID, 60)

	assert.Equal(t, 0, ledger.Quantity(chairA.ID), "previous chair model must be cleared")
	assert.Equal(t, 60, ledger.Quantity(chairB.ID))
	assert.Equal(t, 10, ledger.Quantity(tableA.ID), "other subcategories are untouched")
}

func TestApplyExclusiveSelection_SameItemKeepsEntry(t *testing.T) {
	_, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{chairA})

	ledger.SetQuantity(chairA.ID, 40)
	ledger.ApplyExclusiveSelection("chairs", chairA.ID, 60)

	assert.Equal(t, 60, ledger.Quantity(chairA.ID))
}

func TestRestoredLedger_DropsZeroEntries(t *testing.T) {
	_, chairA, chairB, _ := testCatalog()

	ledger := NewSelectionLedgerWithQuantities(
		[]catalog.Item{chairA, chairB},
		map[uuid.UUID]int{chairA.ID: 10, chairB.ID: 0},
	)

	assert.Equal(t, 1, ledger.Len())
	assert.Equal(t, 10, ledger.Quantity(chairA.ID))
}

func TestQuantities_ReturnsCopy(t *testing.T) {
	_, chairA, _, _ := testCatalog()
	ledger := NewSelectionLedger([]catalog.Item{chairA})
	ledger.SetQuantity(chairA.ID, 10)

	snapshot := ledger.Quantities()
	snapshot[chairA.ID] = 999

	assert.Equal(t, 10, ledger.Quantity(chairA.ID))
}
