package shop

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goalquest/internal/coach"
	"goalquest/internal/engine"
	"goalquest/internal/storage"
)

func newTestShop(t *testing.T) (*Service, *engine.Service) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c := coach.NewWithFallback(nil, coach.NewFallback(rand.New(rand.NewSource(1))), zap.NewNop())
	eng := engine.NewService(db, c, time.UTC, zap.NewNop())
	require.NoError(t, eng.SeedAchievements(ctx))
	return NewService(eng, zap.NewNop()), eng
}

func TestCatalogLookup(t *testing.T) {
	it := ItemByID("iron_sword")
	require.NotNil(t, it)
	assert.Equal(t, "weapon", it.Slot)

	assert.Nil(t, ItemByID("excalibur"))

	eq := ItemsByCategory("equipment")
	for _, it := range eq {
		assert.NotEmpty(t, it.Slot, "equipment item %s needs a slot", it.ID)
	}
}

func TestPurchaseDebitsThenGrants(t *testing.T) {
	shop, eng := newTestShop(t)
	ctx := context.Background()

	it, err := shop.Purchase(ctx, "potion_focus")
	require.NoError(t, err)
	assert.Equal(t, "potion_focus", it.ID)

	p, err := eng.Player(ctx)
	require.NoError(t, err)
	assert.Equal(t, 950, p.CurrentGold, "price debited; the shop_purchase achievement pays XP, not gold")
	assert.Equal(t, 100, p.TotalXP)

	qty, err := eng.Inventory().Quantity(ctx, "potion_focus")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	a, err := eng.Achievements().Get(ctx, "shop_purchase")
	require.NoError(t, err)
	assert.NotNil(t, a.UnlockedAt)
}

func TestPurchaseUnknownItem(t *testing.T) {
	shop, _ := newTestShop(t)

	_, err := shop.Purchase(context.Background(), "excalibur")
	var unknownErr *UnknownItemError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestPurchaseLevelGate(t *testing.T) {
	shop, eng := newTestShop(t)
	ctx := context.Background()

	_, err := shop.Purchase(ctx, "steel_katana")
	var gateErr *LevelGateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, 8, gateErr.RequiredLevel)

	qty, qerr := eng.Inventory().Quantity(ctx, "steel_katana")
	require.NoError(t, qerr)
	assert.Zero(t, qty, "a gated purchase must not grant the item")
}

func TestPurchaseInsufficientGold(t *testing.T) {
	shop, eng := newTestShop(t)
	ctx := context.Background()

	// Reach the level gate but stay too poor for the katana.
	_, err := eng.AddXP(ctx, 50_000)
	require.NoError(t, err)
	ok, err := eng.SpendGold(ctx, 900)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = shop.Purchase(ctx, "steel_katana")
	var goldErr *InsufficientGoldError
	require.ErrorAs(t, err, &goldErr)

	qty, qerr := eng.Inventory().Quantity(ctx, "steel_katana")
	require.NoError(t, qerr)
	assert.Zero(t, qty, "a failed purchase must not grant the item")

	p, perr := eng.Player(ctx)
	require.NoError(t, perr)
	assert.Equal(t, 100, p.CurrentGold, "a failed purchase must not debit gold")
}

func TestPurchaseStackLimit(t *testing.T) {
	shop, eng := newTestShop(t)
	ctx := context.Background()

	require.NoError(t, eng.AddGold(ctx, 10_000))
	for i := 0; i < 10; i++ {
		_, err := shop.Purchase(ctx, "potion_focus")
		require.NoError(t, err)
	}

	_, err := shop.Purchase(ctx, "potion_focus")
	var stackErr *StackLimitError
	assert.ErrorAs(t, err, &stackErr)
}

func TestEquipRequiresOwnership(t *testing.T) {
	shop, _ := newTestShop(t)

	err := shop.Equip(context.Background(), "iron_sword", "weapon")
	var notOwned *NotOwnedError
	assert.ErrorAs(t, err, &notOwned)
}

func TestEquipRejectsWrongSlot(t *testing.T) {
	shop, _ := newTestShop(t)
	ctx := context.Background()

	err := shop.Equip(ctx, "iron_sword", "head")
	var mismatch *SlotMismatchError
	assert.ErrorAs(t, err, &mismatch)

	// Consumables have no slot at all.
	err = shop.Equip(ctx, "potion_focus", "weapon")
	assert.ErrorAs(t, err, &mismatch)
}

func TestEquipAndUnequip(t *testing.T) {
	shop, eng := newTestShop(t)
	ctx := context.Background()

	// Level 2 for the sword's gate.
	_, err := eng.AddXP(ctx, 500)
	require.NoError(t, err)

	_, err = shop.Purchase(ctx, "iron_sword")
	require.NoError(t, err)
	require.NoError(t, shop.Equip(ctx, "iron_sword", "weapon"))

	eq, err := eng.Inventory().GetEquipment(ctx)
	require.NoError(t, err)
	require.NotNil(t, eq.WeaponID)
	assert.Equal(t, "iron_sword", *eq.WeaponID)

	a, err := eng.Achievements().Get(ctx, "equipment_first")
	require.NoError(t, err)
	assert.NotNil(t, a.UnlockedAt)

	require.NoError(t, shop.Unequip(ctx, "weapon"))
	eq, err = eng.Inventory().GetEquipment(ctx)
	require.NoError(t, err)
	assert.Nil(t, eq.WeaponID)
}
