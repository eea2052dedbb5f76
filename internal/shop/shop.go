package shop

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"goalquest/internal/engine"
)

// Typed purchase failures, so callers can render each case distinctly.
type UnknownItemError struct{ ItemID string }

func (e *UnknownItemError) Error() string { return fmt.Sprintf("unknown item %q", e.ItemID) }

type LevelGateError struct {
	ItemID        string
	RequiredLevel int
	Level         int
}

func (e *LevelGateError) Error() string {
	return fmt.Sprintf("%s requires level %d (you are level %d)", e.ItemID, e.RequiredLevel, e.Level)
}

type InsufficientGoldError struct {
	ItemID string
	Price  int
	Gold   int
}

func (e *InsufficientGoldError) Error() string {
	return fmt.Sprintf("%s costs %d gold (you have %d)", e.ItemID, e.Price, e.Gold)
}

type NotOwnedError struct{ ItemID string }

func (e *NotOwnedError) Error() string { return fmt.Sprintf("you do not own %q", e.ItemID) }

type SlotMismatchError struct {
	ItemID string
	Slot   string
}

func (e *SlotMismatchError) Error() string {
	return fmt.Sprintf("%s cannot go in the %s slot", e.ItemID, e.Slot)
}

type StackLimitError struct {
	ItemID   string
	MaxStack int
}

func (e *StackLimitError) Error() string {
	return fmt.Sprintf("%s is capped at %d", e.ItemID, e.MaxStack)
}

// Service runs purchases and equipment changes against the engine.
type Service struct {
	eng *engine.Service
	log *zap.Logger
}

func NewService(eng *engine.Service, log *zap.Logger) *Service {
	return &Service{eng: eng, log: log}
}

// Purchase buys one unit of the item. Gates run first; gold is spent before
// the item is granted, so a failed debit grants nothing.
func (s *Service) Purchase(ctx context.Context, itemID string) (*Item, error) {
	it := ItemByID(itemID)
	if it == nil {
		return nil, &UnknownItemError{ItemID: itemID}
	}

	p, err := s.eng.Player(ctx)
	if err != nil {
		return nil, err
	}
	if !MeetsLevelRequirement(p.Level, it) {
		return nil, &LevelGateError{ItemID: itemID, RequiredLevel: it.RequiredLevel, Level: p.Level}
	}
	if !CanAfford(p.CurrentGold, it) {
		return nil, &InsufficientGoldError{ItemID: itemID, Price: it.Price.Gold, Gold: p.CurrentGold}
	}

	if it.Stackable && it.MaxStack > 0 {
		have, err := s.eng.Inventory().Quantity(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if have >= it.MaxStack {
			return nil, &StackLimitError{ItemID: itemID, MaxStack: it.MaxStack}
		}
	}

	ok, err := s.eng.SpendGold(ctx, it.Price.Gold)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Balance moved between the read and the debit.
		return nil, &InsufficientGoldError{ItemID: itemID, Price: it.Price.Gold, Gold: p.CurrentGold}
	}

	if err := s.eng.Inventory().AddItem(ctx, itemID, 1); err != nil {
		return nil, fmt.Errorf("grant item: %w", err)
	}
	if _, err := s.eng.Unlock(ctx, "shop_purchase"); err != nil {
		return nil, err
	}

	s.log.Info("item purchased", zap.String("item", itemID), zap.Int("gold", it.Price.Gold))
	return it, nil
}

// Equip places an owned equipment item into its declared slot. The item
// must be in the inventory and must actually belong to the slot.
func (s *Service) Equip(ctx context.Context, itemID, slot string) error {
	it := ItemByID(itemID)
	if it == nil {
		return &UnknownItemError{ItemID: itemID}
	}
	if it.Category != "equipment" || it.Slot != slot {
		return &SlotMismatchError{ItemID: itemID, Slot: slot}
	}

	have, err := s.eng.Inventory().Quantity(ctx, itemID)
	if err != nil {
		return err
	}
	if have < 1 {
		return &NotOwnedError{ItemID: itemID}
	}

	if err := s.eng.Inventory().SetSlot(ctx, slot, &itemID); err != nil {
		return err
	}
	if _, err := s.eng.Unlock(ctx, "equipment_first"); err != nil {
		return err
	}

	s.log.Info("item equipped", zap.String("item", itemID), zap.String("slot", slot))
	return nil
}

// Unequip clears a slot. Clearing an already empty slot is a no-op.
func (s *Service) Unequip(ctx context.Context, slot string) error {
	return s.eng.Inventory().SetSlot(ctx, slot, nil)
}

// OwnedItem pairs a catalog entry with the held quantity for list views.
type OwnedItem struct {
	Item     Item
	Quantity int
}

func (s *Service) ListOwned(ctx context.Context) ([]OwnedItem, error) {
	entries, err := s.eng.Inventory().List(ctx)
	if err != nil {
		return nil, err
	}

	var out []OwnedItem
	for _, e := range entries {
		it := ItemByID(e.ItemID)
		if it == nil {
			// Catalog entries can be retired; skip orphaned rows.
			continue
		}
		out = append(out, OwnedItem{Item: *it, Quantity: e.Quantity})
	}
	return out, nil
}
