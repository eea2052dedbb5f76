package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// AddItem increments the quantity for an item, inserting the row on first
// purchase.
func (r *InventoryRepo) AddItem(ctx context.Context, itemID string, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO inventory (item_id, quantity) VALUES (?, ?)
		ON CONFLICT(item_id) DO UPDATE SET quantity = quantity + excluded.quantity
	`, itemID, quantity)
	if err != nil {
		return fmt.Errorf("inventory add: %w", err)
	}
	return nil
}

func (r *InventoryRepo) Quantity(ctx context.Context, itemID string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT quantity FROM inventory WHERE item_id = ?`, itemID)
	var n int
	if err := row.Scan(&n); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("inventory quantity: %w", err)
	}
	return n, nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]InventoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_id, quantity, purchased_at FROM inventory ORDER BY purchased_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("inventory list: %w", err)
	}
	defer rows.Close()

	var out []InventoryEntry
	for rows.Next() {
		var e InventoryEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.Quantity, &e.PurchasedAt); err != nil {
			return nil, fmt.Errorf("inventory scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("inventory rows: %w", err)
	}
	return out, nil
}

// equipSlotColumns whitelists slot names so a slot can never reach query
// text unchecked.
var equipSlotColumns = map[string]string{
	"weapon": "weapon_id",
	"armor":  "armor_id",
	"ring":   "ring_id",
	"amulet": "amulet_id",
	"head":   "head_id",
}

func (r *InventoryRepo) GetEquipment(ctx context.Context) (*Equipment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, weapon_id, armor_id, ring_id, amulet_id, head_id FROM equipment WHERE id = 1
	`)

	var e Equipment
	var weapon, armor, ring, amulet, head sql.NullString
	if err := row.Scan(&e.ID, &weapon, &armor, &ring, &amulet, &head); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("equipment get: %w", err)
	}

	e.WeaponID = nullStr(weapon)
	e.ArmorID = nullStr(armor)
	e.RingID = nullStr(ring)
	e.AmuletID = nullStr(amulet)
	e.HeadID = nullStr(head)
	return &e, nil
}

// SetSlot assigns (or clears, with nil) one loadout slot.
func (r *InventoryRepo) SetSlot(ctx context.Context, slot string, itemID *string) error {
	col, ok := equipSlotColumns[slot]
	if !ok {
		return fmt.Errorf("unknown equipment slot: %q", slot)
	}
	_, err := r.db.ExecContext(ctx, `UPDATE equipment SET `+col+` = ? WHERE id = 1`, itemID)
	if err != nil {
		return fmt.Errorf("equipment set slot: %w", err)
	}
	return nil
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
