package store

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "pharma_test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return s
}

func seedOrders(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (telegram_id, first_name, role) VALUES (1001, 'Abebe', 'customer')`); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	med := Medicine{Name: "Paracetamol 500mg", Category: "Analgesic",
		ManufacturingDate: "2024-01-15", ExpiringDate: "2026-01-15",
		DosageForm: "Tablet", Price: 5.50, Stock: 100}
	if err := s.UpsertMedicine(ctx, med); err != nil {
		t.Fatalf("seed medicine: %v", err)
	}
	for i := 0; i < 3; i++ {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO orders (user_id, total_amount) VALUES (1, 11.0)`)
		if err != nil {
			t.Fatalf("seed order: %v", err)
		}
		orderID, _ := res.LastInsertId()
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO order_items (order_id, medicine_id, quantity, unit_price) VALUES (?, 1, 2, 5.50)`,
			orderID); err != nil {
			t.Fatalf("seed order item: %v", err)
		}
	}
}

func TestClearOrderHistory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedOrders(t, s)

	orders, items, err := s.OrderCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if orders != 3 || items != 3 {
		t.Fatalf("expected 3 orders and 3 items, got %d/%d", orders, items)
	}

	delOrders, delItems, err := s.ClearOrderHistory(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if delOrders != 3 || delItems != 3 {
		t.Errorf("expected 3/3 deleted, got %d/%d", delOrders, delItems)
	}

	orders, items, err = s.OrderCounts(ctx)
	if err != nil {
		t.Fatalf("counts after clear: %v", err)
	}
	if orders != 0 || items != 0 {
		t.Errorf("expected empty order history, got %d/%d", orders, items)
	}

	// users and medicines stay intact
	meds, err := s.ActiveMedicines(ctx)
	if err != nil {
		t.Fatalf("medicines: %v", err)
	}
	if len(meds) != 1 {
		t.Errorf("expected 1 medicine to survive, got %d", len(meds))
	}
	u, err := s.UserByTelegramID(ctx, 1001)
	if err != nil || u == nil {
		t.Errorf("expected user to survive, got %v / %v", u, err)
	}
}

func TestMedicines(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seed := []Medicine{
		{Name: "Vitamin C 1000mg", Category: "Supplement", ManufacturingDate: "2024-04-01",
			ExpiringDate: "2026-04-01", DosageForm: "Tablet", Price: 15.30, Stock: 200},
		{Name: "Amoxicillin 250mg", Category: "Antibiotic", ManufacturingDate: "2024-02-10",
			ExpiringDate: "2027-02-10", DosageForm: "Capsule", Price: 8.75, Stock: 75},
		{Name: "Paracetamol 500mg", Category: "Analgesic", ManufacturingDate: "2024-01-15",
			ExpiringDate: "2026-01-15", DosageForm: "Tablet", Price: 5.50, Stock: 100},
	}
	for _, m := range seed {
		if err := s.UpsertMedicine(ctx, m); err != nil {
			t.Fatalf("upsert %s: %v", m.Name, err)
		}
	}

	t.Run("OrderedByCategory", func(t *testing.T) {
		meds, err := s.ActiveMedicines(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(meds) != 3 {
			t.Fatalf("expected 3 medicines, got %d", len(meds))
		}
		want := []string{"Paracetamol 500mg", "Amoxicillin 250mg", "Vitamin C 1000mg"}
		for i, name := range want {
			if meds[i].Name != name {
				t.Errorf("position %d: expected %s, got %s", i, name, meds[i].Name)
			}
		}
	})

	t.Run("UpsertUpdatesByName", func(t *testing.T) {
		m := seed[2]
		m.Price = 6.00
		m.Stock = 40
		if err := s.UpsertMedicine(ctx, m); err != nil {
			t.Fatalf("re-upsert: %v", err)
		}
		meds, err := s.ActiveMedicines(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(meds) != 3 {
			t.Fatalf("upsert created a duplicate, got %d medicines", len(meds))
		}
		if meds[0].Price != 6.00 || meds[0].Stock != 40 {
			t.Errorf("expected updated price/stock, got %v/%v", meds[0].Price, meds[0].Stock)
		}
	})
}

func TestContactSettings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.HasContactSettings(ctx)
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if !ok {
		t.Fatal("expected contact_settings table after Init")
	}

	if err := s.SetContactSetting(ctx, "phone", "+251-11-123-4567"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetContactSetting(ctx, "email", "info@bluepharma.com"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.SetContactSetting(ctx, "phone", "+251-11-765-4321"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	settings, err := s.ContactSettings(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(settings))
	}
	if settings[0].Key != "email" || settings[1].Key != "phone" {
		t.Errorf("expected key order email, phone; got %v", settings)
	}
	if settings[1].Value != "+251-11-765-4321" {
		t.Errorf("expected overwritten phone, got %s", settings[1].Value)
	}
}

func TestUsers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO users (telegram_id, first_name, role) VALUES (42, 'Sara', 'customer')`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	t.Run("Missing", func(t *testing.T) {
		u, err := s.UserByTelegramID(ctx, 999)
		if err != nil {
			t.Fatalf("lookup: %v", err)
		}
		if u != nil {
			t.Errorf("expected nil for unknown user, got %+v", u)
		}
	})

	t.Run("Promote", func(t *testing.T) {
		if err := s.SetUserRole(ctx, 42, RoleAdmin); err != nil {
			t.Fatalf("promote: %v", err)
		}
		u, err := s.UserByTelegramID(ctx, 42)
		if err != nil || u == nil {
			t.Fatalf("lookup: %v / %v", u, err)
		}
		if !u.IsAdmin() || !u.IsStaff() {
			t.Errorf("expected admin+staff, got role %s", u.Role)
		}
	})

	t.Run("PromoteUnknown", func(t *testing.T) {
		if err := s.SetUserRole(ctx, 999, RoleAdmin); err == nil {
			t.Error("expected error promoting unknown user")
		}
	})
}

func TestSchemaIntrospection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tables, err := s.Tables(ctx)
	if err != nil {
		t.Fatalf("tables: %v", err)
	}
	want := map[string]bool{
		"users": false, "medicines": false, "orders": false,
		"order_items": false, "contact_settings": false,
	}
	for _, name := range tables {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("table %s missing from introspection", name)
		}
	}

	cols, err := s.TableColumns(ctx, "medicines")
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	byName := map[string]Column{}
	for _, c := range cols {
		byName[c.Name] = c
	}
	if c, ok := byName["name"]; !ok || !c.NotNull {
		t.Errorf("expected NOT NULL name column, got %+v", c)
	}
	if c, ok := byName["id"]; !ok || !c.PrimaryKey {
		t.Errorf("expected id primary key, got %+v", c)
	}
}
