//go:build integration

package repositories_test

import (
	"context"
	"errors"
	"testing"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
	"gym_crm_backend/internal/testutil/testdb"
)

func TestPostgresRepositories(t *testing.T) {
	ctx := context.Background()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	repos := repositories.NewRepositories()

	t.Run("client partial columns and quoted group", func(t *testing.T) {
		group := "Morning"
		c := &models.Client{Name: "Anna", Surname: "Ivanova", Phone: "+7700", Group: &group, Status: models.DefaultClientStatus}
		id, err := repos.Clients.CreateClient(ctx, h.DB, c)
		if err != nil {
			t.Fatal(err)
		}
		got, err := repos.Clients.GetClientByID(ctx, h.DB, id)
		if err != nil {
			t.Fatal(err)
		}
		if got.Group == nil || *got.Group != "Morning" || got.Address != nil || got.Status != "Active" {
			t.Fatalf("client = %+v", got)
		}

		got.Status = "Frozen"
		if err := repos.Clients.UpdateClient(ctx, h.DB, got); err != nil {
			t.Fatal(err)
		}
		again, _ := repos.Clients.GetClientByID(ctx, h.DB, id)
		if again.Status != "Frozen" || again.Name != "Anna" {
			t.Fatalf("after update = %+v", again)
		}
	})

	t.Run("payment banks encoded and corrupted rows tolerated", func(t *testing.T) {
		p := &models.Payment{Label: "Card", Value: "card", Banks: models.StringList{"Bank A", "Bank B"}}
		id, err := repos.Payments.CreatePayment(ctx, h.DB, p)
		if err != nil {
			t.Fatal(err)
		}

		var raw string
		if err := h.DB.QueryRowContext(ctx, `SELECT banks FROM payments WHERE id = $1`, id).Scan(&raw); err != nil {
			t.Fatal(err)
		}
		if raw != `["Bank A","Bank B"]` {
			t.Fatalf("stored banks = %q", raw)
		}

		if _, err := h.DB.ExecContext(ctx, `UPDATE payments SET banks = 'nonsense' WHERE id = $1`, id); err != nil {
			t.Fatal(err)
		}
		got, err := repos.Payments.GetPaymentByID(ctx, h.DB, id)
		if err != nil {
			t.Fatalf("corrupted row must still read: %v", err)
		}
		if got.Banks == nil || len(got.Banks) != 0 {
			t.Fatalf("banks = %#v, want []", got.Banks)
		}

		if _, err := repos.Payments.CreatePayment(ctx, h.DB, &models.Payment{Label: "Card 2", Value: "card"}); !errors.Is(err, repositories.ErrDuplicateKey) {
			t.Fatalf("duplicate value: err = %v", err)
		}
	})

	t.Run("freeze settings empty reasons stored as NULL", func(t *testing.T) {
		id, err := repos.FreezeSettings.CreateFreezeSettings(ctx, h.DB, &models.FreezeSettings{MaxDays: 30})
		if err != nil {
			t.Fatal(err)
		}
		var isNull bool
		if err := h.DB.QueryRowContext(ctx, `SELECT reasons IS NULL FROM freeze_settings WHERE id = $1`, id).Scan(&isNull); err != nil {
			t.Fatal(err)
		}
		if !isNull {
			t.Fatal("empty reasons should be stored as NULL")
		}
	})

	t.Run("period duplicate and delete", func(t *testing.T) {
		p := &models.Period{Label: "3 months", Value: "3m", Months: 3, Price: 4500, Trainings: 24}
		id, err := repos.Periods.CreatePeriod(ctx, h.DB, p)
		if err != nil {
			t.Fatal(err)
		}
		dup := *p
		if _, err := repos.Periods.CreatePeriod(ctx, h.DB, &dup); !errors.Is(err, repositories.ErrDuplicateKey) {
			t.Fatalf("duplicate: err = %v", err)
		}
		if err := repos.Periods.DeletePeriod(ctx, h.DB, id); err != nil {
			t.Fatal(err)
		}
		if err := repos.Periods.DeletePeriod(ctx, h.DB, id); !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("second delete: err = %v", err)
		}
		if _, err := repos.Periods.GetPeriodByID(ctx, h.DB, id); !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("get deleted: err = %v", err)
		}
	})

	t.Run("missing rows", func(t *testing.T) {
		if err := repos.Trainers.UpdateTrainer(ctx, h.DB, &models.Trainer{ID: 9999, Name: "x"}); !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("update missing trainer: err = %v", err)
		}
		if err := repos.Groups.DeleteGroup(ctx, h.DB, 9999); !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("delete missing group: err = %v", err)
		}
	})
}
