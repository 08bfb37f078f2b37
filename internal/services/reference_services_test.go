package services_test

import (
	"context"
	"errors"
	"testing"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/services"
	"gym_crm_backend/internal/testutil/fakerepo"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestCreatePeriodEchoesFields(t *testing.T) {
	repos := fakerepo.New().Repositories()
	svc := services.NewPeriodService(repos.Periods, &fakerepo.Runner{})
	ctx := context.Background()

	period, err := svc.CreatePeriod(ctx, services.CreatePeriodRequest{
		Label: strPtr("3 months"), Value: strPtr("3m"), Months: intPtr(3), Price: floatPtr(4500), Trainings: intPtr(24),
	})
	if err != nil {
		t.Fatalf("CreatePeriod: %v", err)
	}
	if period.ID == 0 || period.Label != "3 months" || period.Value != "3m" || period.Months != 3 || period.Price != 4500 || period.Trainings != 24 {
		t.Fatalf("unexpected period %+v", period)
	}

	all, err := svc.GetPeriods(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].ID != period.ID {
		t.Fatalf("periods = %+v", all)
	}
}

func TestPeriodValueMustBeUnique(t *testing.T) {
	repos := fakerepo.New().Repositories()
	svc := services.NewPeriodService(repos.Periods, &fakerepo.Runner{})
	ctx := context.Background()

	req := services.CreatePeriodRequest{
		Label: strPtr("Month"), Value: strPtr("1m"), Months: intPtr(1), Price: floatPtr(1500), Trainings: intPtr(8),
	}
	if _, err := svc.CreatePeriod(ctx, req); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreatePeriod(ctx, req); !errors.Is(err, services.ErrPeriodValueExists) {
		t.Fatalf("duplicate create: err = %v", err)
	}

	req.Value = strPtr("2m")
	second, err := svc.CreatePeriod(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	var upd services.UpdatePeriodRequest
	decodeUpdate(t, `{"value":"1m"}`, &upd)
	if _, err := svc.UpdatePeriod(ctx, second.ID, upd); !errors.Is(err, services.ErrPeriodValueExists) {
		t.Fatalf("duplicate update: err = %v", err)
	}
}

func TestCreatePaymentDecodesBanks(t *testing.T) {
	store := fakerepo.New()
	svc := services.NewPaymentService(store.Repositories().Payments, &fakerepo.Runner{})
	ctx := context.Background()

	payment, err := svc.CreatePayment(ctx, services.CreatePaymentRequest{
		Label: strPtr("Card"), Value: strPtr("card"), Type: strPtr("card"),
		Banks: models.StringList{"Bank A", "Bank B"},
	})
	if err != nil {
		t.Fatalf("CreatePayment: %v", err)
	}
	if raw, ok := store.RawBanks(payment.ID).(string); !ok || raw != `["Bank A","Bank B"]` {
		t.Fatalf("stored banks = %#v, want JSON text", store.RawBanks(payment.ID))
	}

	all, err := svc.GetPayments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || len(all[0].Banks) != 2 || all[0].Banks[0] != "Bank A" || all[0].Banks[1] != "Bank B" {
		t.Fatalf("payments = %+v", all)
	}
}

func TestUpdatePaymentClearsBanks(t *testing.T) {
	store := fakerepo.New()
	svc := services.NewPaymentService(store.Repositories().Payments, &fakerepo.Runner{})
	ctx := context.Background()

	created, err := svc.CreatePayment(ctx, services.CreatePaymentRequest{
		Label: strPtr("Transfer"), Value: strPtr("transfer"), Banks: models.StringList{"Kaspi"},
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, body := range []string{`{"banks":[]}`, `{"banks":null}`} {
		var req services.UpdatePaymentRequest
		decodeUpdate(t, body, &req)
		updated, err := svc.UpdatePayment(ctx, created.ID, req)
		if err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if updated.Banks == nil || len(updated.Banks) != 0 {
			t.Fatalf("%s: banks = %#v, want empty list", body, updated.Banks)
		}
		if store.RawBanks(created.ID) != nil {
			t.Fatalf("%s: stored banks = %#v, want NULL", body, store.RawBanks(created.ID))
		}
		if updated.Label != "Transfer" {
			t.Fatalf("%s: label changed to %q", body, updated.Label)
		}
	}
}

func TestCorruptedBanksDecodeToEmpty(t *testing.T) {
	store := fakerepo.New()
	svc := services.NewPaymentService(store.Repositories().Payments, &fakerepo.Runner{})
	ctx := context.Background()

	created, err := svc.CreatePayment(ctx, services.CreatePaymentRequest{Label: strPtr("Cash"), Value: strPtr("cash")})
	if err != nil {
		t.Fatal(err)
	}
	store.SetRawBanks(created.ID, "not json")

	got, err := svc.GetPaymentByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPaymentByID: %v", err)
	}
	if got.Banks == nil || len(got.Banks) != 0 {
		t.Fatalf("banks = %#v, want empty list", got.Banks)
	}
}

func TestFreezeSettingsDefaultsAndPartialUpdate(t *testing.T) {
	store := fakerepo.New()
	svc := services.NewFreezeSettingsService(store.Repositories().FreezeSettings, &fakerepo.Runner{})
	ctx := context.Background()

	created, err := svc.CreateFreezeSettings(ctx, services.CreateFreezeSettingsRequest{})
	if err != nil {
		t.Fatalf("CreateFreezeSettings: %v", err)
	}
	if created.MaxDays != 30 || created.RequireConfirm || len(created.Reasons) != 0 {
		t.Fatalf("defaults not applied: %+v", created)
	}

	var req services.UpdateFreezeSettingsRequest
	decodeUpdate(t, `{"reasons":["Illness","Travel"]}`, &req)
	updated, err := svc.UpdateFreezeSettings(ctx, created.ID, req)
	if err != nil {
		t.Fatal(err)
	}
	if updated.MaxDays != 30 || len(updated.Reasons) != 2 || updated.Reasons[1] != "Travel" {
		t.Fatalf("unexpected settings %+v", updated)
	}

	var bad services.UpdateFreezeSettingsRequest
	decodeUpdate(t, `{"maxDays":null}`, &bad)
	if _, err := svc.UpdateFreezeSettings(ctx, created.ID, bad); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("null maxDays: err = %v, want ErrValidation", err)
	}

	store.SetRawReasons(created.ID, []byte("{broken"))
	got, err := svc.GetFreezeSettingsByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Reasons == nil || len(got.Reasons) != 0 {
		t.Fatalf("reasons = %#v, want empty list", got.Reasons)
	}
}

func TestDeleteMissingIsNotFoundForEveryResource(t *testing.T) {
	repos := fakerepo.New().Repositories()
	runner := &fakerepo.Runner{}
	ctx := context.Background()

	checks := map[string]struct {
		err  error
		want error
	}{
		"trainer": {services.NewTrainerService(repos.Trainers, runner).DeleteTrainer(ctx, 1), services.ErrTrainerNotFound},
		"group":   {services.NewGroupService(repos.Groups, runner).DeleteGroup(ctx, 1), services.ErrGroupNotFound},
		"period":  {services.NewPeriodService(repos.Periods, runner).DeletePeriod(ctx, 1), services.ErrPeriodNotFound},
		"payment": {services.NewPaymentService(repos.Payments, runner).DeletePayment(ctx, 1), services.ErrPaymentNotFound},
		"freeze":  {services.NewFreezeSettingsService(repos.FreezeSettings, runner).DeleteFreezeSettings(ctx, 1), services.ErrFreezeSettingsNotFound},
		"client":  {services.NewClientService(repos.Clients, runner).DeleteClient(ctx, 1), services.ErrClientNotFound},
	}
	for name, c := range checks {
		if !errors.Is(c.err, c.want) {
			t.Errorf("%s: err = %v, want %v", name, c.err, c.want)
		}
	}
}
