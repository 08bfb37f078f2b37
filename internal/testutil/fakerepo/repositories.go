package fakerepo

import (
	"context"

	"gym_crm_backend/internal/models"
	"gym_crm_backend/internal/repositories"
)

type clientRepo struct{ t *table[models.Client] }

func (r *clientRepo) CreateClient(_ context.Context, _ repositories.SQLExecutor, client *models.Client) (int64, error) {
	stamp(&client.CreatedAt, &client.UpdatedAt)
	id, _ := r.t.insert(func(id int64) models.Client {
		client.ID = id
		return *client
	}, nil)
	return id, nil
}

func (r *clientRepo) GetClientByID(_ context.Context, _ repositories.SQLExecutor, id int64) (*models.Client, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &row, nil
}

func (r *clientRepo) GetClients(context.Context, repositories.SQLExecutor) ([]models.Client, error) {
	return r.t.list(), nil
}

func (r *clientRepo) UpdateClient(_ context.Context, _ repositories.SQLExecutor, client *models.Client) error {
	stamp(nil, &client.UpdatedAt)
	return r.t.replace(client.ID, *client, nil)
}

func (r *clientRepo) DeleteClient(_ context.Context, _ repositories.SQLExecutor, id int64) error {
	return r.t.remove(id)
}

type trainerRepo struct{ t *table[models.Trainer] }

func (r *trainerRepo) CreateTrainer(_ context.Context, _ repositories.SQLExecutor, trainer *models.Trainer) (int64, error) {
	stamp(&trainer.CreatedAt, &trainer.UpdatedAt)
	id, _ := r.t.insert(func(id int64) models.Trainer {
		trainer.ID = id
		return *trainer
	}, nil)
	return id, nil
}

func (r *trainerRepo) GetTrainerByID(_ context.Context, _ repositories.SQLExecutor, id int64) (*models.Trainer, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &row, nil
}

func (r *trainerRepo) GetTrainers(context.Context, repositories.SQLExecutor) ([]models.Trainer, error) {
	return r.t.list(), nil
}

func (r *trainerRepo) UpdateTrainer(_ context.Context, _ repositories.SQLExecutor, trainer *models.Trainer) error {
	stamp(nil, &trainer.UpdatedAt)
	return r.t.replace(trainer.ID, *trainer, nil)
}

func (r *trainerRepo) DeleteTrainer(_ context.Context, _ repositories.SQLExecutor, id int64) error {
	return r.t.remove(id)
}

type groupRepo struct{ t *table[models.Group] }

func (r *groupRepo) CreateGroup(_ context.Context, _ repositories.SQLExecutor, group *models.Group) (int64, error) {
	stamp(&group.CreatedAt, &group.UpdatedAt)
	id, _ := r.t.insert(func(id int64) models.Group {
		group.ID = id
		return *group
	}, nil)
	return id, nil
}

func (r *groupRepo) GetGroupByID(_ context.Context, _ repositories.SQLExecutor, id int64) (*models.Group, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &row, nil
}

func (r *groupRepo) GetGroups(context.Context, repositories.SQLExecutor) ([]models.Group, error) {
	return r.t.list(), nil
}

func (r *groupRepo) UpdateGroup(_ context.Context, _ repositories.SQLExecutor, group *models.Group) error {
	stamp(nil, &group.UpdatedAt)
	return r.t.replace(group.ID, *group, nil)
}

func (r *groupRepo) DeleteGroup(_ context.Context, _ repositories.SQLExecutor, id int64) error {
	return r.t.remove(id)
}

type periodRepo struct{ t *table[models.Period] }

func (r *periodRepo) CreatePeriod(_ context.Context, _ repositories.SQLExecutor, period *models.Period) (int64, error) {
	stamp(&period.CreatedAt, &period.UpdatedAt)
	id, ok := r.t.insert(func(id int64) models.Period {
		period.ID = id
		return *period
	}, func(other models.Period) bool { return other.Value == period.Value })
	if !ok {
		return 0, duplicate()
	}
	return id, nil
}

func (r *periodRepo) GetPeriodByID(_ context.Context, _ repositories.SQLExecutor, id int64) (*models.Period, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &row, nil
}

func (r *periodRepo) GetPeriods(context.Context, repositories.SQLExecutor) ([]models.Period, error) {
	return r.t.list(), nil
}

func (r *periodRepo) UpdatePeriod(_ context.Context, _ repositories.SQLExecutor, period *models.Period) error {
	stamp(nil, &period.UpdatedAt)
	return r.t.replace(period.ID, *period, func(_ int64, other models.Period) bool {
		return other.Value == period.Value
	})
}

func (r *periodRepo) DeletePeriod(_ context.Context, _ repositories.SQLExecutor, id int64) error {
	return r.t.remove(id)
}

// paymentRow keeps banks as the driver value PostgreSQL would hold.
type paymentRow struct {
	payment models.Payment
	banks   interface{}
}

func (p paymentRow) model() *models.Payment {
	out := p.payment
	out.Banks = decode(p.banks)
	return &out
}

type paymentRepo struct{ t *table[paymentRow] }

func (r *paymentRepo) CreatePayment(_ context.Context, _ repositories.SQLExecutor, payment *models.Payment) (int64, error) {
	stamp(&payment.CreatedAt, &payment.UpdatedAt)
	id, ok := r.t.insert(func(id int64) paymentRow {
		payment.ID = id
		row := paymentRow{payment: *payment, banks: encode(payment.Banks)}
		row.payment.Banks = nil
		return row
	}, func(other paymentRow) bool { return other.payment.Value == payment.Value })
	if !ok {
		return 0, duplicate()
	}
	return id, nil
}

func (r *paymentRepo) GetPaymentByID(_ context.Context, _ repositories.SQLExecutor, id int64) (*models.Payment, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return row.model(), nil
}

func (r *paymentRepo) GetPayments(context.Context, repositories.SQLExecutor) ([]models.Payment, error) {
	rows := r.t.list()
	out := make([]models.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.model())
	}
	return out, nil
}

func (r *paymentRepo) UpdatePayment(_ context.Context, _ repositories.SQLExecutor, payment *models.Payment) error {
	stamp(nil, &payment.UpdatedAt)
	row := paymentRow{payment: *payment, banks: encode(payment.Banks)}
	row.payment.Banks = nil
	return r.t.replace(payment.ID, row, func(_ int64, other paymentRow) bool {
		return other.payment.Value == payment.Value
	})
}

func (r *paymentRepo) DeletePayment(_ context.Context, _ repositories.SQLExecutor, id int64) error {
	return r.t.remove(id)
}

// freezeRow keeps reasons as the driver value PostgreSQL would hold.
type freezeRow struct {
	settings models.FreezeSettings
	reasons  interface{}
}

func (f freezeRow) model() *models.FreezeSettings {
	out := f.settings
	out.Reasons = decode(f.reasons)
	return &out
}

type freezeRepo struct{ t *table[freezeRow] }

func (r *freezeRepo) CreateFreezeSettings(_ context.Context, _ repositories.SQLExecutor, settings *models.FreezeSettings) (int64, error) {
	stamp(&settings.CreatedAt, &settings.UpdatedAt)
	id, _ := r.t.insert(func(id int64) freezeRow {
		settings.ID = id
		row := freezeRow{settings: *settings, reasons: encode(settings.Reasons)}
		row.settings.Reasons = nil
		return row
	}, nil)
	return id, nil
}

func (r *freezeRepo) GetFreezeSettingsByID(_ context.Context, _ repositories.SQLExecutor, id int64) (*models.FreezeSettings, error) {
	row, ok := r.t.get(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return row.model(), nil
}

func (r *freezeRepo) GetFreezeSettings(context.Context, repositories.SQLExecutor) ([]models.FreezeSettings, error) {
	rows := r.t.list()
	out := make([]models.FreezeSettings, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.model())
	}
	return out, nil
}

func (r *freezeRepo) UpdateFreezeSettings(_ context.Context, _ repositories.SQLExecutor, settings *models.FreezeSettings) error {
	stamp(nil, &settings.UpdatedAt)
	row := freezeRow{settings: *settings, reasons: encode(settings.Reasons)}
	row.settings.Reasons = nil
	return r.t.replace(settings.ID, row, nil)
}

func (r *freezeRepo) DeleteFreezeSettings(_ context.Context, _ repositories.SQLExecutor, id int64) error {
	return r.t.remove(id)
}
