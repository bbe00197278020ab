package profileRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/TBOO-AI/agent/internal/domain"
	ports "github.com/TBOO-AI/agent/internal/ports/repository"

	"github.com/TBOO-AI/agent/internal/ports/persistence"
)

const tableName = "saju_profiles"

// allColumns все колонки профиля в порядке схемы
const allColumns = `user_id, handle, birth_date, birth_time, birth_place, gender,
	year_stem, year_branch, month_stem, month_branch, day_stem, day_branch, time_stem, time_branch,
	element_fire, element_earth, element_metal, element_water, element_wood,
	ten_sin_year, ten_sin_month, ten_sin_day, ten_sin_time,
	dae_won, is_saju_active, created_at, updated_at`

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий саджу-профилей
func New(db persistence.Persistence, log *slog.Logger) ports.IProfileRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// GetByHandle возвращает профиль по хэндлу платформы
func (r *Repository) GetByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	var profile domain.Profile
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE handle = $1`, allColumns, tableName)
	err := r.db.Get(ctx, &profile, query, handle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Debug("profile not found", "handle", handle)
			return nil, &domain.NotFoundError{Entity: "profile", Err: err}
		}
		r.Log.Error("failed to get profile by handle",
			"error", err,
			"handle", handle)
		return nil, &domain.PersistenceError{Op: "get profile", Err: err}
	}
	return &profile, nil
}

// Create создаёт пустой профиль при первом контакте
func (r *Repository) Create(ctx context.Context, profile *domain.Profile) error {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, handle, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`, tableName)
	err := r.db.Exec(ctx, query, profile.UserID, profile.Handle, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		r.Log.Error("failed to create profile",
			"error", err,
			"handle", profile.Handle,
			"user_id", profile.UserID)
		return &domain.PersistenceError{Op: "create profile", Err: err}
	}
	r.Log.Debug("profile created",
		"user_id", profile.UserID,
		"handle", profile.Handle)
	return nil
}

// MergeSlots записывает слоты анкеты одним upsert по user_id.
// Слияние непустых значений делает доменный слой; сюда приходит уже
// слитый профиль, поэтому last-writer-wins на уровне строки.
func (r *Repository) MergeSlots(ctx context.Context, profile *domain.Profile) error {
	profile.UpdatedAt = time.Now()
	query := fmt.Sprintf(`INSERT INTO %s (user_id, handle, birth_date, birth_time, birth_place, gender, created_at, updated_at)
		VALUES (:user_id, :handle, :birth_date, :birth_time, :birth_place, :gender, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			birth_date = EXCLUDED.birth_date,
			birth_time = EXCLUDED.birth_time,
			birth_place = EXCLUDED.birth_place,
			gender = EXCLUDED.gender,
			updated_at = EXCLUDED.updated_at`, tableName)
	err := r.db.NamedExec(ctx, query, profile)
	if err != nil {
		r.Log.Error("failed to merge profile slots",
			"error", err,
			"user_id", profile.UserID)
		return &domain.PersistenceError{Op: "merge slots", Err: err}
	}
	r.Log.Debug("profile slots merged",
		"user_id", profile.UserID,
		"missing_slots", len(profile.MissingSlots()))
	return nil
}

// UpdateCalendar записывает все производные календарные поля и флаг
// is_saju_active одним UPDATE - частично обновлённый набор не наблюдаем
func (r *Repository) UpdateCalendar(ctx context.Context, profile *domain.Profile) error {
	profile.UpdatedAt = time.Now()
	query := fmt.Sprintf(`UPDATE %s SET
			year_stem = :year_stem, year_branch = :year_branch,
			month_stem = :month_stem, month_branch = :month_branch,
			day_stem = :day_stem, day_branch = :day_branch,
			time_stem = :time_stem, time_branch = :time_branch,
			element_fire = :element_fire, element_earth = :element_earth,
			element_metal = :element_metal, element_water = :element_water,
			element_wood = :element_wood,
			ten_sin_year = :ten_sin_year, ten_sin_month = :ten_sin_month,
			ten_sin_day = :ten_sin_day, ten_sin_time = :ten_sin_time,
			dae_won = :dae_won, is_saju_active = :is_saju_active,
			updated_at = :updated_at
		WHERE user_id = :user_id`, tableName)
	rowsAffected, err := r.db.NamedExecWithResult(ctx, query, profile)
	if err != nil {
		r.Log.Error("failed to update profile calendar",
			"error", err,
			"user_id", profile.UserID)
		return &domain.PersistenceError{Op: "update calendar", Err: err}
	}
	if rowsAffected == 0 {
		r.Log.Warn("profile not found for calendar update", "user_id", profile.UserID)
		return &domain.NotFoundError{Entity: "profile", Err: sql.ErrNoRows}
	}
	r.Log.Debug("profile calendar updated",
		"user_id", profile.UserID,
		"dae_won", profile.MajorCycle)
	return nil
}
