package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/pkg/dbmetrics"
	"github.com/k1rasov/GMP-BookingService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"workshop_id",
	"slot_date",
	"start_time",
	"end_time",
	"service_type",
	"price",
	"max_bookings",
	"current_bookings",
	"created_at",
	"updated_at",
}

const returningSlot = "RETURNING id, workshop_id, slot_date, start_time, end_time, service_type, price, max_bookings, current_bookings, created_at, updated_at"

// Repository репозиторий для работы со слотами
// Единственный владелец счетчика current_bookings: все изменения проходят
// через TryReserve/Release как одиночные условные UPDATE
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// ListByMonth получает все слоты мастерской за месяц по типу услуги
// Сортировка по дате и времени начала (ASC)
func (r *Repository) ListByMonth(ctx context.Context, workshopID int64, year int, month time.Month, serviceType domain.ServiceType) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"workshop_id": workshopID}).
		Where(squirrel.Eq{"service_type": serviceType}).
		Where(squirrel.GtOrEq{"slot_date": monthStart}).
		Where(squirrel.LtOrEq{"slot_date": monthEnd}).
		OrderBy("slot_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListByDate получает все слоты мастерской на конкретную дату по типу услуги
// Сортировка по времени начала (ASC)
func (r *Repository) ListByDate(ctx context.Context, workshopID int64, date time.Time, serviceType domain.ServiceType) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"workshop_id": workshopID}).
		Where(squirrel.Eq{"service_type": serviceType}).
		Where(squirrel.Eq{"slot_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// TryReserve атомарно занимает одно место в слоте
// Проверка current_bookings < max_bookings и инкремент выполняются одним
// условным UPDATE на стороне БД - два конкурентных вызова не могут оба
// пройти проверку по устаревшим данным
//
// Возвращает ErrSlotFull, если мест не осталось, и ErrSlotNotFound,
// если слот не существует
func (r *Repository) TryReserve(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("current_bookings", squirrel.Expr("current_bookings + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_bookings < max_bookings")).
		Suffix(returningSlot).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TryReserve - build update query: %v", ErrBuildQuery, err)
	}

	reserved, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...), "TryReserve")
	if err == nil {
		return reserved, nil
	}
	if !errors.Is(err, ErrSlotNotFound) {
		return nil, err
	}

	// UPDATE не затронул строк: либо слот заполнен, либо его нет
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrSlotFull
}

// Release атомарно освобождает одно место в слоте
// Декремент ограничен снизу нулем (current_bookings > 0 в условии) - повторный
// вызов для уже освобожденного слота не уводит счетчик в минус
//
// AlreadyReleased = true означает, что счетчик уже был на нуле и ничего
// не изменилось - вызывающий логирует это, но не считает ошибкой
func (r *Repository) Release(ctx context.Context, id int64) (slot *domain.Slot, alreadyReleased bool, err error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("current_bookings", squirrel.Expr("current_bookings - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_bookings > 0")).
		Suffix(returningSlot).
		ToSql()

	if err != nil {
		return nil, false, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	released, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...), "Release")
	if err == nil {
		return released, false, nil
	}
	if !errors.Is(err, ErrSlotNotFound) {
		return nil, false, err
	}

	// UPDATE не затронул строк: либо счетчик уже на нуле, либо слота нет
	existing, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, false, getErr
	}
	return existing, true, nil
}

// scanSlot сканирует одну строку слота
func (r *Repository) scanSlot(row *sql.Row, op string) (*domain.Slot, error) {
	var slot domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.WorkshopID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.ServiceType,
		&slot.Price,
		&slot.MaxBookings,
		&slot.CurrentBookings,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, op, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var slot domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.WorkshopID,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.ServiceType,
			&slot.Price,
			&slot.MaxBookings,
			&slot.CurrentBookings,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
