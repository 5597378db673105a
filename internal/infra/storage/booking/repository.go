package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/pkg/dbmetrics"
	"github.com/k1rasov/GMP-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"customer_id",
	"workshop_id",
	"slot_id",
	"booking_date",
	"start_time",
	"end_time",
	"service_type",
	"duration_minutes",
	"price",
	"gst",
	"amount",
	"status",
	"payment_id",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
// Вызывается только из create_booking usecase внутри транзакции вместе с
// TryReserve слота - резервирование и запись бронирования коммитятся атомарно
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"customer_id",
			"workshop_id",
			"slot_id",
			"booking_date",
			"start_time",
			"end_time",
			"service_type",
			"duration_minutes",
			"price",
			"gst",
			"amount",
			"status",
			"payment_id",
		).
		Values(
			b.CustomerID,
			b.WorkshopID,
			b.SlotID,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.ServiceType,
			b.Duration,
			b.Price,
			b.GST,
			b.Amount,
			b.Status,
			b.PaymentID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурентная
// отмена того же бронирования не прошла проверку статуса по устаревшим данным
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByCustomerID получает список бронирований пользователя
// Опционально фильтрует по статусу. Сортировка: сначала новые
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel переводит бронирование в статус cancelled с указанием причины
// Условие на статус входит в сам UPDATE: повторная отмена или гонка двух
// отмен затронет ноль строк и вернет ErrNotCancellable, а не спишет
// место со слота второй раз
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cancellable := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		cancellable[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": cancellable}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирования нет, либо оно уже не в отменяемом статусе
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return ErrNotCancellable
	}

	return nil
}

// scanBooking сканирует одну строку бронирования
func (r *Repository) scanBooking(row *sql.Row, op string) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.WorkshopID,
		&b.SlotID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.ServiceType,
		&b.Duration,
		&b.Price,
		&b.GST,
		&b.Amount,
		&b.Status,
		&b.PaymentID,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.CustomerID,
			&b.WorkshopID,
			&b.SlotID,
			&b.Date,
			&b.StartTime,
			&b.EndTime,
			&b.ServiceType,
			&b.Duration,
			&b.Price,
			&b.GST,
			&b.Amount,
			&b.Status,
			&b.PaymentID,
			&b.CancellationReason,
			&b.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
