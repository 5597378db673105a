package reconciliation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/k1rasov/GMP-BookingService/internal/domain"
	"github.com/k1rasov/GMP-BookingService/pkg/dbmetrics"
	"github.com/k1rasov/GMP-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var ticketColumns = []string{
	"id",
	"customer_id",
	"slot_id",
	"workshop_id",
	"order_id",
	"payment_id",
	"amount",
	"reason",
	"refund_status",
	"created_at",
	"updated_at",
}

// Repository репозиторий тикетов расхождений (оплачено, но слот не закреплен)
// Запись тикета НЕ участвует в транзакции бронирования: она должна пережить
// откат коммита, ради которого и создается
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тикетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает тикет расхождения
func (r *Repository) Create(ctx context.Context, t *domain.ReservationLossTicket) (*domain.ReservationLossTicket, error) {
	// Тикет пишется вне транзакции usecase, поэтому executor берется напрямую
	query, args, err := psqlbuilder.Insert("reconciliation_tickets").
		Columns(
			"id",
			"customer_id",
			"slot_id",
			"workshop_id",
			"order_id",
			"payment_id",
			"amount",
			"reason",
			"refund_status",
		).
		Values(
			t.ID,
			t.CustomerID,
			t.SlotID,
			t.WorkshopID,
			t.OrderID,
			t.PaymentID,
			t.Amount,
			t.Reason,
			t.RefundStatus,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// UpdateRefundStatus обновляет состояние возврата по тикету
func (r *Repository) UpdateRefundStatus(ctx context.Context, id string, status domain.RefundStatus) error {
	query, args, err := psqlbuilder.Update("reconciliation_tickets").
		Set("refund_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRefundStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRefundStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRefundStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTicketNotFound
	}

	return nil
}

// ListUnresolved получает тикеты, по которым возврат еще не прошел
// Используется обработкой поддержки для ручного разбора
func (r *Repository) ListUnresolved(ctx context.Context) ([]*domain.ReservationLossTicket, error) {
	query, args, err := psqlbuilder.Select(ticketColumns...).
		From("reconciliation_tickets").
		Where(squirrel.NotEq{"refund_status": domain.RefundDone}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUnresolved - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUnresolved - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tickets := make([]*domain.ReservationLossTicket, 0)

	for rows.Next() {
		var t domain.ReservationLossTicket
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&t.ID,
			&t.CustomerID,
			&t.SlotID,
			&t.WorkshopID,
			&t.OrderID,
			&t.PaymentID,
			&t.Amount,
			&t.Reason,
			&t.RefundStatus,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListUnresolved - scan row: %v", ErrScanRow, err)
		}

		t.CreatedAt = createdAt.Time
		t.UpdatedAt = updatedAt.Time

		tickets = append(tickets, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUnresolved - rows error: %v", ErrScanRow, err)
	}

	return tickets, nil
}
