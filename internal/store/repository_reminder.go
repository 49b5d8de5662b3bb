package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
)

type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReminderRepository constructs a [ReminderRepository] backed by db.
func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	query, args, err := buildInsertReminderQuery(reminder)
	if err != nil {
		return models.Reminder{}, buildQueryError(err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id, &reminder.Completed, &reminder.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.CreateReminder").
			Int64("user_id", reminder.UserID).Msg("error inserting reminder")
		return models.Reminder{}, repositoryError(err, nil)
	}

	return r.FindReminderByID(ctx, id)
}

func (r *reminderRepository) FindReminderByID(ctx context.Context, reminderID int64) (models.Reminder, error) {
	query, args, err := selectReminders().Where(sq.Eq{"r.id": reminderID}).ToSql()
	if err != nil {
		return models.Reminder{}, buildQueryError(err)
	}

	reminder, err := scanReminder(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Reminder{}, repositoryError(err, ErrReminderNotFound)
	}
	return reminder, nil
}

func (r *reminderRepository) ListRemindersByUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	query, args, err := selectReminders().
		Where(sq.Eq{"r.user_id": userID}).
		OrderBy("r.due_date", "r.id").
		ToSql()
	if err != nil {
		return nil, buildQueryError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reminderRepository.ListRemindersByUser").Msg("error selecting reminders")
		return nil, repositoryError(err, nil)
	}
	defer rows.Close()

	reminders := make([]models.Reminder, 0)
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reminders = append(reminders, reminder)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reminders, nil
}

func (r *reminderRepository) DeleteReminder(ctx context.Context, reminderID int64) error {
	query, args, err := buildDeleteByIDQuery("reminders", reminderID)
	if err != nil {
		return buildQueryError(err)
	}

	return execAffectingOne(ctx, r.db.DB, ErrReminderNotFound, query, args...)
}

func scanReminder(row rowScanner) (models.Reminder, error) {
	var (
		reminder models.Reminder
		planID   sql.NullInt64
	)

	err := row.Scan(&reminder.ID, &reminder.UserID, &planID, &reminder.PlanTitle, &reminder.Message,
		&reminder.DueDate, &reminder.Completed, &reminder.CreatedAt)
	if err != nil {
		return models.Reminder{}, err
	}

	if planID.Valid {
		reminder.PlanID = &planID.Int64
	}
	return reminder, nil
}
