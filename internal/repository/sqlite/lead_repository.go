package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"

	"github.com/hmiyata/shindan/internal/logger"
	"github.com/hmiyata/shindan/internal/models"
	"github.com/hmiyata/shindan/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type leadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new LeadRepository implementation
func NewLeadRepository(db *sql.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Insert(ctx context.Context, lead models.Lead) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("lead_repo")
	log.Debug("inserting lead: quiz=%s, email=%s", lead.Quiz, lead.Email)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO leads (attempt_id, quiz, name, email, dominant, scores, forward_status)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, lead.AttemptID, lead.Quiz, lead.Name, lead.Email, lead.Dominant, lead.ScoresJSON, lead.ForwardStatus)
	if err != nil {
		log.Error("failed to insert lead: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to read inserted lead id: %v", err)
		return 0, err
	}
	log.Debug("lead inserted: id=%d", id)
	return id, nil
}

func (r *leadRepository) Get(ctx context.Context, id int64) (*models.Lead, error) {
	log := logger.FromContext(ctx).WithPrefix("lead_repo")
	log.Debug("getting lead: id=%d", id)

	var l models.Lead
	err := r.db.QueryRowContext(ctx, `
SELECT id, attempt_id, quiz, name, email, dominant, scores, forward_status, created_at
FROM leads
WHERE id = ?
`, id).Scan(&l.ID, &l.AttemptID, &l.Quiz, &l.Name, &l.Email, &l.Dominant, &l.ScoresJSON, &l.ForwardStatus, &l.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("lead not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get lead: %v", err)
		return nil, err
	}
	return &l, nil
}

func filtered(query squirrel.SelectBuilder, filter models.LeadFilter) squirrel.SelectBuilder {
	if filter.Quiz != "" {
		query = query.Where(squirrel.Eq{"quiz": filter.Quiz})
	}
	if filter.Dominant != "" {
		query = query.Where(squirrel.Eq{"dominant": filter.Dominant})
	}
	if filter.ForwardStatus != "" {
		query = query.Where(squirrel.Eq{"forward_status": filter.ForwardStatus})
	}
	if filter.EmailContains != "" {
		query = query.Where(squirrel.Like{"email": "%" + filter.EmailContains + "%"})
	}
	return query
}

func (r *leadRepository) List(ctx context.Context, filter models.LeadFilter) ([]models.Lead, error) {
	log := logger.FromContext(ctx).WithPrefix("lead_repo")
	log.Debug("listing leads with filter: quiz=%s, dominant=%s, forward_status=%s",
		filter.Quiz, filter.Dominant, filter.ForwardStatus)

	query := filtered(sqlBuilder.Select(
		"id", "attempt_id", "quiz", "name", "email", "dominant", "scores", "forward_status", "created_at",
	).From("leads"), filter).OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build lead list query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list leads: %v", err)
		return nil, err
	}
	defer rows.Close()

	var leads []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.AttemptID, &l.Quiz, &l.Name, &l.Email, &l.Dominant, &l.ScoresJSON, &l.ForwardStatus, &l.CreatedAt); err != nil {
			log.Error("failed to scan lead row: %v", err)
			return nil, err
		}
		leads = append(leads, l)
	}

	log.Debug("found %d leads", len(leads))
	return leads, rows.Err()
}

func (r *leadRepository) Count(ctx context.Context, filter models.LeadFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("lead_repo")

	sqlStr, args, err := filtered(sqlBuilder.Select("COUNT(*)").From("leads"), filter).ToSql()
	if err != nil {
		log.Error("failed to build lead count query: %v", err)
		return 0, err
	}

	var count int
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count leads: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *leadRepository) UpdateForwardStatus(ctx context.Context, id int64, status string) error {
	log := logger.FromContext(ctx).WithPrefix("lead_repo")
	log.Debug("updating lead forward status: id=%d, status=%s", id, status)

	_, err := r.db.ExecContext(ctx, `UPDATE leads SET forward_status = ? WHERE id = ?`, status, id)
	if err != nil {
		log.Error("failed to update lead forward status: %v", err)
	}
	return err
}
