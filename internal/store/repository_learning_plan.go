package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
)

type learningPlanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLearningPlanRepository constructs a [LearningPlanRepository] backed by db.
func NewLearningPlanRepository(db *DB, logger *logger.Logger) LearningPlanRepository {
	logger.Debug().Msg("creating learning plan repository")
	return &learningPlanRepository{
		db:     db,
		logger: logger,
	}
}

// CreatePlan inserts the plan with its milestones in one transaction.
func (r *learningPlanRepository) CreatePlan(ctx context.Context, plan models.LearningPlan) (models.LearningPlan, error) {
	query, args, err := buildInsertPlanQuery(plan)
	if err != nil {
		return models.LearningPlan{}, buildQueryError(err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
			return repositoryError(err, nil)
		}
		return insertMilestones(ctx, tx, plan.ID, plan.Milestones)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*learningPlanRepository.CreatePlan").
			Int64("user_id", plan.UserID).Msg("error inserting learning plan")
		return models.LearningPlan{}, err
	}

	if plan.Materials == nil {
		plan.Materials = []models.Material{}
	}
	return plan, nil
}

func (r *learningPlanRepository) FindPlanByID(ctx context.Context, planID int64) (models.LearningPlan, error) {
	query, args, err := selectPlans().Where(sq.Eq{"id": planID}).ToSql()
	if err != nil {
		return models.LearningPlan{}, buildQueryError(err)
	}

	plan, err := scanPlan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.LearningPlan{}, repositoryError(err, ErrPlanNotFound)
	}

	plans := []models.LearningPlan{plan}
	if err = r.loadChildren(ctx, plans); err != nil {
		return models.LearningPlan{}, err
	}
	return plans[0], nil
}

func (r *learningPlanRepository) ListPlansByUser(ctx context.Context, userID int64) ([]models.LearningPlan, error) {
	return r.listPlans(ctx, selectPlans().Where(sq.Eq{"user_id": userID}))
}

func (r *learningPlanRepository) ListPublicPlans(ctx context.Context) ([]models.LearningPlan, error) {
	return r.listPlans(ctx, selectPlans().Where(sq.Eq{"is_public": true}))
}

// UpdatePlan overwrites title, description and visibility and replaces the
// milestone list. Materials are kept.
func (r *learningPlanRepository) UpdatePlan(ctx context.Context, plan models.LearningPlan) (models.LearningPlan, error) {
	query, args, err := buildUpdatePlanQuery(plan)
	if err != nil {
		return models.LearningPlan{}, buildQueryError(err)
	}
	deleteQuery, deleteArgs, err := buildDeleteMilestonesQuery(plan.ID)
	if err != nil {
		return models.LearningPlan{}, buildQueryError(err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&plan.CreatedAt, &plan.UpdatedAt); err != nil {
			return repositoryError(err, ErrPlanNotFound)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return repositoryError(err, nil)
		}
		return insertMilestones(ctx, tx, plan.ID, plan.Milestones)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*learningPlanRepository.UpdatePlan").
			Int64("plan_id", plan.ID).Msg("error updating learning plan")
		return models.LearningPlan{}, err
	}

	return r.FindPlanByID(ctx, plan.ID)
}

func (r *learningPlanRepository) DeletePlan(ctx context.Context, planID int64) error {
	query, args, err := buildDeleteByIDQuery("learning_plans", planID)
	if err != nil {
		return buildQueryError(err)
	}

	return execAffectingOne(ctx, r.db.DB, ErrPlanNotFound, query, args...)
}

// UpdateMilestone stores the completion flag and notes of the milestone
// identified by (ID, PlanID).
func (r *learningPlanRepository) UpdateMilestone(ctx context.Context, milestone models.Milestone) (models.Milestone, error) {
	query, args, err := buildUpdateMilestoneQuery(milestone)
	if err != nil {
		return models.Milestone{}, buildQueryError(err)
	}

	updated, err := scanMilestone(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Milestone{}, repositoryError(err, ErrMilestoneNotFound)
	}
	return updated, nil
}

func (r *learningPlanRepository) AddMaterial(ctx context.Context, material models.Material) (models.Material, error) {
	query, args, err := buildInsertMaterialQuery(material)
	if err != nil {
		return models.Material{}, buildQueryError(err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&material.ID, &material.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*learningPlanRepository.AddMaterial").
			Int64("plan_id", material.PlanID).Msg("error inserting learning material")
		return models.Material{}, repositoryError(err, nil)
	}
	return material, nil
}

func (r *learningPlanRepository) DeleteMaterial(ctx context.Context, materialID int64) error {
	query, args, err := buildDeleteByIDQuery("learning_materials", materialID)
	if err != nil {
		return buildQueryError(err)
	}

	return execAffectingOne(ctx, r.db.DB, ErrMaterialNotFound, query, args...)
}

func (r *learningPlanRepository) listPlans(ctx context.Context, builder sq.SelectBuilder) ([]models.LearningPlan, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildQueryError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*learningPlanRepository.listPlans").Msg("error selecting learning plans")
		return nil, repositoryError(err, nil)
	}
	defer rows.Close()

	plans := make([]models.LearningPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		plans = append(plans, plan)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.loadChildren(ctx, plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// loadChildren fills milestones and materials of plans, two queries in total.
func (r *learningPlanRepository) loadChildren(ctx context.Context, plans []models.LearningPlan) error {
	if len(plans) == 0 {
		return nil
	}

	index := make(map[int64]int, len(plans))
	ids := make([]int64, 0, len(plans))
	for i := range plans {
		index[plans[i].ID] = i
		ids = append(ids, plans[i].ID)
		plans[i].Milestones = []models.Milestone{}
		plans[i].Materials = []models.Material{}
	}

	query, args, err := buildSelectMilestonesQuery(ids)
	if err != nil {
		return buildQueryError(err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return repositoryError(err, nil)
	}
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			rows.Close()
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[m.PlanID]; ok {
			plans[i].Milestones = append(plans[i].Milestones, m)
		}
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	query, args, err = buildSelectMaterialsQuery(ids)
	if err != nil {
		return buildQueryError(err)
	}
	rows, err = r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return repositoryError(err, nil)
	}
	defer rows.Close()
	for rows.Next() {
		var m models.Material
		if err = rows.Scan(&m.ID, &m.PlanID, &m.Key, &m.FileName, &m.ContentType, &m.Size, &m.CreatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if i, ok := index[m.PlanID]; ok {
			plans[i].Materials = append(plans[i].Materials, m)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// insertMilestones writes milestones in order and assigns the generated ids.
func insertMilestones(ctx context.Context, tx *sql.Tx, planID int64, milestones []models.Milestone) error {
	if len(milestones) == 0 {
		return nil
	}

	query, args, err := buildInsertMilestonesQuery(planID, milestones)
	if err != nil {
		return buildQueryError(err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return repositoryError(err, nil)
	}
	defer rows.Close()

	for i := 0; rows.Next() && i < len(milestones); i++ {
		if err = rows.Scan(&milestones[i].ID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		milestones[i].PlanID = planID
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func scanPlan(row rowScanner) (models.LearningPlan, error) {
	var p models.LearningPlan
	err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.Public, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanMilestone(row rowScanner) (models.Milestone, error) {
	var m models.Milestone
	err := row.Scan(&m.ID, &m.PlanID, &m.Title, &m.Description, &m.Completed, &m.Notes)
	return m, err
}
