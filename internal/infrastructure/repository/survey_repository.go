package repository

import (
	"database/sql"
	"fmt"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type surveyRepository struct {
	db *sql.DB
}

// NewSurveyRepository creates a new survey repository instance.
func NewSurveyRepository(db *sql.DB) domain.SurveyRepository {
	return &surveyRepository{db: db}
}

// Create inserts the survey and fills SurveyID, CreatedAt and UpdatedAt.
func (r *surveyRepository) Create(survey *domain.Survey) error {
	query := `
		INSERT INTO survey (title, description, status, public, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING survey_id, created_at, updated_at
	`

	err := r.db.QueryRow(
		query,
		survey.Title,
		survey.Description,
		survey.Status,
		survey.Public,
		survey.UserID,
		survey.CategoryID,
	).Scan(&survey.SurveyID, &survey.CreatedAt, &survey.UpdatedAt)

	if err != nil {
		return domain.Internal("failed to create survey", err)
	}

	return nil
}

// GetByID returns the survey or a not_found error.
func (r *surveyRepository) GetByID(surveyID int) (*domain.Survey, error) {
	query := `
		SELECT survey_id, title, description, status, public, user_id, category_id, created_at, updated_at
		FROM survey
		WHERE survey_id = $1
	`

	survey := &domain.Survey{}
	err := r.db.QueryRow(query, surveyID).Scan(
		&survey.SurveyID,
		&survey.Title,
		&survey.Description,
		&survey.Status,
		&survey.Public,
		&survey.UserID,
		&survey.CategoryID,
		&survey.CreatedAt,
		&survey.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.NotFound(fmt.Sprintf("survey %d not found", surveyID))
	}
	if err != nil {
		return nil, domain.Internal("failed to get survey", err)
	}

	return survey, nil
}

// ListByUser returns the user's surveys, newest first.
func (r *surveyRepository) ListByUser(userID int) ([]domain.Survey, error) {
	query := `
		SELECT survey_id, title, description, status, public, user_id, category_id, created_at, updated_at
		FROM survey
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, domain.Internal("failed to list surveys", err)
	}
	defer rows.Close()

	return scanSurveys(rows)
}

// ListPublished returns public published surveys, newest first.
func (r *surveyRepository) ListPublished(categoryID *int, limit, offset int) ([]domain.Survey, error) {
	query := `
		SELECT survey_id, title, description, status, public, user_id, category_id, created_at, updated_at
		FROM survey
		WHERE status = 'published' AND public = true
		  AND ($1::INTEGER IS NULL OR category_id = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, categoryID, limit, offset)
	if err != nil {
		return nil, domain.Internal("failed to list published surveys", err)
	}
	defer rows.Close()

	return scanSurveys(rows)
}

// Update writes every mutable field and refreshes UpdatedAt.
func (r *surveyRepository) Update(survey *domain.Survey) error {
	query := `
		UPDATE survey
		SET title = $1, description = $2, status = $3, public = $4, category_id = $5, updated_at = now()
		WHERE survey_id = $6
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		query,
		survey.Title,
		survey.Description,
		survey.Status,
		survey.Public,
		survey.CategoryID,
		survey.SurveyID,
	).Scan(&survey.UpdatedAt)

	if err == sql.ErrNoRows {
		return domain.NotFound(fmt.Sprintf("survey %d not found", survey.SurveyID))
	}
	if err != nil {
		return domain.Internal("failed to update survey", err)
	}

	return nil
}

// DeleteWithAnswers removes the survey's answers and the survey row in one
// transaction. Questions reference the survey directly and go with the DB
// cascade; answers reference questions, so they are deleted explicitly first.
func (r *surveyRepository) DeleteWithAnswers(surveyID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return domain.Internal("failed to begin survey deletion", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		DELETE FROM answers
		USING questions
		WHERE answers.question_id = questions.question_id
		  AND questions.survey_id = $1
	`, surveyID)
	if err != nil {
		return domain.Internal("failed to delete survey answers", err)
	}

	result, err := tx.Exec(`DELETE FROM survey WHERE survey_id = $1`, surveyID)
	if err != nil {
		return domain.Internal("failed to delete survey", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("survey %d not found", surveyID))
	}

	if err := tx.Commit(); err != nil {
		return domain.Internal("failed to commit survey deletion", err)
	}

	return nil
}

// CountByUser returns how many surveys the user owns.
func (r *surveyRepository) CountByUser(userID int) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM survey WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, domain.Internal("failed to count surveys", err)
	}
	return count, nil
}

func scanSurveys(rows *sql.Rows) ([]domain.Survey, error) {
	var surveys []domain.Survey
	for rows.Next() {
		var survey domain.Survey
		err := rows.Scan(
			&survey.SurveyID,
			&survey.Title,
			&survey.Description,
			&survey.Status,
			&survey.Public,
			&survey.UserID,
			&survey.CategoryID,
			&survey.CreatedAt,
			&survey.UpdatedAt,
		)
		if err != nil {
			return nil, domain.Internal("failed to scan survey", err)
		}
		surveys = append(surveys, survey)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal("failed to list surveys", err)
	}
	return surveys, nil
}
