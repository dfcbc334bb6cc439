package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new question repository instance.
func NewQuestionRepository(db *sql.DB) domain.QuestionRepository {
	return &questionRepository{db: db}
}

// Create inserts the question and fills QuestionID. Options are stored as a
// jsonb array in their given order.
func (r *questionRepository) Create(question *domain.Question) error {
	options, err := marshalOptions(question.Options)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO questions (title, type, survey_id, options)
		VALUES ($1, $2, $3, $4)
		RETURNING question_id
	`

	err = r.db.QueryRow(
		query,
		question.Title,
		question.Type,
		question.SurveyID,
		options,
	).Scan(&question.QuestionID)

	if err != nil {
		return domain.Internal("failed to create question", err)
	}

	return nil
}

// GetByID returns the question or a not_found error.
func (r *questionRepository) GetByID(questionID int) (*domain.Question, error) {
	query := `
		SELECT question_id, title, type, survey_id, options
		FROM questions
		WHERE question_id = $1
	`

	question := &domain.Question{}
	var options []byte

	err := r.db.QueryRow(query, questionID).Scan(
		&question.QuestionID,
		&question.Title,
		&question.Type,
		&question.SurveyID,
		&options,
	)

	if err == sql.ErrNoRows {
		return nil, domain.NotFound(fmt.Sprintf("question %d not found", questionID))
	}
	if err != nil {
		return nil, domain.Internal("failed to get question", err)
	}

	if err := unmarshalOptions(options, &question.Options); err != nil {
		return nil, err
	}

	return question, nil
}

// ListBySurvey returns the survey's questions in id order.
func (r *questionRepository) ListBySurvey(surveyID int) ([]domain.Question, error) {
	query := `
		SELECT question_id, title, type, survey_id, options
		FROM questions
		WHERE survey_id = $1
		ORDER BY question_id
	`

	rows, err := r.db.Query(query, surveyID)
	if err != nil {
		return nil, domain.Internal("failed to list questions", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var question domain.Question
		var options []byte

		err := rows.Scan(
			&question.QuestionID,
			&question.Title,
			&question.Type,
			&question.SurveyID,
			&options,
		)
		if err != nil {
			return nil, domain.Internal("failed to scan question", err)
		}

		if err := unmarshalOptions(options, &question.Options); err != nil {
			return nil, err
		}

		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.Internal("failed to list questions", err)
	}

	return questions, nil
}

// Update writes title and options. The type column is never touched: the
// question type is fixed at creation.
func (r *questionRepository) Update(question *domain.Question) error {
	options, err := marshalOptions(question.Options)
	if err != nil {
		return err
	}

	query := `
		UPDATE questions
		SET title = $1, options = $2
		WHERE question_id = $3
	`

	result, err := r.db.Exec(query, question.Title, options, question.QuestionID)
	if err != nil {
		return domain.Internal("failed to update question", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("question %d not found", question.QuestionID))
	}

	return nil
}

// Delete removes the question; its answers go through the DB cascade.
func (r *questionRepository) Delete(questionID int) error {
	result, err := r.db.Exec(`DELETE FROM questions WHERE question_id = $1`, questionID)
	if err != nil {
		return domain.Internal("failed to delete question", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("question %d not found", questionID))
	}

	return nil
}

// CountBySurvey returns how many questions the survey has.
func (r *questionRepository) CountBySurvey(surveyID int) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM questions WHERE survey_id = $1`, surveyID).Scan(&count)
	if err != nil {
		return 0, domain.Internal("failed to count questions", err)
	}
	return count, nil
}

// marshalOptions serializes options for the jsonb column; nil stays NULL.
func marshalOptions(options []domain.AnswerOption) ([]byte, error) {
	if options == nil {
		return nil, nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return nil, domain.Internal("failed to marshal question options", err)
	}
	return data, nil
}

func unmarshalOptions(data []byte, options *[]domain.AnswerOption) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, options); err != nil {
		return domain.Internal("failed to unmarshal question options", err)
	}
	return nil
}
