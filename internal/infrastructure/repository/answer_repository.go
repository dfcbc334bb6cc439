package repository

import (
	"database/sql"
	"fmt"

	"github.com/opinio-app/survey_backend/internal/domain"
)

type answerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new answer repository instance.
func NewAnswerRepository(db *sql.DB) domain.AnswerRepository {
	return &answerRepository{db: db}
}

// Create inserts the answer and fills AnswerID and CreatedAt.
func (r *answerRepository) Create(answer *domain.Answer) error {
	query := `
		INSERT INTO answers (content, question_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING answer_id, created_at
	`

	err := r.db.QueryRow(
		query,
		answer.Content,
		answer.QuestionID,
		answer.UserID,
	).Scan(&answer.AnswerID, &answer.CreatedAt)

	if err != nil {
		return domain.Internal("failed to create answer", err)
	}

	return nil
}

// GetByUserAndQuestion returns (nil, nil) when the user has not answered the
// question yet. Uniqueness is not DB-enforced; the most recent row wins.
func (r *answerRepository) GetByUserAndQuestion(userID, questionID int) (*domain.Answer, error) {
	query := `
		SELECT answer_id, content, question_id, user_id, created_at
		FROM answers
		WHERE user_id = $1 AND question_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	answer := &domain.Answer{}
	err := r.db.QueryRow(query, userID, questionID).Scan(
		&answer.AnswerID,
		&answer.Content,
		&answer.QuestionID,
		&answer.UserID,
		&answer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, domain.Internal("failed to get answer", err)
	}

	return answer, nil
}

// UpdateContent replaces the content of an existing answer.
func (r *answerRepository) UpdateContent(answerID int, content string) error {
	result, err := r.db.Exec(`UPDATE answers SET content = $1 WHERE answer_id = $2`, content, answerID)
	if err != nil {
		return domain.Internal("failed to update answer", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return domain.Internal("failed to check affected rows", err)
	}
	if rowsAffected == 0 {
		return domain.NotFound(fmt.Sprintf("answer %d not found", answerID))
	}

	return nil
}

// ListBySurveyAndUser returns the user's answers to the survey's questions.
func (r *answerRepository) ListBySurveyAndUser(surveyID, userID int) ([]domain.Answer, error) {
	query := `
		SELECT a.answer_id, a.content, a.question_id, a.user_id, a.created_at
		FROM answers a
		JOIN questions q ON q.question_id = a.question_id
		WHERE q.survey_id = $1 AND a.user_id = $2
		ORDER BY a.question_id
	`

	rows, err := r.db.Query(query, surveyID, userID)
	if err != nil {
		return nil, domain.Internal("failed to list answers", err)
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var answer domain.Answer
		err := rows.Scan(
			&answer.AnswerID,
			&answer.Content,
			&answer.QuestionID,
			&answer.UserID,
			&answer.CreatedAt,
		)
		if err != nil {
			return nil, domain.Internal("failed to scan answer", err)
		}
		answers = append(answers, answer)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.Internal("failed to list answers", err)
	}

	return answers, nil
}

// Stats aggregates response counts for the survey in one query: a response is
// one distinct answering user, complete when their distinct answered-question
// count equals the survey's question count.
func (r *answerRepository) Stats(surveyID int) (*domain.SurveyStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM questions WHERE survey_id = $1) AS question_count,
			COUNT(*) AS total_responses,
			COUNT(*) FILTER (
				WHERE answered = (SELECT COUNT(*) FROM questions WHERE survey_id = $1)
			) AS complete_responses
		FROM (
			SELECT a.user_id, COUNT(DISTINCT a.question_id) AS answered
			FROM answers a
			JOIN questions q ON q.question_id = a.question_id
			WHERE q.survey_id = $1
			GROUP BY a.user_id
		) per_user
	`

	stats := &domain.SurveyStats{SurveyID: surveyID}
	err := r.db.QueryRow(query, surveyID).Scan(
		&stats.QuestionCount,
		&stats.TotalResponses,
		&stats.CompleteResponses,
	)
	if err != nil {
		return nil, domain.Internal("failed to aggregate survey responses", err)
	}

	stats.PartialResponses = stats.TotalResponses - stats.CompleteResponses
	return stats, nil
}
