package application

import (
	"time"

	"github.com/opinio-app/survey_backend/internal/domain"
)

// Stub repositories shared by the service tests. They keep state in maps and
// record the calls the tests need to assert on.

type stubUserRepo struct {
	users      map[int]*domain.User
	nextID     int
	deletedID  int
	snapshot   *domain.UserSnapshot
	deleteErrs map[int]error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[int]*domain.User{}, nextID: 1}
}

func (r *stubUserRepo) Create(user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.Conflict("an account already uses this email")
		}
	}
	user.UserID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *stubUserRepo) GetByID(userID int) (*domain.User, error) {
	if u, ok := r.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.NotFound("user not found")
}

func (r *stubUserRepo) GetByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) DeleteWithSnapshot(userID int, snapshot *domain.UserSnapshot) error {
	if err := r.deleteErrs[userID]; err != nil {
		return err
	}
	if _, ok := r.users[userID]; !ok {
		return domain.NotFound("user not found")
	}
	if snapshot != nil {
		snapshot.SnapshotID = 1
		snapshot.CreatedAt = time.Now()
	}
	r.deletedID = userID
	r.snapshot = snapshot
	delete(r.users, userID)
	return nil
}

type stubCategoryRepo struct {
	categories map[int]*domain.Category
	nextID     int
}

func newStubCategoryRepo(names ...string) *stubCategoryRepo {
	r := &stubCategoryRepo{categories: map[int]*domain.Category{}, nextID: 1}
	for _, name := range names {
		r.Create(&domain.Category{Name: name})
	}
	return r
}

func (r *stubCategoryRepo) Create(category *domain.Category) error {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return domain.Conflict("category already exists")
		}
	}
	category.CategoryID = r.nextID
	r.nextID++
	cp := *category
	r.categories[category.CategoryID] = &cp
	return nil
}

func (r *stubCategoryRepo) GetByID(categoryID int) (*domain.Category, error) {
	if c, ok := r.categories[categoryID]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.NotFound("category not found")
}

func (r *stubCategoryRepo) List() ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(category *domain.Category) error {
	if _, ok := r.categories[category.CategoryID]; !ok {
		return domain.NotFound("category not found")
	}
	cp := *category
	r.categories[category.CategoryID] = &cp
	return nil
}

func (r *stubCategoryRepo) Delete(categoryID int) error {
	if _, ok := r.categories[categoryID]; !ok {
		return domain.NotFound("category not found")
	}
	delete(r.categories, categoryID)
	return nil
}

type stubSurveyRepo struct {
	surveys        map[int]*domain.Survey
	nextID         int
	deletedSurveys []int
}

func newStubSurveyRepo() *stubSurveyRepo {
	return &stubSurveyRepo{surveys: map[int]*domain.Survey{}, nextID: 1}
}

func (r *stubSurveyRepo) Create(survey *domain.Survey) error {
	survey.SurveyID = r.nextID
	survey.CreatedAt = time.Now()
	survey.UpdatedAt = survey.CreatedAt
	r.nextID++
	cp := *survey
	r.surveys[survey.SurveyID] = &cp
	return nil
}

func (r *stubSurveyRepo) GetByID(surveyID int) (*domain.Survey, error) {
	if s, ok := r.surveys[surveyID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, domain.NotFound("survey not found")
}

func (r *stubSurveyRepo) ListByUser(userID int) ([]domain.Survey, error) {
	var out []domain.Survey
	for _, s := range r.surveys {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubSurveyRepo) ListPublished(categoryID *int, limit, offset int) ([]domain.Survey, error) {
	var out []domain.Survey
	for _, s := range r.surveys {
		if s.Status != domain.SurveyStatusPublished || !s.Public {
			continue
		}
		if categoryID != nil && s.CategoryID != *categoryID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSurveyRepo) Update(survey *domain.Survey) error {
	if _, ok := r.surveys[survey.SurveyID]; !ok {
		return domain.NotFound("survey not found")
	}
	survey.UpdatedAt = time.Now()
	cp := *survey
	r.surveys[survey.SurveyID] = &cp
	return nil
}

func (r *stubSurveyRepo) DeleteWithAnswers(surveyID int) error {
	if _, ok := r.surveys[surveyID]; !ok {
		return domain.NotFound("survey not found")
	}
	delete(r.surveys, surveyID)
	r.deletedSurveys = append(r.deletedSurveys, surveyID)
	return nil
}

func (r *stubSurveyRepo) CountByUser(userID int) (int, error) {
	count := 0
	for _, s := range r.surveys {
		if s.UserID == userID {
			count++
		}
	}
	return count, nil
}

type stubQuestionRepo struct {
	questions map[int]*domain.Question
	nextID    int
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: map[int]*domain.Question{}, nextID: 1}
}

func (r *stubQuestionRepo) Create(question *domain.Question) error {
	question.QuestionID = r.nextID
	r.nextID++
	cp := *question
	r.questions[question.QuestionID] = &cp
	return nil
}

func (r *stubQuestionRepo) GetByID(questionID int) (*domain.Question, error) {
	if q, ok := r.questions[questionID]; ok {
		cp := *q
		return &cp, nil
	}
	return nil, domain.NotFound("question not found")
}

func (r *stubQuestionRepo) ListBySurvey(surveyID int) ([]domain.Question, error) {
	var out []domain.Question
	for id := 1; id < r.nextID; id++ {
		if q, ok := r.questions[id]; ok && q.SurveyID == surveyID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *stubQuestionRepo) Update(question *domain.Question) error {
	existing, ok := r.questions[question.QuestionID]
	if !ok {
		return domain.NotFound("question not found")
	}
	// The type column is never written.
	question.Type = existing.Type
	cp := *question
	r.questions[question.QuestionID] = &cp
	return nil
}

func (r *stubQuestionRepo) Delete(questionID int) error {
	if _, ok := r.questions[questionID]; !ok {
		return domain.NotFound("question not found")
	}
	delete(r.questions, questionID)
	return nil
}

func (r *stubQuestionRepo) CountBySurvey(surveyID int) (int, error) {
	count := 0
	for _, q := range r.questions {
		if q.SurveyID == surveyID {
			count++
		}
	}
	return count, nil
}

type stubAnswerRepo struct {
	answers   map[int]*domain.Answer
	nextID    int
	questions *stubQuestionRepo
	stats     *domain.SurveyStats
}

func newStubAnswerRepo(questions *stubQuestionRepo) *stubAnswerRepo {
	return &stubAnswerRepo{answers: map[int]*domain.Answer{}, nextID: 1, questions: questions}
}

func (r *stubAnswerRepo) Create(answer *domain.Answer) error {
	answer.AnswerID = r.nextID
	answer.CreatedAt = time.Now()
	r.nextID++
	cp := *answer
	r.answers[answer.AnswerID] = &cp
	return nil
}

func (r *stubAnswerRepo) GetByUserAndQuestion(userID, questionID int) (*domain.Answer, error) {
	for _, a := range r.answers {
		if a.UserID == userID && a.QuestionID == questionID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubAnswerRepo) UpdateContent(answerID int, content string) error {
	a, ok := r.answers[answerID]
	if !ok {
		return domain.NotFound("answer not found")
	}
	a.Content = content
	return nil
}

func (r *stubAnswerRepo) ListBySurveyAndUser(surveyID, userID int) ([]domain.Answer, error) {
	var out []domain.Answer
	for id := 1; id < r.nextID; id++ {
		a, ok := r.answers[id]
		if !ok || a.UserID != userID {
			continue
		}
		q, err := r.questions.GetByID(a.QuestionID)
		if err != nil || q.SurveyID != surveyID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAnswerRepo) Stats(surveyID int) (*domain.SurveyStats, error) {
	if r.stats != nil {
		cp := *r.stats
		return &cp, nil
	}
	// Derive counts from stored answers, the way the SQL aggregation does.
	questionCount, _ := r.questions.CountBySurvey(surveyID)
	answered := map[int]map[int]bool{}
	for _, a := range r.answers {
		q, err := r.questions.GetByID(a.QuestionID)
		if err != nil || q.SurveyID != surveyID {
			continue
		}
		if answered[a.UserID] == nil {
			answered[a.UserID] = map[int]bool{}
		}
		answered[a.UserID][a.QuestionID] = true
	}
	stats := &domain.SurveyStats{SurveyID: surveyID, QuestionCount: questionCount}
	for _, qs := range answered {
		stats.TotalResponses++
		if len(qs) == questionCount {
			stats.CompleteResponses++
		}
	}
	stats.PartialResponses = stats.TotalResponses - stats.CompleteResponses
	return stats, nil
}

type stubPaymentRepo struct {
	payments map[int]*domain.Payment
	nextID   int
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: map[int]*domain.Payment{}, nextID: 1}
}

func (r *stubPaymentRepo) Create(payment *domain.Payment) error {
	payment.PaymentID = r.nextID
	payment.CreatedAt = time.Now()
	r.nextID++
	cp := *payment
	r.payments[payment.PaymentID] = &cp
	return nil
}

func (r *stubPaymentRepo) GetByID(paymentID int) (*domain.Payment, error) {
	if p, ok := r.payments[paymentID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.NotFound("payment not found")
}

func (r *stubPaymentRepo) ListByUser(userID int) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.payments {
		if p.UserID != nil && *p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) Update(payment *domain.Payment) error {
	if _, ok := r.payments[payment.PaymentID]; !ok {
		return domain.NotFound("payment not found")
	}
	cp := *payment
	r.payments[payment.PaymentID] = &cp
	return nil
}

func (r *stubPaymentRepo) CountByUser(userID int) (int, error) {
	count := 0
	for _, p := range r.payments {
		if p.UserID != nil && *p.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *stubPaymentRepo) SumSurveyCountByUser(userID int) (int, error) {
	sum := 0
	for _, p := range r.payments {
		if p.UserID != nil && *p.UserID == userID {
			sum += p.SurveyCount
		}
	}
	return sum, nil
}

type stubEmailSender struct {
	sent []string // recipients
	err  error
}

func (s *stubEmailSender) SendEmail(to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}
