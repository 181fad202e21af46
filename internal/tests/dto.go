package tests

import "time"

// TestSummary is the list-view representation of a test.
type TestSummary struct {
	TestID        string    `json:"testId"`
	DocumentID    string    `json:"documentId"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// QuestionView is a question as shown while taking a test. The correct answer
// is deliberately absent.
type QuestionView struct {
	Key      string            `json:"key"`
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
}

// TestDetail is the taking view of a test.
type TestDetail struct {
	TestSummary
	Questions []QuestionView `json:"questions"`
}

// AttemptResponse reports a scored submission.
type AttemptResponse struct {
	AttemptID      string            `json:"attemptId"`
	TestID         string            `json:"testId"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"totalQuestions"`
	Percentage     float64           `json:"percentage"`
	Answers        map[string]string `json:"answers"`
	CompletedAt    time.Time         `json:"completedAt"`
}

func toSummary(test Test) TestSummary {
	return TestSummary{
		TestID:        test.ID,
		DocumentID:    test.DocumentID,
		Title:         test.Title,
		QuestionCount: len(test.Questions),
		CreatedAt:     test.CreatedAt,
	}
}

func toDetail(test Test) TestDetail {
	questions := make([]QuestionView, 0, len(test.Questions))
	for i, q := range test.Questions {
		questions = append(questions, QuestionView{
			Key:      AnswerKey(i),
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return TestDetail{
		TestSummary: toSummary(test),
		Questions:   questions,
	}
}

func toAttemptResponse(attempt Attempt) AttemptResponse {
	return AttemptResponse{
		AttemptID:      attempt.ID,
		TestID:         attempt.TestID,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		Percentage:     attempt.Percentage(),
		Answers:        attempt.Answers,
		CompletedAt:    attempt.CompletedAt,
	}
}
