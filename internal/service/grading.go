package service

import (
	"academy_backend/internal/model"
	"encoding/json"
	"fmt"
	"strings"
)

// GradeResult is the settled outcome for one submission.
type GradeResult struct {
	Answers      []model.SubmissionAnswer
	EarnedPoints float64
	TotalPoints  float64
	Score        float64
	Passed       bool
}

// GradeAnswers scores every answer against the question set. Questions are
// addressed by answer.QuestionIndex; an index outside the question set is
// skipped entirely (no points earned, none added to the total). Points of an
// addressed question count toward the total whether or not the answer is
// correct.
func GradeAnswers(questions []model.ExamQuestion, answers []model.SubmissionAnswer, passingScore float64) (*GradeResult, error) {
	result := &GradeResult{
		Answers: make([]model.SubmissionAnswer, len(answers)),
	}

	for i, ans := range answers {
		if ans.QuestionIndex < 0 || ans.QuestionIndex >= len(questions) {
			ans.IsCorrect = false
			ans.PointsEarned = 0
			result.Answers[i] = ans
			continue
		}

		q := questions[ans.QuestionIndex]
		result.TotalPoints += q.Points

		correct, err := gradeAnswer(&q, &ans)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", ans.QuestionIndex, err)
		}

		ans.IsCorrect = correct
		if correct {
			ans.PointsEarned = q.Points
			result.EarnedPoints += q.Points
		} else {
			ans.PointsEarned = 0
		}
		result.Answers[i] = ans
	}

	if result.TotalPoints > 0 {
		result.Score = result.EarnedPoints / result.TotalPoints * 100
	} else {
		result.Score = 0
	}
	result.Passed = result.Score >= passingScore

	return result, nil
}

func gradeAnswer(q *model.ExamQuestion, ans *model.SubmissionAnswer) (bool, error) {
	switch q.QuestionType {
	case model.MultipleChoice:
		var opts []model.ChoiceOption
		if err := json.Unmarshal(q.Options, &opts); err != nil {
			return false, fmt.Errorf("malformed options: %w", err)
		}
		return gradeMultipleChoice(opts, ans.SelectedOptions), nil

	case model.TrueFalse:
		var stmts []model.Statement
		if err := json.Unmarshal(q.Statements, &stmts); err != nil {
			return false, fmt.Errorf("malformed statements: %w", err)
		}
		return gradeTrueFalse(stmts, ans.TrueFalseResponses), nil

	case model.ShortAnswer:
		return gradeShortAnswer(q.CorrectAnswer, ans.ShortAnswerResponse, q.CaseSensitive, q.AllowPartialMatch), nil

	default:
		return false, fmt.Errorf("unknown question type %q", q.QuestionType)
	}
}

// gradeMultipleChoice awards no partial credit: the selected set must equal
// the correct set exactly. A selection outside the option range fails the
// question.
func gradeMultipleChoice(opts []model.ChoiceOption, selected map[int]bool) bool {
	for i, opt := range opts {
		if selected[i] != opt.IsCorrect {
			return false
		}
	}
	for idx, on := range selected {
		if on && (idx < 0 || idx >= len(opts)) {
			return false
		}
	}
	return true
}

// gradeTrueFalse requires every statement's mark to match its ground truth.
// An unanswered statement counts as marked false; the client blocks manual
// submission with gaps, but the timer can force a partial submission through.
func gradeTrueFalse(stmts []model.Statement, marks map[int]bool) bool {
	for i, stmt := range stmts {
		if marks[i] != stmt.IsTrue {
			return false
		}
	}
	return true
}

// gradeShortAnswer compares trimmed strings under the question's case rule.
// With partial matching, containment in either direction passes, but an empty
// response never matches a non-empty answer.
func gradeShortAnswer(correctAnswer, response string, caseSensitive, allowPartialMatch bool) bool {
	want := strings.TrimSpace(correctAnswer)
	got := strings.TrimSpace(response)
	if !caseSensitive {
		want = strings.ToLower(want)
		got = strings.ToLower(got)
	}

	if got == want {
		return true
	}
	if !allowPartialMatch || got == "" || want == "" {
		return false
	}
	return strings.Contains(got, want) || strings.Contains(want, got)
}
