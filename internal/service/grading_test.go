package service

import (
	"academy_backend/internal/model"
	"encoding/json"
	"testing"
)

func mustJSON(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func mcQuestion(t *testing.T, points float64, correct ...bool) model.ExamQuestion {
	t.Helper()
	opts := make([]model.ChoiceOption, len(correct))
	for i, c := range correct {
		opts[i] = model.ChoiceOption{Text: "option", IsCorrect: c}
	}
	return model.ExamQuestion{
		QuestionType: model.MultipleChoice,
		Options:      mustJSON(t, opts),
		Points:       points,
	}
}

func tfQuestion(t *testing.T, points float64, truths ...bool) model.ExamQuestion {
	t.Helper()
	stmts := make([]model.Statement, len(truths))
	for i, v := range truths {
		stmts[i] = model.Statement{Text: "statement", IsTrue: v}
	}
	return model.ExamQuestion{
		QuestionType: model.TrueFalse,
		Statements:   mustJSON(t, stmts),
		Points:       points,
	}
}

func TestGradeMultipleChoiceExactSet(t *testing.T) {
	opts := []model.ChoiceOption{
		{IsCorrect: true},
		{IsCorrect: false},
		{IsCorrect: true},
	}

	cases := []struct {
		name     string
		selected map[int]bool
		want     bool
	}{
		{"exact match", map[int]bool{0: true, 2: true}, true},
		{"exact match with explicit false", map[int]bool{0: true, 1: false, 2: true}, true},
		{"missing one correct", map[int]bool{0: true}, false},
		{"extra wrong selection", map[int]bool{0: true, 1: true, 2: true}, false},
		{"nothing selected", map[int]bool{}, false},
		{"nil selection", nil, false},
		{"out of range selection", map[int]bool{0: true, 2: true, 7: true}, false},
		{"out of range but unselected", map[int]bool{0: true, 2: true, 7: false}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gradeMultipleChoice(opts, tc.selected); got != tc.want {
				t.Errorf("gradeMultipleChoice(%v) = %v, want %v", tc.selected, got, tc.want)
			}
		})
	}
}

func TestGradeTrueFalseAllStatementsMustMatch(t *testing.T) {
	stmts := []model.Statement{
		{IsTrue: true},
		{IsTrue: false},
		{IsTrue: true},
	}

	cases := []struct {
		name  string
		marks map[int]bool
		want  bool
	}{
		{"all correct", map[int]bool{0: true, 1: false, 2: true}, true},
		{"one wrong", map[int]bool{0: true, 1: true, 2: true}, false},
		{"absent mark is false", map[int]bool{0: true, 2: true}, true},
		{"absent mark fails a true statement", map[int]bool{0: true}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gradeTrueFalse(stmts, tc.marks); got != tc.want {
				t.Errorf("gradeTrueFalse(%v) = %v, want %v", tc.marks, got, tc.want)
			}
		})
	}
}

func TestGradeShortAnswer(t *testing.T) {
	cases := []struct {
		name          string
		correct       string
		response      string
		caseSensitive bool
		partial       bool
		want          bool
	}{
		{"exact", "Damascus", "Damascus", false, false, true},
		{"case folded", "Damascus", "damascus", false, false, true},
		{"case sensitive mismatch", "Damascus", "damascus", true, false, false},
		{"whitespace trimmed", "Damascus", "  Damascus \n", false, false, true},
		{"partial response contains answer", "Damascus", "the city of Damascus", false, true, true},
		{"partial answer contains response", "the city of Damascus", "Damascus", false, true, true},
		{"partial disabled", "Damascus", "the city of Damascus", false, false, false},
		{"empty response never partial-matches", "Damascus", "", false, true, false},
		{"whitespace-only response", "Damascus", "   ", false, true, false},
		{"both empty is exact", "", "", false, false, true},
		{"arabic answer case rule is a no-op", "دمشق", "دمشق", false, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gradeShortAnswer(tc.correct, tc.response, tc.caseSensitive, tc.partial)
			if got != tc.want {
				t.Errorf("gradeShortAnswer(%q, %q, %v, %v) = %v, want %v",
					tc.correct, tc.response, tc.caseSensitive, tc.partial, got, tc.want)
			}
		})
	}
}

func TestGradeAnswersScoreFormula(t *testing.T) {
	questions := []model.ExamQuestion{
		mcQuestion(t, 2, true, false),
		tfQuestion(t, 3, true),
	}
	answers := []model.SubmissionAnswer{
		{QuestionIndex: 0, QuestionType: model.MultipleChoice, SelectedOptions: map[int]bool{0: true}},
		{QuestionIndex: 1, QuestionType: model.TrueFalse, TrueFalseResponses: map[int]bool{0: false}},
	}

	result, err := GradeAnswers(questions, answers, 50)
	if err != nil {
		t.Fatal(err)
	}

	if result.EarnedPoints != 2 {
		t.Errorf("EarnedPoints = %v, want 2", result.EarnedPoints)
	}
	if result.TotalPoints != 5 {
		t.Errorf("TotalPoints = %v, want 5", result.TotalPoints)
	}
	if result.Score != 40 {
		t.Errorf("Score = %v, want 40", result.Score)
	}
	if result.Passed {
		t.Error("score 40 against passing score 50 should not pass")
	}
	if !result.Answers[0].IsCorrect || result.Answers[0].PointsEarned != 2 {
		t.Errorf("answer 0 graded %+v, want correct with 2 points", result.Answers[0])
	}
	if result.Answers[1].IsCorrect || result.Answers[1].PointsEarned != 0 {
		t.Errorf("answer 1 graded %+v, want incorrect with 0 points", result.Answers[1])
	}
}

func TestGradeAnswersPassingBoundary(t *testing.T) {
	questions := []model.ExamQuestion{
		mcQuestion(t, 1, true),
		mcQuestion(t, 1, true),
	}
	answers := []model.SubmissionAnswer{
		{QuestionIndex: 0, QuestionType: model.MultipleChoice, SelectedOptions: map[int]bool{0: true}},
		{QuestionIndex: 1, QuestionType: model.MultipleChoice, SelectedOptions: map[int]bool{}},
	}

	result, err := GradeAnswers(questions, answers, 50)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 50 {
		t.Fatalf("Score = %v, want 50", result.Score)
	}
	if !result.Passed {
		t.Error("a score equal to the passing score must pass")
	}
}

func TestGradeAnswersOutOfRangeIndexSkipped(t *testing.T) {
	questions := []model.ExamQuestion{
		mcQuestion(t, 4, true),
	}
	answers := []model.SubmissionAnswer{
		{QuestionIndex: 0, QuestionType: model.MultipleChoice, SelectedOptions: map[int]bool{0: true}},
		{QuestionIndex: 5, QuestionType: model.MultipleChoice, SelectedOptions: map[int]bool{0: true}},
		{QuestionIndex: -1, QuestionType: model.MultipleChoice},
	}

	result, err := GradeAnswers(questions, answers, 50)
	if err != nil {
		t.Fatal(err)
	}

	// Dangling indexes contribute nothing to either side of the ratio.
	if result.TotalPoints != 4 {
		t.Errorf("TotalPoints = %v, want 4", result.TotalPoints)
	}
	if result.Score != 100 {
		t.Errorf("Score = %v, want 100", result.Score)
	}
	for _, i := range []int{1, 2} {
		if result.Answers[i].IsCorrect || result.Answers[i].PointsEarned != 0 {
			t.Errorf("answer %d graded %+v, want skipped", i, result.Answers[i])
		}
	}
}

func TestGradeAnswersWrongAnswerStillCountsTotal(t *testing.T) {
	questions := []model.ExamQuestion{
		mcQuestion(t, 2, true),
		mcQuestion(t, 2, true),
	}
	answers := []model.SubmissionAnswer{
		{QuestionIndex: 0, QuestionType: model.MultipleChoice, SelectedOptions: map[int]bool{0: true}},
		{QuestionIndex: 1, QuestionType: model.MultipleChoice, SelectedOptions: nil},
	}

	result, err := GradeAnswers(questions, answers, 100)
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalPoints != 4 {
		t.Errorf("TotalPoints = %v, want 4", result.TotalPoints)
	}
	if result.Score != 50 {
		t.Errorf("Score = %v, want 50", result.Score)
	}
}

func TestGradeAnswersEmptyInputs(t *testing.T) {
	result, err := GradeAnswers(nil, nil, 50)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 0 || result.Passed {
		t.Errorf("empty grading = score %v passed %v, want 0 and not passed", result.Score, result.Passed)
	}

	// All answers out of range leaves a zero total; the score must stay 0
	// rather than dividing by zero.
	answers := []model.SubmissionAnswer{{QuestionIndex: 3}}
	result, err = GradeAnswers([]model.ExamQuestion{}, answers, 0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 0 {
		t.Errorf("Score = %v, want 0", result.Score)
	}
	// Passing score 0 still passes a zero score.
	if !result.Passed {
		t.Error("score 0 against passing score 0 must pass")
	}
}

func TestGradeAnswersClientFieldsIgnored(t *testing.T) {
	questions := []model.ExamQuestion{mcQuestion(t, 5, true)}
	answers := []model.SubmissionAnswer{
		{
			QuestionIndex:   0,
			QuestionType:    model.MultipleChoice,
			SelectedOptions: map[int]bool{},
			IsCorrect:       true, // claimed by the client
			PointsEarned:    5,
		},
	}

	result, err := GradeAnswers(questions, answers, 50)
	if err != nil {
		t.Fatal(err)
	}
	if result.Answers[0].IsCorrect || result.Answers[0].PointsEarned != 0 {
		t.Errorf("client-claimed grading survived: %+v", result.Answers[0])
	}
	if result.Score != 0 {
		t.Errorf("Score = %v, want 0", result.Score)
	}
}

func TestGradeAnswersMalformedQuestionData(t *testing.T) {
	questions := []model.ExamQuestion{
		{QuestionType: model.MultipleChoice, Options: json.RawMessage(`{not json`), Points: 1},
	}
	answers := []model.SubmissionAnswer{{QuestionIndex: 0}}

	if _, err := GradeAnswers(questions, answers, 50); err == nil {
		t.Error("malformed options must surface an error")
	}

	questions = []model.ExamQuestion{{QuestionType: "essay", Points: 1}}
	if _, err := GradeAnswers(questions, answers, 50); err == nil {
		t.Error("unknown question type must surface an error")
	}
}
