package service

import (
	"academy_backend/internal/model"
	"testing"
)

func TestValidateQuestion(t *testing.T) {
	cases := []struct {
		name    string
		req     ExamQuestionReq
		wantErr bool
	}{
		{
			"valid multiple choice",
			ExamQuestionReq{
				QuestionType: model.MultipleChoice,
				Options:      []model.ChoiceOption{{Text: "a", IsCorrect: true}, {Text: "b"}},
				Points:       2,
			},
			false,
		},
		{
			"multiple choice without options",
			ExamQuestionReq{QuestionType: model.MultipleChoice},
			true,
		},
		{
			"multiple choice without a correct option",
			ExamQuestionReq{
				QuestionType: model.MultipleChoice,
				Options:      []model.ChoiceOption{{Text: "a"}, {Text: "b"}},
			},
			true,
		},
		{
			"valid true false",
			ExamQuestionReq{
				QuestionType: model.TrueFalse,
				Statements:   []model.Statement{{Text: "s", IsTrue: true}},
			},
			false,
		},
		{
			"true false without statements",
			ExamQuestionReq{QuestionType: model.TrueFalse},
			true,
		},
		{
			"valid short answer",
			ExamQuestionReq{QuestionType: model.ShortAnswer, CorrectAnswer: "دمشق"},
			false,
		},
		{
			"short answer without answer key",
			ExamQuestionReq{QuestionType: model.ShortAnswer},
			true,
		},
		{
			"negative points",
			ExamQuestionReq{QuestionType: model.ShortAnswer, CorrectAnswer: "x", Points: -1},
			true,
		},
		{
			"unknown type",
			ExamQuestionReq{QuestionType: "essay"},
			true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateQuestion(&tc.req)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateQuestion() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestQuestionFromReqRoundTrip(t *testing.T) {
	req := ExamQuestionReq{
		QuestionType: model.MultipleChoice,
		Content:      "اختر الإجابة الصحيحة",
		Options:      []model.ChoiceOption{{Text: "a", IsCorrect: true}, {Text: "b"}},
		Points:       3,
		Order:        1,
	}

	q, err := questionFromReq("exam-1", &req)
	if err != nil {
		t.Fatal(err)
	}
	if q.ExamID != "exam-1" || q.Points != 3 || q.Order != 1 {
		t.Errorf("questionFromReq produced %+v", q)
	}
	if len(q.Options) == 0 {
		t.Fatal("options were not serialized")
	}

	// The serialized options must grade the same as the request's.
	if !gradeMultipleChoice(req.Options, map[int]bool{0: true}) {
		t.Error("expected selection {0} to be correct")
	}
}
