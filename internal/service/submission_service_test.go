package service

import (
	"academy_backend/internal/model"
	"academy_backend/internal/util"
	"testing"
)

func TestCheckAttemptLimit(t *testing.T) {
	cases := []struct {
		name         string
		allowRetakes bool
		maxAttempts  int
		prior        int64
		wantErr      error
	}{
		{"first attempt always allowed", false, 0, 0, nil},
		{"retake denied", false, 0, 1, util.ErrRetakesNotAllowed},
		{"retake allowed unlimited", true, 0, 5, nil},
		{"retake under the cap", true, 3, 2, nil},
		{"retake at the cap", true, 3, 3, util.ErrMaxAttemptsReached},
		{"retake over the cap", true, 3, 4, util.ErrMaxAttemptsReached},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			exam := &model.Exam{AllowRetakes: tc.allowRetakes, MaxAttempts: tc.maxAttempts}
			if err := checkAttemptLimit(exam, tc.prior); err != tc.wantErr {
				t.Errorf("checkAttemptLimit(prior=%d) = %v, want %v", tc.prior, err, tc.wantErr)
			}
		})
	}
}
