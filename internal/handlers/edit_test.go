package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestEditFormHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockStudentGetter)
		expectedCode int
		contains     []string
	}{
		{
			name:   "prefilled form",
			target: "/student/edit/7",
			mockSetup: func(m *MockStudentGetter) {
				m.EXPECT().Get(gomock.Any(), int64(7)).Return(&models.StudentDB{
					ID: 7, RollNo: "R7", Name: "Gina", Email: "g@x.io", Department: "Art", DOB: "1999-09-09",
				}, nil)
			},
			expectedCode: http.StatusOK,
			contains: []string{
				`action="/student/edit/7"`,
				`name="roll_no" value="R7"`,
				`name="name" value="Gina"`,
				`name="department" value="Art"`,
			},
		},
		{
			name:   "not found",
			target: "/student/edit/99",
			mockSetup: func(m *MockStudentGetter) {
				m.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, models.ErrStudentNotFound)
			},
			expectedCode: http.StatusNotFound,
			contains:     []string{msgStudentNotFound},
		},
		{
			name:         "non numeric id",
			target:       "/student/edit/abc",
			mockSetup:    func(m *MockStudentGetter) {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "internal server error",
			target: "/student/edit/1",
			mockSetup: func(m *MockStudentGetter) {
				m.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockStudentGetter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewEditFormHandler(mockSvc, newTestRenderer(t), newTestFlashes())
			rr := serve(func(r chi.Router) { RegisterEditFormHandler(r, handler) }, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			for _, s := range tt.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
		})
	}
}

func TestEditHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	values := url.Values{"roll_no": {"R2"}, "name": {"Bobby"}}
	form := models.StudentForm{RollNo: "R2", Name: "Bobby"}

	tests := []struct {
		name             string
		target           string
		mockSetup        func(m *MockStudentUpdater)
		expectedCode     int
		expectedLocation string
		expectedFlash    *flash.Message
	}{
		{
			name:   "success",
			target: "/student/edit/2",
			mockSetup: func(m *MockStudentUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(2), form).Return(nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/students",
			expectedFlash:    &flash.Message{Kind: flash.KindSuccess, Text: msgUpdated},
		},
		{
			name:   "not found",
			target: "/student/edit/99",
			mockSetup: func(m *MockStudentUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(99), form).Return(models.ErrStudentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "non numeric id",
			target:       "/student/edit/abc",
			mockSetup:    func(m *MockStudentUpdater) {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "missing required",
			target: "/student/edit/2",
			mockSetup: func(m *MockStudentUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(2), form).Return(fmt.Errorf("%w: roll_no", models.ErrMissingRequired))
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/student/edit/2",
			expectedFlash:    &flash.Message{Kind: flash.KindDanger, Text: msgMissingRequired},
		},
		{
			name:   "field too long",
			target: "/student/edit/2",
			mockSetup: func(m *MockStudentUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(2), form).Return(fmt.Errorf("%w: email", models.ErrFieldTooLong))
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/student/edit/2",
			expectedFlash:    &flash.Message{Kind: flash.KindDanger, Text: msgFieldTooLong},
		},
		{
			name:   "roll number used by another student",
			target: "/student/edit/2",
			mockSetup: func(m *MockStudentUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(2), form).Return(fmt.Errorf("%w: R2", models.ErrDuplicateRollNo))
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/student/edit/2",
			expectedFlash:    &flash.Message{Kind: flash.KindDanger, Text: msgDuplicateOnEdit},
		},
		{
			name:   "internal server error",
			target: "/student/edit/2",
			mockSetup: func(m *MockStudentUpdater) {
				m.EXPECT().Update(gomock.Any(), int64(2), form).Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockStudentUpdater(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewEditHandler(mockSvc, newTestRenderer(t), newTestFlashes())
			rr := serve(func(r chi.Router) { RegisterEditHandler(r, handler) }, newFormRequest(tt.target, values))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			assert.Equal(t, tt.expectedFlash, poppedFlash(t, rr))
		})
	}
}
