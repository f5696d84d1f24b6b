// Package validation turns raw form values into persistable input and
// builds the predicates used by student search.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/student-records/internal/models"
)

var validate = validator.New()

// ValidateStudent trims every field of the form and checks that roll number
// and name are present and that no field exceeds its column length.
// Email and date of birth formats are not checked.
func ValidateStudent(form models.StudentForm) (models.StudentInput, error) {
	in := models.StudentInput{
		RollNo:     strings.TrimSpace(form.RollNo),
		Name:       strings.TrimSpace(form.Name),
		Email:      strings.TrimSpace(form.Email),
		Department: strings.TrimSpace(form.Department),
		DOB:        strings.TrimSpace(form.DOB),
	}

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return models.StudentInput{}, err
		}
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				return models.StudentInput{}, fmt.Errorf("%w: %s is empty", models.ErrMissingRequired, fe.Field())
			}
		}
		fe := fieldErrs[0]
		return models.StudentInput{}, fmt.Errorf("%w: %s exceeds %s characters", models.ErrFieldTooLong, fe.Field(), fe.Param())
	}

	return in, nil
}

// NormalizeQuery trims a search query. An empty result means no filter.
func NormalizeQuery(q string) string {
	return strings.TrimSpace(q)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern returns a LIKE pattern matching q as a literal substring.
// Case is left as typed; the query folds both sides with LOWER so the
// store applies one folding rule. It must be used with ESCAPE '\'.
func LikePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}
