package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/hours-cli/pkg/timeutil"
)

func TestTimeValidator(t *testing.T) {
	validate := TimeValidator(timeutil.Converter{})

	for _, ok := range []string{"1:30:00", "1:66", "1.055", "1,5", ".25"} {
		assert.NoError(t, validate(ok), ok)
	}

	err := validate("-1.0")
	if assert.Error(t, err) {
		assert.Equal(t, "could not classify input", err.Error())
	}
	err = validate("")
	if assert.Error(t, err) {
		assert.Equal(t, "no digits", err.Error())
	}
}

func TestNewTimeForm(t *testing.T) {
	var value string
	form := NewTimeForm(timeutil.Converter{}, &value)
	assert.NotNil(t, form)
	assert.NotNil(t, Theme())
}
