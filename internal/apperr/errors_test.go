package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := New(CodeModelLoad, "cannot load pathway file")
	assert.Equal(t, "[MODEL_LOAD] cannot load pathway file", err.Error())

	withDetail := err.WithDetail("path=x.owl")
	assert.Equal(t, "[MODEL_LOAD] cannot load pathway file: path=x.owl", withDetail.Error())
	assert.Empty(t, err.Detail, "WithDetail copies")

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("x"))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternal, "ignored"))

	cause := errors.New("boom")
	err := Wrap(cause, CodeNoRootPathway, "select root")
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[NO_ROOT_PATHWAY] select root: boom", err.Error())
}

func TestIsCodeAndCodeOf(t *testing.T) {
	inner := Wrap(errors.New("bad"), CodeDefaults, "defaults")
	outer := fmt.Errorf("run: %w", Wrap(inner, CodeInternal, "analysis"))

	assert.True(t, IsCode(outer, CodeInternal))
	assert.True(t, IsCode(outer, CodeDefaults))
	assert.False(t, IsCode(outer, CodeConfig))
	assert.Equal(t, CodeInternal, CodeOf(outer))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.False(t, IsCode(nil, CodeInternal))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("plain"), 1},
		{New(CodeModelLoad, "x"), 2},
		{New(CodeNoRootPathway, "x"), 3},
		{New(CodeCyclicPathway, "x"), 4},
		{New(CodeConfig, "x"), 5},
		{New(CodeDefaults, "x"), 6},
		{New(ErrorCode("UNKNOWN"), "x"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), fmt.Sprint(tt.err))
	}
}
