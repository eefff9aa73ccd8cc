// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error construction, wrapping and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	cause := stderrors.New("permission denied")

	tests := []struct {
		name string
		err  *errors.AppselError
		want string
	}{
		{
			name: "plain",
			err:  errors.New(errors.ErrAppNotFound, "application vlc.desktop is not installed"),
			want: "[APP_NOT_FOUND] application vlc.desktop is not installed",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrTypeNotFound, "no application handles %s", "image/x-foo"),
			want: "[TYPE_NOT_FOUND] no application handles image/x-foo",
		},
		{
			name: "wrapped",
			err:  errors.Wrap(cause, errors.ErrFileWrite, "failed to write mimeapps.list"),
			want: "[FILE_WRITE] failed to write mimeapps.list: permission denied",
		},
		{
			name: "wrapped_formatted",
			err:  errors.Wrapf(cause, errors.ErrDirCreate, "failed to create %s", "/home/u/.config"),
			want: "[DIR_CREATE] failed to create /home/u/.config: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "unused"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "unused %d", 1))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrFileWrite, "failed to write").
		WithDetail("path", "/home/u/.config/mimeapps.list").
		WithDetails(map[string]interface{}{"mimetype": "image/png", "app": "eog.desktop"})

	assert.Equal(t, map[string]interface{}{
		"path":     "/home/u/.config/mimeapps.list",
		"mimetype": "image/png",
		"app":      "eog.desktop",
	}, err.Details)

	zero := &errors.AppselError{Code: errors.ErrInternal}
	zero.WithDetail("k", "v")
	assert.Equal(t, "v", zero.Details["k"])
}

func TestCodeMatching(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "/etc/xdg/mimeapps.list", Err: fs.ErrPermission}
	err := errors.Wrap(pathErr, errors.ErrFileWrite, "failed to write").WithDetail("path", pathErr.Path)
	chained := fmt.Errorf("mutation failed: %w", err)

	t.Run("through_fmt_wrapping", func(t *testing.T) {
		assert.True(t, errors.IsErrorCode(chained, errors.ErrFileWrite))
		assert.False(t, errors.IsErrorCode(chained, errors.ErrFileRead))
		assert.Equal(t, errors.ErrFileWrite, errors.GetErrorCode(chained))
		assert.Equal(t, "/etc/xdg/mimeapps.list", errors.GetErrorDetails(chained)["path"])
	})

	t.Run("cause_is_preserved", func(t *testing.T) {
		assert.ErrorIs(t, chained, fs.ErrPermission)
		var target *fs.PathError
		require.ErrorAs(t, chained, &target)
		assert.Equal(t, "open", target.Op)
	})

	t.Run("is_matches_on_code", func(t *testing.T) {
		assert.ErrorIs(t, chained, errors.New(errors.ErrFileWrite, "any message"))
		assert.NotErrorIs(t, chained, errors.New(errors.ErrDirCreate, "any message"))
	})

	t.Run("foreign_errors", func(t *testing.T) {
		plain := stderrors.New("boom")
		assert.False(t, errors.IsErrorCode(plain, errors.ErrUnknown))
		assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
		assert.Nil(t, errors.GetErrorDetails(plain))
		assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	})
}

func TestNewReport(t *testing.T) {
	report := errors.NewReport(errors.New(errors.ErrTypeNotFound, "unknown type").WithDetail("mimetype", "x/y"))
	assert.Equal(t, errors.ErrTypeNotFound, report.Code)
	assert.Equal(t, "[TYPE_NOT_FOUND] unknown type", report.Error)
	assert.Equal(t, map[string]interface{}{"mimetype": "x/y"}, report.Details)

	foreign := errors.NewReport(fmt.Errorf("plain"))
	assert.Equal(t, errors.ErrUnknown, foreign.Code)
	assert.Empty(t, foreign.Details)
}
