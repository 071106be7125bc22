package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikiai/kbaccess/pkg/logger"
)

func TestErrorAttrs(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))

	group := logger.Errors(err, nil, errors.New("second"))
	require.Equal(t, slog.KindGroup, group.Value.Kind())
	assert.Len(t, group.Value.Group(), 2)
	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestAuthorizationAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "allow", logger.Decision(true).Value.String())
	assert.Equal(t, "deny", logger.Decision(false).Value.String())
	assert.Equal(t, "role", logger.Role("").Key)
	assert.Equal(t, "files", logger.Resource("files").Value.String())
	assert.Equal(t, "update:own", logger.Action("update:own").Value.String())
	assert.Equal(t, "view:files", logger.Permission("view:files").Value.String())

	assert.True(t, logger.UserID("").Equal(slog.Attr{}))
	assert.Equal(t, "u1", logger.UserID("u1").Value.String())
	assert.True(t, logger.OrganizationID("").Equal(slog.Attr{}))
	assert.True(t, logger.TargetRole("").Equal(slog.Attr{}))
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}
