package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	var ve ValidationError
	assert.False(t, ve.HasAny())
	assert.Equal(t, "validation failed", ve.Error())

	ve.Add("title", "required")
	ve.Add("", "bare message")
	require.True(t, ve.HasAny())
	assert.Contains(t, ve.Error(), "title: required")
	assert.Contains(t, ve.Error(), " - bare message")
	assert.ErrorIs(t, ve, ErrInvalid)
}

func TestSchema(t *testing.T) {
	assert.NoError(t, Schema("post/es.md", ValidationError{}))

	var ve ValidationError
	ve.Add("title", "required")
	ve.Add("lang", "required")
	err := Schema("post/es.md", ve)
	require.Error(t, err)

	assert.Equal(t, "content post/es.md: invalid frontmatter: title: required; lang: required", err.Error())
	assert.ErrorIs(t, err, ErrSchema)
	assert.ErrorIs(t, err, ErrInvalid)

	wrapped := fmt.Errorf("load: %w", errors.Join(err, errors.New("other")))
	var se *SchemaValidationError
	require.ErrorAs(t, wrapped, &se)
	assert.Equal(t, "post/es.md", se.Path)
	assert.Len(t, se.Fields.Items, 2)
}
