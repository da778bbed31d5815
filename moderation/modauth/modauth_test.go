package modauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemAuthorizer(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	auth := NewMemAuthorizer()
	auth.AddMember(10, 500)
	auth.AddForumModerators(1, 10)

	ok, err := auth.Authorized(ctx, 500, 1)
	assert.NoError(err)
	assert.True(ok)

	// capability is per forum
	ok, err = auth.Authorized(ctx, 500, 2)
	assert.NoError(err)
	assert.False(ok)

	// non-member
	ok, err = auth.Authorized(ctx, 501, 1)
	assert.NoError(err)
	assert.False(ok)

	// a second group moderating another forum
	auth.AddMember(11, 500)
	auth.AddForumModerators(2, 11)
	ok, err = auth.Authorized(ctx, 500, 2)
	assert.NoError(err)
	assert.True(ok)
}
