package fortune

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// longReply текст, который при maxLen из newTestEnv гарантированно
// разбивается минимум на три чанка
func longReply() string {
	return strings.Repeat("This particular sentence occupies a decent amount of space in a post. ", 12)
}

func TestPublishChain_SingleChunk(t *testing.T) {
	env := newTestEnv()

	posted, err := env.svc.publishChain(context.Background(), "kim", "Short and sweet.", "tweet-1")

	require.NoError(t, err)
	assert.Equal(t, 1, posted)
	require.Len(t, env.social.posted, 1)
	assert.Equal(t, "@kim Short and sweet.", env.social.posted[0].text)
	assert.Equal(t, "tweet-1", env.social.posted[0].inReplyTo)
}

func TestPublishChain_ChainThreading(t *testing.T) {
	env := newTestEnv()

	posted, err := env.svc.publishChain(context.Background(), "kim", longReply(), "tweet-1")

	require.NoError(t, err)
	require.GreaterOrEqual(t, posted, 3)
	require.Len(t, env.social.posted, posted)

	// первый чанк отвечает на входящее сообщение, каждый следующий -
	// на предыдущий пост цепочки
	assert.Equal(t, "tweet-1", env.social.posted[0].inReplyTo)
	for i := 1; i < posted; i++ {
		assert.Equal(t, fmt.Sprintf("post-%d", i), env.social.posted[i].inReplyTo, "chunk %d", i)
	}
}

func TestPublishChain_MidChainFailureIsPartial(t *testing.T) {
	env := newTestEnv()
	env.social.failAt = 1 // второй пост отклоняется

	posted, err := env.svc.publishChain(context.Background(), "kim", longReply(), "tweet-1")

	require.Error(t, err)
	assert.Equal(t, 1, posted)

	var partial *domain.PartialPublishFailure
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Posted)
	assert.GreaterOrEqual(t, partial.Total, 3)

	// после отказа публикация останавливается, третий чанк не пробуется
	assert.Len(t, env.social.posted, 1)
}

func TestPublishChain_FirstChunkFailureIsNotPartial(t *testing.T) {
	env := newTestEnv()
	env.social.failAt = 0

	posted, err := env.svc.publishChain(context.Background(), "kim", longReply(), "tweet-1")

	require.Error(t, err)
	assert.Equal(t, 0, posted)
	assert.False(t, domain.IsPartialPublish(err))
	assert.Empty(t, env.social.posted)
}

func TestPublishChain_EmptyReplyPostsNothing(t *testing.T) {
	env := newTestEnv()

	posted, err := env.svc.publishChain(context.Background(), "kim", "   ", "tweet-1")

	require.NoError(t, err)
	assert.Equal(t, 0, posted)
	assert.Empty(t, env.social.posted)
}
