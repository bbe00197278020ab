package fortune

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitReply_ShortTextSingleChunk(t *testing.T) {
	chunks := SplitReply("diin", "Your day pillar is strong.", 250)

	require.Len(t, chunks, 1)
	assert.Equal(t, "@diin Your day pillar is strong.", chunks[0])
}

func TestSplitReply_EmptyText(t *testing.T) {
	assert.Nil(t, SplitReply("diin", "", 250))
	assert.Nil(t, SplitReply("diin", "   \n\t  ", 250))
}

func TestSplitReply_EveryChunkWithinLimit(t *testing.T) {
	text := strings.Repeat("This sentence fills some room in the reply. ", 40)

	chunks := SplitReply("longish_handle", text, 250)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 250, "chunk %d too long", i)
		assert.True(t, strings.HasPrefix(chunk, "@longish_handle "), "chunk %d missing prefix", i)
	}
}

func TestSplitReply_ConcatenationRestoresText(t *testing.T) {
	text := "First insight here. Second one follows! Third wraps it up? And a fourth for good measure."

	chunks := SplitReply("diin", text, 60)
	require.Greater(t, len(chunks), 1)

	var parts []string
	for _, chunk := range chunks {
		parts = append(parts, strings.TrimSpace(strings.TrimPrefix(chunk, "@diin ")))
	}
	joined := whitespaceRe.ReplaceAllString(strings.Join(parts, " "), " ")

	assert.Equal(t, normalizeText(text), joined)
}

func TestSplitReply_NormalizesWhitespace(t *testing.T) {
	chunks := SplitReply("diin", "Line one.\n\nLine   two.", 250)

	require.Len(t, chunks, 1)
	assert.Equal(t, "@diin Line one. Line two.", chunks[0])
}

func TestSplitReply_UnterminatedTailKept(t *testing.T) {
	chunks := SplitReply("diin", "A full sentence. And a trailing thought without punctuation", 250)

	require.Len(t, chunks, 1)
	assert.Contains(t, chunks[0], "trailing thought without punctuation")
}

func TestSplitReply_OversizedSentenceHardSplit(t *testing.T) {
	// одно предложение без границ заведомо длиннее лимита
	text := strings.Repeat("가나다라마바사아자차", 10) + "."

	chunks := SplitReply("diin", text, 50)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(chunk), 50, "chunk %d too long", i)
	}
}

func TestSplitReply_OrderPreserved(t *testing.T) {
	text := "Alpha one. Bravo two. Charlie three. Delta four. Echo five. Foxtrot six."

	chunks := SplitReply("diin", text, 40)
	require.Greater(t, len(chunks), 2)

	joined := strings.Join(chunks, " ")
	for _, word := range []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot"} {
		assert.Contains(t, joined, word)
	}
	assert.Less(t, strings.Index(joined, "Alpha"), strings.Index(joined, "Bravo"))
	assert.Less(t, strings.Index(joined, "Charlie"), strings.Index(joined, "Foxtrot"))
}

func TestSplitReply_LeadingPunctuationNotDuplicated(t *testing.T) {
	// генерация любит открывать ответ многоточием; оно не предложение
	// само по себе и не должно дублировать текст
	text := "...Well. The year pillar favors you."

	chunks := SplitReply("diin", text, 250)

	require.Len(t, chunks, 1)
	assert.Equal(t, "@diin "+text, chunks[0])
}

func TestSplitReply_LeadingPunctuationRoundTrip(t *testing.T) {
	text := "...Hmm. " + strings.Repeat("The pillars say something useful here. ", 6)

	chunks := SplitReply("diin", text, 80)
	require.Greater(t, len(chunks), 1)

	var parts []string
	for _, chunk := range chunks {
		parts = append(parts, strings.TrimSpace(strings.TrimPrefix(chunk, "@diin ")))
	}
	joined := whitespaceRe.ReplaceAllString(strings.Join(parts, " "), " ")

	assert.Equal(t, normalizeText(text), joined)
}

func TestSplitReply_PrefixWiderThanLimit(t *testing.T) {
	// вырожденная конфигурация: лимит меньше самого префикса
	chunks := SplitReply("extremely_long_handle_name", "Short. But real.", 20)

	require.Len(t, chunks, 1)
	assert.Equal(t, "@extremely_long_handle_name Short. But real.", chunks[0])
}

func TestSplitSentences_LeadingPunctuationGluedToFirst(t *testing.T) {
	sentences := splitSentences("?! Seriously. Yes.")

	require.Len(t, sentences, 2)
	assert.Equal(t, "?! Seriously.", sentences[0])
	assert.Equal(t, " Yes.", sentences[1])
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	sentences := splitSentences("no punctuation at all")

	require.Len(t, sentences, 1)
	assert.Equal(t, "no punctuation at all", sentences[0])
}
