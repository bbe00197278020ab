package fortune

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[^.!?]+[.!?]+`)
)

// normalizeText схлопывает переводы строк и повторные пробелы
func normalizeText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// splitSentences режет текст на предложения по завершающей пунктуации.
// Если границ нет, весь текст - одно предложение. Режем по позициям
// совпадений: ведущая пунктуация приклеивается к первому предложению,
// хвост после последнего знака препинания доставляется отдельно.
func splitSentences(text string) []string {
	matches := sentenceRe.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}

	var sentences []string
	for i, m := range matches {
		start := m[0]
		if i == 0 {
			start = 0
		}
		sentences = append(sentences, text[start:m[1]])
	}

	if tail := text[matches[len(matches)-1][1]:]; strings.TrimSpace(tail) != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// SplitReply разбивает ответ на упорядоченные чанки с префиксом
// "@handle ", каждый не длиннее maxLen символов (включая префикс).
// Предложения жадно набираются в текущий чанк; порядок предложений
// сохраняется, поэтому конкатенация чанков без префиксов
// восстанавливает нормализованный исходный текст.
func SplitReply(handle, text string, maxLen int) []string {
	prefix := "@" + handle + " "
	cleaned := normalizeText(text)
	if cleaned == "" {
		return nil
	}

	// вырожденный лимит: префикс не оставляет места под текст, делить
	// не на что - отдаём одним чанком, пусть платформа его отклонит
	if utf8.RuneCountInString(prefix) >= maxLen {
		return []string{prefix + cleaned}
	}

	sentences := splitSentences(cleaned)

	var chunks []string
	current := ""
	for _, sentence := range sentences {
		prospective := prefix + current + sentence
		if utf8.RuneCountInString(prospective) > maxLen {
			if current != "" {
				chunks = append(chunks, prefix+strings.TrimSpace(current))
				current = ""
			}
			// одно предложение длиннее лимита режем по границе рун
			for utf8.RuneCountInString(prefix+sentence) > maxLen {
				room := maxLen - utf8.RuneCountInString(prefix)
				runes := []rune(sentence)
				chunks = append(chunks, prefix+strings.TrimSpace(string(runes[:room])))
				sentence = string(runes[room:])
			}
			current = sentence
		} else {
			current += sentence
		}
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, prefix+strings.TrimSpace(current))
	}

	return chunks
}
