package service

import "strings"

// bubbleDelimiter separa las burbujas dentro de una respuesta cruda del modelo.
const bubbleDelimiter = "|"

// SplitBubbles divide la respuesta del LLM en burbujas recortadas y no vacías.
// Si ningún segmento sobrevive al recorte pero el texto tiene contenido, se
// devuelve el texto completo como una única burbuja: una respuesta no vacía
// nunca produce cero burbujas.
func SplitBubbles(raw string) []string {
	parts := strings.Split(raw, bubbleDelimiter)
	bubbles := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			bubbles = append(bubbles, trimmed)
		}
	}
	if len(bubbles) > 0 {
		return bubbles
	}

	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return []string{trimmed}
	}
	return nil
}
