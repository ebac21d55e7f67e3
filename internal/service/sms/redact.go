package sms

import "regexp"

const redacted = "[redacted]"

var piiPatterns = []*regexp.Regexp{
	// международный формат: +46 70 123 45 67, +4670-1234567
	regexp.MustCompile(`\+\d[\d\s\-()]{6,}\d`),
	// локальный мобильный: 070-123 45 67, 0701234567
	regexp.MustCompile(`\b07\d[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}\b`),
	regexp.MustCompile(`\d{7,}`),
}

var balanceErrorPattern = regexp.MustCompile(`(?i)insufficient|balance|credit|funds`)

// RedactPII вырезает из текста ошибки провайдера все, что похоже на номер телефона.
func RedactPII(text string) string {
	for _, pattern := range piiPatterns {
		text = pattern.ReplaceAllString(text, redacted)
	}
	return text
}

func isBalanceError(message string) bool {
	return balanceErrorPattern.MatchString(message)
}
