package utils

import "time"

// DateLayoutBR é o formato dd/mm/aaaa exibido ao usuário
const DateLayoutBR = "02/01/2006"

// ParseDate converte datas no formato YYYY-MM-DD; string vazia resulta em nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// FormatDate formata uma data opcional, devolvendo string vazia para nil
func FormatDate(date *time.Time) string {
	if date == nil {
		return ""
	}
	return date.Format(time.DateOnly)
}
