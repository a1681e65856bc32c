package importing

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record é uma linha já separada por coluna, com números convertidos para float64
type Record struct {
	Row    int
	Values map[string]any
}

// parseCSV lê o cabeçalho, ignora linhas em branco e converte células numéricas
func parseCSV(r io.Reader) ([]string, []Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, err
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
	}

	records := make([]Record, 0)
	for {
		cols, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		line, _ := reader.FieldPos(0)
		if blankRow(cols) {
			continue
		}

		values := make(map[string]any, len(headers))
		for i, h := range headers {
			if i >= len(cols) {
				values[h] = ""
				continue
			}
			values[h] = coerce(cols[i])
		}
		records = append(records, Record{Row: line, Values: values})
	}

	return headers, records, nil
}

func blankRow(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func coerce(v string) any {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return v
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}
	return v
}

// parseJSON aceita um array de objetos; a linha reportada é o índice a partir de 1
func parseJSON(r io.Reader) ([]Record, error) {
	var items []map[string]any
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		values := make(map[string]any, len(item))
		for k, v := range item {
			values[strings.ToLower(k)] = v
		}
		records = append(records, Record{Row: i + 1, Values: values})
	}

	return records, nil
}

// joinCSV escreve o cabeçalho seguido das linhas
func joinCSV(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}
