package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Timestamp é o instante enviado pelo backend em prod_entrada.
// Aceita RFC 3339, data e hora separadas por espaço, só a data, ou milissegundos
// desde a época. Um valor ilegível vira o instante zero em vez de derrubar a lista.
type Timestamp struct {
	time.Time
	// Floating indica que o backend não informou fuso: a data é exibida como veio.
	Floating bool
}

var floatingLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewTimestamp cria um Timestamp com fuso definido.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// UnmarshalJSON nunca falha por causa do formato da data.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = Timestamp{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] != '"' {
		var ms json.Number
		if err := json.Unmarshal(data, &ms); err == nil {
			if n, err := ms.Int64(); err == nil {
				ts.Time = time.UnixMilli(n).UTC()
			}
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		ts.Time = t
		return nil
	}
	// "2024-05-20 15:00:00Z" e variações com espaço no lugar do T
	if t, err := time.Parse(time.RFC3339Nano, strings.Replace(s, " ", "T", 1)); err == nil {
		ts.Time = t
		return nil
	}
	for _, layout := range floatingLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			ts.Floating = true
			return nil
		}
	}
	return nil
}
