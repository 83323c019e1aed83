package models

import (
	"bytes"
	"encoding/json"
)

// Text garde la valeur d'un champ telle qu'elle a été envoyée, quel que soit son type JSON.
// Une chaîne est désérialisée ; un nombre, un booléen ou un objet garde son texte brut.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return err
	}
	*t = Text(compact.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}
