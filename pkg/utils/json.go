package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson serializa o valor com indentação para logs de depuração.
// Falha de serialização devolve string vazia, nunca interrompe o chamador.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		if raw, err = json.Marshal(in); err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		return string(raw)
	}

	return out.String()
}
