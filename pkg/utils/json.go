package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson formata payloads para logs de debug. Aceita []byte com JSON
// cru ou qualquer valor serializável.
func PrettyJson(in any) string {
	var value any = in

	if raw, ok := in.([]byte); ok {
		if err := json.Unmarshal(raw, &value); err != nil {
			return string(raw)
		}
	}

	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		logrus.Debug("PrettyJson: ", err)
		return ""
	}

	return string(out)
}
