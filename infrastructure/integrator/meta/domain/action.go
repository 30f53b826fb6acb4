package metadomain

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	ActionTypeLead      = "lead"
	ActionTypeVideoView = "video_view"
)

type Action struct {
	ActionType string      `json:"action_type"`
	Value      ActionValue `json:"value"`
}

// ActionValue guarda o valor bruto de uma ação. O decode nunca falha por
// causa do valor; valores inválidos são descartados em SumActions.
type ActionValue string

func (v *ActionValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			*v = ActionValue(data)
			return nil
		}
		*v = ActionValue(value)
		return nil
	}

	*v = ActionValue(data)
	return nil
}

// SumActions soma os valores inteiros das ações do tipo informado.
// Valores que não são inteiros não negativos são ignorados.
func SumActions(actions []Action, actionType string) int {
	total := 0

	for _, action := range actions {
		if action.ActionType != actionType {
			continue
		}

		raw := strings.TrimSpace(string(action.Value))
		if raw == "" {
			continue
		}

		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": raw,
			}).Debug("insights: skipping malformed action value")
			continue
		}

		total += value
	}

	return total
}
