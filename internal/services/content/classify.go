package content

import "strings"

// Classified user-facing messages for content-acquisition failures
const (
	MsgPermission = "El servei de generació ha denegat l'accés: revisa la clau d'API"
	MsgQuota      = "Quota de generació exhaurida: torna-ho a provar més tard"
	MsgGeneric    = "No s'ha pogut contactar amb el servei de generació"
)

// permission/configuration indicators, checked before quota ones
var permissionIndicators = []string{
	"permission", "forbidden", "unauthorized", "api key", "api_key", "401", "403",
}

var quotaIndicators = []string{
	"429", "quota", "rate limit", "rate_limit", "resource_exhausted", "too many requests",
}

// ClassifyError maps a raw provider failure to the message shown to the
// player. First match wins; unmatched failures keep the raw message appended
// so it is not lost.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	raw := err.Error()
	lower := strings.ToLower(raw)

	for _, ind := range permissionIndicators {
		if strings.Contains(lower, ind) {
			return MsgPermission
		}
	}
	for _, ind := range quotaIndicators {
		if strings.Contains(lower, ind) {
			return MsgQuota
		}
	}
	return MsgGeneric + ": " + raw
}
