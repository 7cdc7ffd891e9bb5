package campaigning

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vfg2006/marketing-automation-api/internal/domain"
)

// placeholderPattern reconhece tokens {{campo}} com espaços opcionais
var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// RenderContent substitui os tokens {{campo}} pelos atributos do cliente.
// Tokens sem valor correspondente permanecem intactos no resultado.
func RenderContent(content string, attrs *domain.CustomerAttributes, overrides map[string]string) string {
	values := personalizationValues(attrs)

	for key, value := range overrides {
		values[key] = value
	}

	return placeholderPattern.ReplaceAllStringFunc(content, func(token string) string {
		name := placeholderPattern.FindStringSubmatch(token)[1]

		if value, ok := values[name]; ok {
			return value
		}

		return token
	})
}

func personalizationValues(attrs *domain.CustomerAttributes) map[string]string {
	if attrs == nil {
		return map[string]string{}
	}

	values := map[string]string{
		"customer_id": fmt.Sprintf("%d", attrs.ID),
		"email":       attrs.Email,
		"first_name":  attrs.FirstName,
		"last_name":   attrs.LastName,
		"full_name":   strings.TrimSpace(attrs.FirstName + " " + attrs.LastName),
	}

	if attrs.Phone != nil {
		values["phone"] = *attrs.Phone
	}

	if attrs.Location != nil {
		values["location"] = *attrs.Location
	}

	if attrs.Industry != nil {
		values["industry"] = *attrs.Industry
	}

	if attrs.CompanySize != nil {
		values["company_size"] = *attrs.CompanySize
	}

	return values
}
