package product

import "octobridge/models"

// CredentialTemplate describes the supplier credential fields the host
// platform collects per deployment, with validation rules and defaults.
func CredentialTemplate() []models.CredentialField {
	return []models.CredentialField{
		{
			Name:        "apiKey",
			Type:        "text",
			RegExp:      `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
			Description: "the Api Key provided by the supplier, in uuid format",
		},
		{
			Name:        "resellerId",
			Type:        "text",
			RegExp:      `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`,
			Description: "the Reseller Id provided by the supplier, in uuid format",
		},
		{
			Name:        "endpoint",
			Type:        "text",
			RegExp:      `^https?://[^\s]+$`,
			Default:     "https://api.ventrata.com/octo",
			Description: "the supplier api endpoint url",
		},
		{
			Name:        "octoEnv",
			Type:        "text",
			RegExp:      `^(live|test)$`,
			List:        []string{"live", "test"},
			Default:     "live",
			Description: "on test no availability is consumed, barcodes will not work and nothing is invoiced",
		},
		{
			Name:        "acceptLanguage",
			Type:        "text",
			RegExp:      `^[a-z]{2}$`,
			Default:     "en",
			Description: "preferred content language when the supplier has translations available",
		},
	}
}
