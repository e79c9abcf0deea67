package catalog

import "secretarium/internal/domain/resource"

// BankCards masks the card number down to its last four digits instead of
// the flat placeholder, so cards stay distinguishable in lists.
var BankCards = Definition{
	Path:       "bank-cards",
	Collection: "bankCards",
	Tag:        "bank-cards",
	Config: resource.Config{
		Name:             "Bank card",
		SearchableFields: []string{"cardholderName", "brand", "billingAddress", "notes", "tags"},
		SensitiveFields: []resource.SensitiveField{
			{Name: "cardNumber", Mask: resource.CardNumberMask},
			{Name: "cvv"},
		},
		WorkspaceScoped: true,
		DefaultSort:     "-updatedAt,cardholderName",
	},
	CopyFields: []string{"cardNumber", "cvv"},
}

type BankCardCreate struct {
	WorkspaceID    string   `json:"workspaceId" minLength:"1" doc:"Owning workspace id"`
	CardholderName string   `json:"cardholderName" minLength:"1"`
	Brand          string   `json:"brand" minLength:"1"`
	CardNumber     string   `json:"cardNumber" minLength:"8"`
	ExpiryMonth    int      `json:"expiryMonth" minimum:"1" maximum:"12"`
	ExpiryYear     int      `json:"expiryYear" minimum:"2000"`
	CVV            string   `json:"cvv" minLength:"3"`
	BillingAddress string   `json:"billingAddress,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	IconURL        string   `json:"iconUrl,omitempty"`
}

type BankCardUpdate struct {
	WorkspaceID    *string   `json:"workspaceId,omitempty" minLength:"1"`
	CardholderName *string   `json:"cardholderName,omitempty" minLength:"1"`
	Brand          *string   `json:"brand,omitempty" minLength:"1"`
	CardNumber     *string   `json:"cardNumber,omitempty" minLength:"8"`
	ExpiryMonth    *int      `json:"expiryMonth,omitempty" minimum:"1" maximum:"12"`
	ExpiryYear     *int      `json:"expiryYear,omitempty" minimum:"2000"`
	CVV            *string   `json:"cvv,omitempty" minLength:"3"`
	BillingAddress *string   `json:"billingAddress,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	Tags           *[]string `json:"tags,omitempty"`
	IconURL        *string   `json:"iconUrl,omitempty"`
}
