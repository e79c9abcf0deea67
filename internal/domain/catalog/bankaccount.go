package catalog

import "secretarium/internal/domain/resource"

// BankAccounts holds account and routing details.
var BankAccounts = Definition{
	Path:       "bank-accounts",
	Collection: "bankAccounts",
	Tag:        "bank-accounts",
	Config: resource.Config{
		Name:             "Bank account",
		SearchableFields: []string{"bankName", "accountHolder", "notes", "iban", "swiftBic", "routingNumber", "tags"},
		SensitiveFields:  []resource.SensitiveField{{Name: "accountNumber"}},
		WorkspaceScoped:  true,
		DefaultSort:      "-updatedAt,bankName",
	},
	CopyFields: []string{"accountNumber"},
}

type BankAccountCreate struct {
	WorkspaceID   string   `json:"workspaceId" minLength:"1" doc:"Owning workspace id"`
	BankName      string   `json:"bankName" minLength:"1"`
	AccountHolder string   `json:"accountHolder" minLength:"1"`
	AccountNumber string   `json:"accountNumber" minLength:"4"`
	IBAN          string   `json:"iban,omitempty"`
	SwiftBic      string   `json:"swiftBic,omitempty"`
	RoutingNumber string   `json:"routingNumber,omitempty"`
	Currency      string   `json:"currency,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	IconURL       string   `json:"iconUrl,omitempty"`
}

type BankAccountUpdate struct {
	WorkspaceID   *string   `json:"workspaceId,omitempty" minLength:"1"`
	BankName      *string   `json:"bankName,omitempty" minLength:"1"`
	AccountHolder *string   `json:"accountHolder,omitempty" minLength:"1"`
	AccountNumber *string   `json:"accountNumber,omitempty" minLength:"4"`
	IBAN          *string   `json:"iban,omitempty"`
	SwiftBic      *string   `json:"swiftBic,omitempty"`
	RoutingNumber *string   `json:"routingNumber,omitempty"`
	Currency      *string   `json:"currency,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	IconURL       *string   `json:"iconUrl,omitempty"`
}
