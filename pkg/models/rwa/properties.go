package rwa

// Category-specific property payloads. One of these is carried in
// Object.Properties according to Object.Category. Field order is fixed
// because the serialized bytes feed the checksum set.

// IssuerProperties describes the issuer of the RWA. It is the obligatory
// first document every asset must write to storage.
type IssuerProperties struct {
	Forename                string `json:"forename" mapstructure:"forename"`
	Lastname                string `json:"lastname" mapstructure:"lastname"`
	CompanyPosition         string `json:"company_position" mapstructure:"company_position"`
	Company                 string `json:"company" mapstructure:"company"`
	Address                 string `json:"address" mapstructure:"address"`
	CountryOfRegistration   string `json:"country_of_registration" mapstructure:"country_of_registration"`
	CompanyNumber           string `json:"company_number" mapstructure:"company_number"`
	CompanyRegistrationLink string `json:"company_registration_link" mapstructure:"company_registration_link"`
	Email                   string `json:"email" mapstructure:"email"`
	TelegramGroup           string `json:"telegram_group" mapstructure:"telegram_group"`
	WebsiteURL              string `json:"website_url" mapstructure:"website_url"`
	XAccount                string `json:"x_account" mapstructure:"x_account"`
	TelephoneCountryPrefix  string `json:"telephone_country_prefix" mapstructure:"telephone_country_prefix"`
	TelephoneNumber         string `json:"telephone_number" mapstructure:"telephone_number"`
	LawracleLink            string `json:"lawracle_link" mapstructure:"lawracle_link"`
}

// NoticeProperties identifies the author of a notice to holders. The notice
// itself goes into the object's text section.
type NoticeProperties struct {
	Forename string `json:"forename" mapstructure:"forename"`
	Lastname string `json:"lastname" mapstructure:"lastname"`
	Position string `json:"position" mapstructure:"position"`
	Email    string `json:"email" mapstructure:"email"`
}

// ProvenanceProperties describes the entity holding the underlying asset and
// the legal basis for the tokenization being unique.
type ProvenanceProperties struct {
	HoldingEntity           string `json:"holding_entity" mapstructure:"holding_entity"`
	EntityType              string `json:"entity_type" mapstructure:"entity_type"`
	CountryOfRegistration   string `json:"country_of_registration" mapstructure:"country_of_registration"`
	CompanyNumber           string `json:"company_number" mapstructure:"company_number"`
	CompanyRegistrationLink string `json:"company_registration_link" mapstructure:"company_registration_link"`
	AssetOwnershipStatement string `json:"asset_ownership_statement" mapstructure:"asset_ownership_statement"`
	TokenUniqueness         string `json:"token_uniqueness" mapstructure:"token_uniqueness"`
	LawracleLink            string `json:"lawracle_link" mapstructure:"lawracle_link"`
}

// ValuationProperties is a valuation statement by a recognised valuer,
// with enough contact detail for a holder to verify its authenticity.
type ValuationProperties struct {
	ValuerName                  string `json:"valuer_name" mapstructure:"valuer_name"`
	ValuerAddress               string `json:"valuer_address" mapstructure:"valuer_address"`
	ValuerCountryOfRegistration string `json:"valuer_country_of_registration" mapstructure:"valuer_country_of_registration"`
	ValuerCompanyNumber         string `json:"valuer_company_number" mapstructure:"valuer_company_number"`
	CompanyRegistrationLink     string `json:"company_registration_link" mapstructure:"company_registration_link"`
	ValuerEmail                 string `json:"valuer_email" mapstructure:"valuer_email"`
	ValuerWebsite               string `json:"valuer_website" mapstructure:"valuer_website"`
	ValuerTelephoneCountryCode  string `json:"valuer_telephone_country_code" mapstructure:"valuer_telephone_country_code"`
	ValuerTelephoneNumber       string `json:"valuer_telephone_number" mapstructure:"valuer_telephone_number"`
	ValuationPerUnit            string `json:"valuation_per_unit" mapstructure:"valuation_per_unit"`
	ValuationCurrency           string `json:"valuation_currency" mapstructure:"valuation_currency"`
}

// RatingProperties is a credit rating statement by a ratings agency.
type RatingProperties struct {
	AgencyName                  string `json:"agency_name" mapstructure:"agency_name"`
	AgencyAddress               string `json:"agency_address" mapstructure:"agency_address"`
	AgencyCountryOfRegistration string `json:"agency_country_of_registration" mapstructure:"agency_country_of_registration"`
	AgencyCompanyNumber         string `json:"agency_company_number" mapstructure:"agency_company_number"`
	CompanyRegistrationLink     string `json:"company_registration_link" mapstructure:"company_registration_link"`
	AgencyEmail                 string `json:"agency_email" mapstructure:"agency_email"`
	AgencyWebsite               string `json:"agency_website" mapstructure:"agency_website"`
	AgencyTelephoneCountryCode  string `json:"agency_telephone_country_code" mapstructure:"agency_telephone_country_code"`
	AgencyTelephoneNumber       string `json:"agency_telephone_number" mapstructure:"agency_telephone_number"`
	CreditRating                string `json:"credit_rating" mapstructure:"credit_rating"`
	ExpiryDate                  string `json:"expiry_date" mapstructure:"expiry_date"`
}

// LegalProperties is any legal statement regarding the RWA or the issuer.
type LegalProperties struct {
	Forename     string `json:"forename" mapstructure:"forename"`
	Lastname     string `json:"lastname" mapstructure:"lastname"`
	Position     string `json:"position" mapstructure:"position"`
	Email        string `json:"email" mapstructure:"email"`
	LawracleLink string `json:"lawracle_link" mapstructure:"lawracle_link"`
}

// FinancialProperties is a financial statement prepared by a recognised
// accountancy company.
type FinancialProperties struct {
	AccountancyName             string `json:"accountancy_name" mapstructure:"accountancy_name"`
	AccountancyAddress          string `json:"accountancy_address" mapstructure:"accountancy_address"`
	AccountancyEmail            string `json:"accountancy_email" mapstructure:"accountancy_email"`
	AccountancyWebsite          string `json:"accountancy_website" mapstructure:"accountancy_website"`
	AccountancyCompanyNumber    string `json:"accountancy_company_number" mapstructure:"accountancy_company_number"`
	AccountancyRegistrationLink string `json:"accountancy_registration_link" mapstructure:"accountancy_registration_link"`
}

// ProspectusProperties versions the official prospectus document.
type ProspectusProperties struct {
	Version string `json:"version" mapstructure:"version"`
}

// LicenseProperties is the license of the RWA security.
type LicenseProperties struct {
	LicensingAuthority string `json:"licensing_authority" mapstructure:"licensing_authority"`
	LicenseNumber      string `json:"license_number" mapstructure:"license_number"`
	AuthorityWebsite   string `json:"authority_website" mapstructure:"authority_website"`
	LicenseLink        string `json:"license_link" mapstructure:"license_link"`
}

// DueDiligenceProperties is a competency statement about the issuer by a
// management consultancy.
type DueDiligenceProperties struct {
	CompanyName             string `json:"company_name" mapstructure:"company_name"`
	CompanyAddress          string `json:"company_address" mapstructure:"company_address"`
	CompanyEmail            string `json:"company_email" mapstructure:"company_email"`
	CompanyWebsite          string `json:"company_website" mapstructure:"company_website"`
	CompanyNumber           string `json:"company_number" mapstructure:"company_number"`
	CompanyRegistrationLink string `json:"company_registration_link" mapstructure:"company_registration_link"`
}

// DividendProperties identifies the author of a dividend statement.
type DividendProperties struct {
	Forename string `json:"forename" mapstructure:"forename"`
	Lastname string `json:"lastname" mapstructure:"lastname"`
	Position string `json:"position" mapstructure:"position"`
	Email    string `json:"email" mapstructure:"email"`
}

// RedemptionProperties describes how holders can swap tokens for the
// underlying asset, and at what cost.
type RedemptionProperties struct {
	ContactForename          string `json:"contact_forename" mapstructure:"contact_forename"`
	ContactLastname          string `json:"contact_lastname" mapstructure:"contact_lastname"`
	ContactPosition          string `json:"contact_position" mapstructure:"contact_position"`
	ContactEmail             string `json:"contact_email" mapstructure:"contact_email"`
	FeeCurrency              string `json:"fee_currency" mapstructure:"fee_currency"`
	FixedFee                 string `json:"fixed_fee" mapstructure:"fixed_fee"`
	VariableFeePerUnit       string `json:"variable_fee_per_unit" mapstructure:"variable_fee_per_unit"`
	RedemptionTimeCompletion string `json:"redemption_time_completion" mapstructure:"redemption_time_completion"`
	RedemptionConditions     string `json:"redemption_conditions" mapstructure:"redemption_conditions"`
}

// WhoCanInvestProperties states who may legally invest in this RWA.
type WhoCanInvestProperties struct {
	KYCRequired            string   `json:"KYC_required" mapstructure:"KYC_required"`
	InvestorCategory       string   `json:"investor_category" mapstructure:"investor_category"`
	InvestorCountryList    []string `json:"investor_country_list" mapstructure:"investor_country_list"`
	MaxNumberOfInvestors   string   `json:"max_number_of_investors" mapstructure:"max_number_of_investors"`
	ProhibitedJurisdictions []string `json:"prohibited_jurisdictions" mapstructure:"prohibited_jurisdictions"`
}

// MediaProperties carries Base64 media data for the IMAGE and VIDEO
// categories. The declared MIME type in ImageType gates the policy check.
type MediaProperties struct {
	ImageName string `json:"image_name" mapstructure:"image_name"`
	ImageType string `json:"image_type" mapstructure:"image_type"`
	ImageData string `json:"image_data" mapstructure:"image_data"`
}
