package importer

import "strings"

// TargetField is one entry of the static per-data-type field catalog.
// Required fields gate validation during the run.
type TargetField struct {
	Field    string `json:"field"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

var targetFieldCatalog = map[DataType][]TargetField{
	DataTypeUsers: {
		{Field: "first_name", Label: "First Name", Required: true},
		{Field: "last_name", Label: "Last Name", Required: true},
		{Field: "email", Label: "Email", Required: false},
		{Field: "phone", Label: "Phone", Required: false},
		{Field: "gender", Label: "Gender", Required: false},
		{Field: "date_of_birth", Label: "Date of Birth", Required: false},
		{Field: "address", Label: "Address", Required: false},
		{Field: "emergency_contact", Label: "Emergency Contact", Required: false},
		{Field: "status", Label: "Status", Required: false},
	},
	DataTypeMemberships: {
		{Field: "user_email", Label: "Member Email", Required: true},
		{Field: "package_name", Label: "Package Name", Required: true},
		{Field: "start_date", Label: "Start Date", Required: false},
		{Field: "expiry_date", Label: "Expiry Date", Required: false},
		{Field: "status", Label: "Status", Required: false},
	},
	DataTypeCheckIns: {
		{Field: "user_email", Label: "Member Email", Required: true},
		{Field: "check_in_time", Label: "Check-In Time", Required: true},
		{Field: "check_out_time", Label: "Check-Out Time", Required: false},
		{Field: "notes", Label: "Notes", Required: false},
	},
	DataTypePackages: {
		{Field: "name", Label: "Package Name", Required: true},
		{Field: "price", Label: "Price", Required: true},
		{Field: "duration", Label: "Duration (days)", Required: true},
		{Field: "description", Label: "Description", Required: false},
		{Field: "features", Label: "Features", Required: false},
		{Field: "status", Label: "Status", Required: false},
	},
}

// fieldAliases lists, per target field, the normalized source column names
// that should map to it. The field's own name is always an alias.
var fieldAliases = map[string][]string{
	"first_name":        {"first_name", "firstname", "first", "fname", "given_name", "forename"},
	"last_name":         {"last_name", "lastname", "last", "lname", "surname", "family_name"},
	"email":             {"email", "email_address", "e_mail", "mail"},
	"phone":             {"phone", "phone_number", "mobile", "cell", "telephone", "contact_number"},
	"gender":            {"gender", "sex"},
	"date_of_birth":     {"date_of_birth", "dob", "birth_date", "birthdate", "birthday"},
	"address":           {"address", "street_address", "home_address"},
	"emergency_contact": {"emergency_contact", "emergency", "ice_contact"},
	"status":            {"status", "state"},
	"user_email":        {"user_email", "member_email", "email", "email_address"},
	"package_name":      {"package_name", "package", "plan", "plan_name", "membership_type"},
	"start_date":        {"start_date", "start", "begin_date", "from"},
	"expiry_date":       {"expiry_date", "expiry", "end_date", "expiration", "valid_until"},
	"check_in_time":     {"check_in_time", "checkin_time", "check_in", "checkin", "entry_time", "time_in"},
	"check_out_time":    {"check_out_time", "checkout_time", "check_out", "checkout", "exit_time", "time_out"},
	"notes":             {"notes", "note", "comment", "comments", "remarks"},
	"name":              {"name", "package_name", "title", "plan_name"},
	"price":             {"price", "cost", "amount", "fee", "rate"},
	"duration":          {"duration", "duration_days", "days", "length", "period", "validity"},
	"description":       {"description", "details", "desc", "summary"},
	"features":          {"features", "benefits", "includes", "perks"},
}

// TargetFields returns the field catalog for a data type, in catalog order.
func TargetFields(dataType DataType) []TargetField {
	return targetFieldCatalog[dataType]
}

// AutoDetectMappings suggests a source column for every target field of the
// data type. Exact alias matches win over substring matches, and the first
// matching source header (in header order) wins per target. Unmatched
// targets get an empty SourceField for the caller to resolve manually.
// The suggestion is advisory and this function never fails.
func AutoDetectMappings(sourceHeaders []string, dataType DataType) []FieldMapping {
	mappings := make([]FieldMapping, 0, len(targetFieldCatalog[dataType]))
	for _, target := range targetFieldCatalog[dataType] {
		mappings = append(mappings, FieldMapping{
			SourceField: detectSource(sourceHeaders, fieldAliases[target.Field]),
			TargetField: target.Field,
		})
	}
	return mappings
}

func detectSource(sourceHeaders, aliases []string) string {
	for _, header := range sourceHeaders {
		normalized := normalizeHeader(header)
		for _, alias := range aliases {
			if normalized == alias {
				return header
			}
		}
	}
	for _, header := range sourceHeaders {
		normalized := normalizeHeader(header)
		for _, alias := range aliases {
			if strings.Contains(normalized, alias) {
				return header
			}
		}
	}
	return ""
}

// normalizeHeader lowercases a column name and folds spaces and hyphens
// into underscores so "First Name" matches "first_name".
func normalizeHeader(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	return normalized
}
