package orgscout

import "fmt"

// Field identifies one exportable organization field.
type Field string

// Exportable fields.
const (
	FieldCategory    Field = "category"
	FieldName        Field = "name"
	FieldProfileURL  Field = "profile_url"
	FieldImageURL    Field = "image_url"
	FieldDescription Field = "description"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldWebsite     Field = "website"
	FieldLinkedIn    Field = "linkedin"
	FieldInstagram   Field = "instagram"
	FieldFacebook    Field = "facebook"
	FieldTwitter     Field = "twitter"
	FieldYouTube     Field = "youtube"
	FieldTikTok      Field = "tiktok"
)

// Column maps a field to its header in an output schema.
type Column struct {
	Header string
	Field  Field
}

// Schema is an ordered column layout for spreadsheet output.
type Schema struct {
	Name    string
	Columns []Column
}

// SchemaStandard is the full layout including YouTube and TikTok.
var SchemaStandard = Schema{
	Name: "standard",
	Columns: []Column{
		{"Category", FieldCategory},
		{"Organization Name", FieldName},
		{"Organization Link", FieldProfileURL},
		{"Logo Link", FieldImageURL},
		{"Description", FieldDescription},
		{"Email", FieldEmail},
		{"Phone Number", FieldPhone},
		{"LinkedIn Link", FieldLinkedIn},
		{"Instagram Link", FieldInstagram},
		{"Facebook Link", FieldFacebook},
		{"Twitter Link", FieldTwitter},
		{"YouTube Link", FieldYouTube},
		{"TikTok Link", FieldTikTok},
	},
}

// SchemaCompact renames several columns, drops YouTube and TikTok and adds Website.
var SchemaCompact = Schema{
	Name: "compact",
	Columns: []Column{
		{"Organization Name", FieldName},
		{"Categories", FieldCategory},
		{"Org URL", FieldProfileURL},
		{"Image URL", FieldImageURL},
		{"Description", FieldDescription},
		{"Email", FieldEmail},
		{"Phone", FieldPhone},
		{"Website", FieldWebsite},
		{"LinkedIn", FieldLinkedIn},
		{"Instagram", FieldInstagram},
		{"Facebook", FieldFacebook},
		{"Twitter", FieldTwitter},
	},
}

// SchemaByName returns the schema registered under name.
func SchemaByName(name string) (Schema, error) {
	switch name {
	case SchemaStandard.Name, "":
		return SchemaStandard, nil
	case SchemaCompact.Name:
		return SchemaCompact, nil
	}
	return Schema{}, Errorf(EINVALID, "unknown schema %q", name)
}

// Headers returns the column headers in order.
func (s Schema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Row returns the organization's values in column order.
func (s Schema) Row(org *Organization) []string {
	row := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		row[i] = FieldValue(org, c.Field)
	}
	return row
}

// FieldValue returns the value of a single field.
func FieldValue(org *Organization, f Field) string {
	switch f {
	case FieldCategory:
		if org.Category == "" {
			return string(CategoryGeneral)
		}
		return string(org.Category)
	case FieldName:
		return org.Name
	case FieldProfileURL:
		if org.ProfileURL == "" {
			return org.SourceURL
		}
		return org.ProfileURL
	case FieldImageURL:
		return org.ImageURL
	case FieldDescription:
		return org.Description
	case FieldEmail:
		return org.Email
	case FieldPhone:
		return org.Phone
	case FieldWebsite:
		return org.Website
	case FieldLinkedIn:
		return org.SocialLink(PlatformLinkedIn)
	case FieldInstagram:
		return org.SocialLink(PlatformInstagram)
	case FieldFacebook:
		return org.SocialLink(PlatformFacebook)
	case FieldTwitter:
		return org.SocialLink(PlatformTwitter)
	case FieldYouTube:
		return org.SocialLink(PlatformYouTube)
	case FieldTikTok:
		return org.SocialLink(PlatformTikTok)
	}
	panic(fmt.Sprintf("orgscout: unknown field %q", f))
}
