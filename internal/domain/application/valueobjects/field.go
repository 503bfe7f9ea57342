package valueobjects

// Field enumerates the updatable profile fields of an application or a form
// draft. Repositories map these selectors to column names through a closed
// table; callers can never supply a column name directly.
type Field string

const (
	FieldPlayerName      Field = "player_name"
	FieldAge             Field = "age"
	FieldAbout           Field = "about"
	FieldPlans           Field = "plans"
	FieldCommunity       Field = "community"
	FieldPlatform        Field = "platform"
	FieldJavaNickname    Field = "nickname_java"
	FieldBedrockNickname Field = "nickname_bedrock"
	FieldReferral        Field = "referral"
)

var validFields = map[Field]bool{
	FieldPlayerName:      true,
	FieldAge:             true,
	FieldAbout:           true,
	FieldPlans:           true,
	FieldCommunity:       true,
	FieldPlatform:        true,
	FieldJavaNickname:    true,
	FieldBedrockNickname: true,
	FieldReferral:        true,
}

func (f Field) IsValid() bool {
	return validFields[f]
}

func (f Field) String() string {
	return string(f)
}
