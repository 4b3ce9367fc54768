package validators

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the login email of a user or credentials body.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a register request.
	FieldPassword = "password"

	// FieldTitle targets the project title.
	FieldTitle = "title"

	// FieldDescription targets the project description.
	FieldDescription = "description"

	// FieldTechnologies targets the project technology list.
	FieldTechnologies = "technologies"

	// FieldLinks targets the project image, live demo and repository URLs.
	FieldLinks = "links"

	// FieldSectionName targets the section key.
	FieldSectionName = "name"

	// FieldSectionData targets the section payload.
	FieldSectionData = "data"

	// FieldVersion targets the optimistic concurrency version of a section.
	FieldVersion = "version"

	// FieldAnyUpdate requires a project update to carry at least one field.
	FieldAnyUpdate = "any_update"
)

// minPasswordLength is the shortest password accepted on registration.
const minPasswordLength = 6
