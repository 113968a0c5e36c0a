package common

const (
	// AuthorizationHeader is the HTTP header carrying the access token.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the token value inside the authorization header.
	BearerPrefix = "Bearer "
)

// Skill levels accepted across interview, fluency, and profile flows.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"
)

// DefaultJobRole is assumed whenever a request omits the job role.
const DefaultJobRole = "Software Engineer"
