package trade360

import (
	"fmt"
)

// DefaultMessageFormat is the message format requested when none is set.
const DefaultMessageFormat = "json"

// Credentials identify a Trade360 package. They are attached to every
// outbound call, merged into the JSON body for POST requests and into the
// query string for GET requests.
type Credentials struct {
	PackageID     int    `json:"PackageId"     query:"PackageId"     validate:"required" yaml:"package_id"`
	Username      string `json:"UserName"      query:"UserName"      validate:"required" yaml:"username"`
	Password      string `json:"Password"      query:"Password"      validate:"required" yaml:"-"`
	MessageFormat string `json:"MessageFormat" query:"MessageFormat"                     yaml:"message_format"`
}

// NewCredentials creates credentials with the default message format.
func NewCredentials(packageID int, username, password string) *Credentials {
	return &Credentials{
		PackageID:     packageID,
		Username:      username,
		Password:      password,
		MessageFormat: DefaultMessageFormat,
	}
}

// Validate checks that all required credential fields are present.
func (c *Credentials) Validate() error {
	if c == nil {
		return ErrCredentialsRequired
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, formatValidationErrors(err))
	}

	return nil
}

// Normalized returns a copy of c with an empty MessageFormat defaulted.
// Later changes to c do not affect the copy.
func (c *Credentials) Normalized() Credentials {
	normalized := *c
	if normalized.MessageFormat == "" {
		normalized.MessageFormat = DefaultMessageFormat
	}

	return normalized
}

// String hides the password so credentials can be logged safely.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{PackageID: %d, Username: %q, Password: \"***\", MessageFormat: %q}",
		c.PackageID, c.Username, c.MessageFormat)
}
