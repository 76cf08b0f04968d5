package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a template set name is safe for use as a
// directory name. Empty names and names containing separators or dots are
// rejected with ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
